package repository

import (
	"context"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
)

// ContactRepository definisce la porta di persistenza per Contact.
// I record sono visibili al proprietario e quelli legacy senza owner a tutti.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	GetByID(ctx context.Context, userID, id string) (*entity.Contact, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Contact, error)
	ListAll(ctx context.Context) ([]entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, userID, id string) error
	// Search cerca per nome, azienda o email (pattern ILIKE già composto).
	Search(ctx context.Context, pattern string, limit int) ([]entity.Contact, error)
	Count(ctx context.Context) (int, error)
}
