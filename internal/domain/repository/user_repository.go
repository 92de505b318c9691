package repository

import (
	"context"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
)

// UserRepository definisce la porta di persistenza per User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// FindByUsername accetta anche l'email come identificativo di login.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
