package repository

import (
	"context"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
)

// TaskRepository definisce la porta di persistenza per Task.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, userID, id string) (*entity.Task, error)
	// ListByUser ordina per dueDate crescente, poi per createdAt decrescente.
	ListByUser(ctx context.Context, userID string) ([]entity.Task, error)
	ListAll(ctx context.Context) ([]entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, userID, id string) error
	Search(ctx context.Context, pattern string, limit int) ([]entity.Task, error)
	// CountOpen conta le attività non completate (KPI del dashboard).
	CountOpen(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}
