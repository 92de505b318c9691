package repository

import (
	"context"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
)

// OpportunityRepository definisce la porta di persistenza per Opportunity.
type OpportunityRepository interface {
	Create(ctx context.Context, opp *entity.Opportunity) error
	GetByID(ctx context.Context, userID, id string) (*entity.Opportunity, error)
	// ListByUser restituisce le opportunità dell'utente (più quelle legacy
	// senza owner). year > 0 filtra per anno della closeDate.
	ListByUser(ctx context.Context, userID string, year int) ([]entity.Opportunity, error)
	// ListAll restituisce l'intera collezione: è l'istantanea che alimenta
	// il motore di forecast e l'export.
	ListAll(ctx context.Context) ([]entity.Opportunity, error)
	Update(ctx context.Context, opp *entity.Opportunity) error
	Delete(ctx context.Context, userID, id string) error
	Search(ctx context.Context, pattern string, limit int) ([]entity.Opportunity, error)
}
