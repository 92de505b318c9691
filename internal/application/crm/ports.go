package crm

import (
	"context"

	"github.com/vcrm-app/vcrm-api/internal/domain/repository"
)

// TxRunner esegue fn dentro una transazione. Il repository passato a fn opera
// sulla stessa transazione: commit se fn ritorna nil, rollback altrimenti.
type TxRunner interface {
	Run(ctx context.Context, fn func(oppRepo repository.OpportunityRepository) error) error
}
