package repository

import (
	"context"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
)

// InvoiceRepository definisce la porta di persistenza per Invoice.
// Le fatture non sono scopate per utente: il fatturato è dell'azienda.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// List restituisce le fatture; year > 0 filtra per anno di emissione.
	List(ctx context.Context, year int) ([]entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id string) error
}
