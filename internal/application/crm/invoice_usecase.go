package crm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vcrm-app/vcrm-api/internal/application/dto"
	"github.com/vcrm-app/vcrm-api/internal/domain"
	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
	"github.com/vcrm-app/vcrm-api/internal/domain/repository"
)

// InvoiceUseCase casi d'uso CRUD delle fatture.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceUseCase costruisce il caso d'uso delle fatture.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo}
}

// Create crea una fattura (stato di default Emessa).
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Number == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusEmessa
	}
	now := time.Now()
	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		Number:        in.Number,
		CustomerName:  in.CustomerName,
		Amount:        in.Amount,
		IssueDate:     dto.ParseDate(in.ResolveIssueDate()),
		Status:        status,
		OpportunityID: in.OpportunityID,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return dto.ToInvoiceResponse(invoice), nil
}

// GetByID restituisce una fattura.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToInvoiceResponse(invoice), nil
}

// List restituisce le fatture; year > 0 filtra per anno di emissione.
func (uc *InvoiceUseCase) List(ctx context.Context, year int) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List(ctx, year)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, dto.ToInvoiceResponse(&invoices[i]))
	}
	return out, nil
}

// Update aggiorna i campi modificabili di una fattura.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	invoice.Number = in.Number
	invoice.CustomerName = in.CustomerName
	invoice.Amount = in.Amount
	if d := dto.ParseDate(in.ResolveIssueDate()); d != nil {
		invoice.IssueDate = d
	}
	if in.Status != "" {
		invoice.Status = in.Status
	}
	invoice.OpportunityID = in.OpportunityID
	invoice.Notes = in.Notes
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return dto.ToInvoiceResponse(invoice), nil
}

// Delete elimina una fattura.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.invoiceRepo.Delete(ctx, id)
}
