package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
)

// InvoiceRequest input per creare/aggiornare una fattura.
// Il campo Date è l'alias legacy di IssueDate (dati importati dal vecchio
// gestionale): se issueDate manca si usa date.
type InvoiceRequest struct {
	Number        string          `json:"number"`
	CustomerName  string          `json:"customerName"`
	Amount        decimal.Decimal `json:"amount"`
	IssueDate     string          `json:"issueDate"` // YYYY-MM-DD
	Date          string          `json:"date"`      // alias legacy di issueDate
	Status        string          `json:"status"`
	OpportunityID *string         `json:"opportunityId"`
	Notes         string          `json:"notes"`
}

// ResolveIssueDate applica l'alias legacy: issueDate se presente, poi date.
func (r InvoiceRequest) ResolveIssueDate() string {
	if r.IssueDate != "" {
		return r.IssueDate
	}
	return r.Date
}

// InvoiceResponse output di una fattura.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	CustomerName  string          `json:"customerName"`
	Amount        decimal.Decimal `json:"amount"`
	IssueDate     string          `json:"issueDate,omitempty"`
	Status        string          `json:"status"`
	OpportunityID *string         `json:"opportunityId"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

// ToInvoiceResponse converte l'entità nel DTO di risposta.
func ToInvoiceResponse(i *entity.Invoice) *InvoiceResponse {
	if i == nil {
		return nil
	}
	return &InvoiceResponse{
		ID:            i.ID,
		Number:        i.Number,
		CustomerName:  i.CustomerName,
		Amount:        i.Amount,
		IssueDate:     FormatDate(i.IssueDate),
		Status:        i.Status,
		OpportunityID: i.OpportunityID,
		Notes:         i.Notes,
		CreatedAt:     i.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     i.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
