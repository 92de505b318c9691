package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stati di una fattura. Bozza e Annullata sono escluse dal fatturato.
const (
	InvoiceStatusBozza     = "Bozza"
	InvoiceStatusEmessa    = "Emessa"
	InvoiceStatusPagata    = "Pagata"
	InvoiceStatusAnnullata = "Annullata"
)

// Invoice rappresenta una fattura emessa verso un cliente.
type Invoice struct {
	ID            string
	Number        string
	CustomerName  string
	Amount        decimal.Decimal
	IssueDate     *time.Time
	Status        string
	OpportunityID *string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
