package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contact rappresenta un contatto/anagrafica cliente del CRM.
type Contact struct {
	ID          string
	Name        string
	Company     string
	Email       string
	Phone       string
	Value       decimal.Decimal
	Status      string // Lead, Cliente, Partner, ...
	Avatar      string // iniziali mostrate dal frontend
	LastContact *time.Time
	Notes       string
	UserID      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
