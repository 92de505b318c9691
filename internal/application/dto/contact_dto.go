package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
)

// ContactRequest input per creare/aggiornare un contatto.
type ContactRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Company     string          `json:"company"`
	Email       string          `json:"email" validate:"omitempty,email"`
	Phone       string          `json:"phone"`
	Value       decimal.Decimal `json:"value"`
	Status      string          `json:"status"`
	Avatar      string          `json:"avatar"`
	LastContact string          `json:"lastContact"` // YYYY-MM-DD
	Notes       string          `json:"notes"`
}

// ContactResponse output di un contatto.
type ContactResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Company     string          `json:"company"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Value       decimal.Decimal `json:"value"`
	Status      string          `json:"status"`
	Avatar      string          `json:"avatar"`
	LastContact string          `json:"lastContact,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// ToContactResponse converte l'entità nel DTO di risposta.
func ToContactResponse(c *entity.Contact) *ContactResponse {
	if c == nil {
		return nil
	}
	return &ContactResponse{
		ID:          c.ID,
		Name:        c.Name,
		Company:     c.Company,
		Email:       c.Email,
		Phone:       c.Phone,
		Value:       c.Value,
		Status:      c.Status,
		Avatar:      c.Avatar,
		LastContact: FormatDate(c.LastContact),
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   c.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
