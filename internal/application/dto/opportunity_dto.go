package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
)

// OpportunityRequest input per creare/aggiornare un'opportunità.
type OpportunityRequest struct {
	Title   string          `json:"title" validate:"required,min=1,max=200"`
	Company string          `json:"company"`
	Value   decimal.Decimal `json:"value"`
	Stage   string          `json:"stage"`
	// Probability esplicita 0–100; omessa = si usa la tabella per stage.
	Probability   *int    `json:"probability" validate:"omitempty,min=0,max=100"`
	OpenDate      string  `json:"openDate"`  // YYYY-MM-DD
	CloseDate     string  `json:"closeDate"` // YYYY-MM-DD
	Owner         string  `json:"owner"`
	ContactID     *string `json:"contactId"`
	OriginalStage string  `json:"originalStage"`
	Notes         string  `json:"notes"`
}

// MoveStageRequest input del PATCH /opportunities/:id/stage (Kanban).
type MoveStageRequest struct {
	Stage       string `json:"stage" validate:"required"`
	Probability *int   `json:"probability" validate:"omitempty,min=0,max=100"`
}

// OpportunityResponse output di un'opportunità.
type OpportunityResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Company       string          `json:"company"`
	Value         decimal.Decimal `json:"value"`
	Stage         string          `json:"stage"`
	Probability   *int            `json:"probability"`
	OpenDate      string          `json:"openDate,omitempty"`
	CloseDate     string          `json:"closeDate,omitempty"`
	Owner         string          `json:"owner"`
	ContactID     *string         `json:"contactId"`
	OriginalStage string          `json:"originalStage,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

// ToOpportunityResponse converte l'entità nel DTO di risposta.
func ToOpportunityResponse(o *entity.Opportunity) *OpportunityResponse {
	if o == nil {
		return nil
	}
	return &OpportunityResponse{
		ID:            o.ID,
		Title:         o.Title,
		Company:       o.Company,
		Value:         o.Value,
		Stage:         o.Stage,
		Probability:   o.Probability,
		OpenDate:      FormatDate(o.OpenDate),
		CloseDate:     FormatDate(o.CloseDate),
		Owner:         o.Owner,
		ContactID:     o.ContactID,
		OriginalStage: o.OriginalStage,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     o.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
