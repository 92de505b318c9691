package dto

import "github.com/vcrm-app/vcrm-api/internal/domain/entity"

// TaskRequest input per creare/aggiornare un'attività.
type TaskRequest struct {
	Title         string  `json:"title" validate:"required,min=1,max=200"`
	Type          string  `json:"type"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	DueDate       string  `json:"dueDate"` // YYYY-MM-DD
	ContactID     *string `json:"contactId"`
	OpportunityID *string `json:"opportunityId"`
	Description   string  `json:"description"`
}

// TaskResponse output di un'attività.
type TaskResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Type          string  `json:"type"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	DueDate       string  `json:"dueDate,omitempty"`
	ContactID     *string `json:"contactId"`
	OpportunityID *string `json:"opportunityId"`
	Description   string  `json:"description,omitempty"`
	CompletedAt   string  `json:"completedAt,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToTaskResponse converte l'entità nel DTO di risposta.
func ToTaskResponse(t *entity.Task) *TaskResponse {
	if t == nil {
		return nil
	}
	completed := ""
	if t.CompletedAt != nil {
		completed = t.CompletedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return &TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Type:          t.Type,
		Priority:      t.Priority,
		Status:        t.Status,
		DueDate:       FormatDate(t.DueDate),
		ContactID:     t.ContactID,
		OpportunityID: t.OpportunityID,
		Description:   t.Description,
		CompletedAt:   completed,
		CreatedAt:     t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     t.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
