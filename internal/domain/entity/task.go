package entity

import "time"

// Stati e valori di default per Task.
const (
	TaskStatusDaFare     = "Da fare"
	TaskStatusCompletata = "Completata"

	TaskTypeChiamata  = "Chiamata"
	TaskPriorityMedia = "Media"
)

// Task rappresenta un'attività (chiamata, email, riunione) legata
// opzionalmente a un contatto o a un'opportunità.
type Task struct {
	ID            string
	Title         string
	Type          string // Chiamata, Email, Riunione, ...
	Priority      string // Alta, Media, Bassa
	Status        string // Da fare, Completata
	DueDate       *time.Time
	ContactID     *string
	OpportunityID *string
	UserID        *string
	Description   string
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
