package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stage canonici della pipeline commerciale. Il campo Stage resta una label
// libera (il Kanban del frontend può rinominare le colonne); la
// classificazione di business passa sempre da forecast.Classify.
const (
	StageLead        = "Lead"
	StageInContatto  = "In contatto"
	StageFollowUp    = "Follow Up da fare"
	StageRevisione   = "Revisionare offerta"
	StageChiusoVinto = "Chiuso Vinto"
	StageChiusoPerso = "Chiuso Perso"
)

// Opportunity rappresenta un'opportunità di vendita.
type Opportunity struct {
	ID      string
	Title   string
	Company string
	Value   decimal.Decimal
	Stage   string
	// Probability esplicita 0–100; nil = assente (si usa la tabella per stage).
	Probability *int
	OpenDate    *time.Time
	CloseDate   *time.Time
	Owner       string
	ContactID   *string
	UserID      *string
	// OriginalStage conserva lo stage che l'opportunità aveva quando era
	// "Chiuso Vinto" prima di essere riclassificata: il valore resta ordinato
	// nel mese di chiusura originale.
	OriginalStage string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
