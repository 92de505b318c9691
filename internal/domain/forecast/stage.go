// Package forecast implementa il motore di previsione commerciale del
// dashboard: classificazione degli stage, pipeline ponderata, aggregazione
// mensile di ordinato/fatturato/backlog e proiezione annuale.
//
// Il motore è un calcolo puro e sincrono su collezioni immutabili: nessun
// I/O, nessuno stato condiviso. A parità di input (inclusa la data "now")
// produce sempre output identici, ed è quindi invocabile in concorrenza da
// più chiamanti senza lock.
package forecast

import (
	"strings"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
)

// StageCategory classificazione esplicita di uno stage.
// Unico punto del sistema in cui la label testuale viene interpretata:
// dashboard, statistiche e trend vinte/perse leggono tutti da qui.
type StageCategory int

const (
	// StageActive opportunità ancora in pipeline.
	StageActive StageCategory = iota
	// StageWon opportunità chiusa e vinta.
	StageWon
	// StageLost opportunità chiusa e persa.
	StageLost
)

// Marker testuali di chiusura. Uno stage è "chiuso" se il testo contiene il
// marker (case-insensitive); tra i chiusi, "vinto" distingue le vittorie.
const (
	closedMarker = "chiuso"
	wonMarker    = "vinto"
)

// Classify classifica una label di stage in una StageCategory.
// Stage vuoto = opportunità appena creata: vale come attiva (default Lead).
// Uno stage sconosciuto non è mai un errore: resta attivo.
func Classify(stage string) StageCategory {
	s := strings.ToLower(strings.TrimSpace(stage))
	if !strings.Contains(s, closedMarker) {
		return StageActive
	}
	if strings.Contains(s, wonMarker) {
		return StageWon
	}
	return StageLost
}

// CountsAsWon dice se un'opportunità va riconosciuta come ordinato.
// Conta come vinta se lo stage corrente è vinto OPPURE se lo era
// OriginalStage: un'opportunità riclassificata dopo la vittoria resta
// ordinata nel suo mese di chiusura originale. Regola di business
// esplicita, non va "semplificata".
func CountsAsWon(o entity.Opportunity) bool {
	return Classify(o.Stage) == StageWon || Classify(o.OriginalStage) == StageWon
}
