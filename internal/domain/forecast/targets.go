package forecast

import "github.com/shopspring/decimal"

// monthsInYear i record mensili sono sempre esattamente 12, indice 0–11.
const monthsInYear = 12

// MonthLabels etichette brevi dei mesi, index-aligned con i MonthRecord.
var MonthLabels = [monthsInYear]string{
	"Gen", "Feb", "Mar", "Apr", "Mag", "Giu",
	"Lug", "Ago", "Set", "Ott", "Nov", "Dic",
}

// Targets tabella degli obiettivi: 12 target mensili (gennaio..dicembre) più
// il target annuale. Configurazione statica di processo.
type Targets struct {
	Monthly [monthsInYear]decimal.Decimal
	Annual  decimal.Decimal
}

// NewTargets costruisce la tabella da importi float (come arrivano dalla
// configurazione).
func NewTargets(monthly [monthsInYear]float64, annual float64) Targets {
	var t Targets
	for i, m := range monthly {
		t.Monthly[i] = decimal.NewFromFloat(m)
	}
	t.Annual = decimal.NewFromFloat(annual)
	return t
}

// Month restituisce il target del mese i (0–11); zero fuori range.
func (t Targets) Month(i int) decimal.Decimal {
	if i < 0 || i >= monthsInYear {
		return decimal.Zero
	}
	return t.Monthly[i]
}
