package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
)

// Snapshot input immutabile di una computazione. Il chiamante è responsabile
// di fornire collezioni coerenti (nessuna mutazione concorrente durante il
// calcolo). Tasks e Contacts fanno parte del contratto di chiamata ma non
// entrano nell'aritmetica.
type Snapshot struct {
	Opportunities []entity.Opportunity
	Invoices      []entity.Invoice
	Tasks         []entity.Task
	Contacts      []entity.Contact
	Year          int       // anno di riferimento dei bucket mensili
	Now           time.Time // determina il mese corrente
}

// MonthRecord figura derivata di un singolo mese dell'anno selezionato.
type MonthRecord struct {
	Month      string          `json:"month"`
	MonthIndex int             `json:"monthIndex"`
	Target     decimal.Decimal `json:"target"`
	Ordinato   decimal.Decimal `json:"ordinato"`  // venduto chiuso-vinto nel mese
	Fatturato  decimal.Decimal `json:"fatturato"` // fatture emesse nel mese (no Bozza/Annullata)
	Backlog    decimal.Decimal `json:"backlog"`   // max(0, ordinato - fatturato)
	// Forecast quota mensile della pipeline ponderata; null per i mesi
	// passati e per quello corrente.
	Forecast  decimal.NullDecimal `json:"forecast"`
	IsPast    bool                `json:"isPast"`
	IsCurrent bool                `json:"isCurrent"`
	IsFuture  bool                `json:"isFuture"`
}

// CumulativeRecord MonthRecord esteso con i totali progressivi.
type CumulativeRecord struct {
	MonthRecord
	CumulativeOrdinato  decimal.Decimal `json:"cumulativeOrdinato"`
	CumulativeFatturato decimal.Decimal `json:"cumulativeFatturato"`
	CumulativeTarget    decimal.Decimal `json:"cumulativeTarget"`
	// CumulativeForecast = ordinato YTD + forecast accumulato; valorizzato
	// solo per i mesi futuri, null altrimenti.
	CumulativeForecast decimal.NullDecimal `json:"cumulativeForecast"`
}

// Report output completo del motore: serie mensile, serie cumulativa e KPI.
type Report struct {
	Year           int                `json:"year"`
	MonthlyData    []MonthRecord      `json:"monthlyData"`
	CumulativeData []CumulativeRecord `json:"cumulativeData"`

	// KPI year-to-date, letti all'indice del mese corrente.
	YTDOrdinato  decimal.Decimal `json:"ytdOrdinato"`
	YTDFatturato decimal.Decimal `json:"ytdFatturato"`
	YTDTarget    decimal.Decimal `json:"ytdTarget"`
	// YTDBacklog = YTDOrdinato - YTDFatturato, qui NON clampato a zero
	// (a differenza del backlog mensile).
	YTDBacklog decimal.Decimal `json:"ytdBacklog"`

	WeightedPipeline decimal.Decimal `json:"weightedPipeline"`
	// ProjectedTotal = YTDOrdinato + intera pipeline ponderata (non la somma
	// delle quote mensili spalmate): proiezione full-year volutamente
	// semplificata rispetto alla vista cumulativa.
	ProjectedTotal decimal.Decimal `json:"projectedTotal"`
	AnnualTarget   decimal.Decimal `json:"annualTarget"`
}

// Compute ricalcola integralmente il report dall'istantanea corrente.
// Nessuna condizione d'errore: un record malformato (data assente, importo
// zero-value) degrada silenziosamente la precisione, non interrompe mai il
// calcolo.
func Compute(snap Snapshot, targets Targets) *Report {
	current := int(snap.Now.Month()) - 1 // indice 0–11 del mese corrente

	weighted := WeightedPipeline(snap.Opportunities)

	// Quota mensile della pipeline: spalmata uniformemente sui mesi
	// strettamente successivi a quello corrente. A dicembre non restano
	// mesi: la quota è zero per definizione, mai NaN o infinito.
	remaining := monthsInYear - 1 - current
	perMonth := decimal.Zero
	if remaining > 0 {
		perMonth = weighted.Div(decimal.NewFromInt(int64(remaining)))
	}

	monthly := make([]MonthRecord, 0, monthsInYear)
	for i := 0; i < monthsInYear; i++ {
		ordinato := ordinatoOfMonth(snap.Opportunities, snap.Year, i)
		fatturato := fatturatoOfMonth(snap.Invoices, snap.Year, i)

		backlog := ordinato.Sub(fatturato)
		if backlog.IsNegative() {
			backlog = decimal.Zero
		}

		rec := MonthRecord{
			Month:      MonthLabels[i],
			MonthIndex: i,
			Target:     targets.Month(i),
			Ordinato:   ordinato,
			Fatturato:  fatturato,
			Backlog:    backlog,
			IsPast:     i < current,
			IsCurrent:  i == current,
			IsFuture:   i > current,
		}
		if rec.IsFuture {
			rec.Forecast = decimal.NewNullDecimal(perMonth)
		}
		monthly = append(monthly, rec)
	}

	// Passata unica sinistra-destra. Per i mesi futuri l'ordinato è ignoto
	// per definizione: i progressivi storici restano congelati al valore YTD
	// e cresce solo l'overlay di forecast — attuali e proiezioni non si
	// mischiano mai nella stessa linea cumulativa.
	var cumOrdinato, cumFatturato, cumForecast, cumTarget decimal.Decimal
	cumulative := make([]CumulativeRecord, 0, monthsInYear)
	for _, m := range monthly {
		if m.IsFuture {
			if m.Forecast.Valid {
				cumForecast = cumForecast.Add(m.Forecast.Decimal)
			}
		} else {
			cumOrdinato = cumOrdinato.Add(m.Ordinato)
			cumFatturato = cumFatturato.Add(m.Fatturato)
		}
		cumTarget = cumTarget.Add(m.Target)

		rec := CumulativeRecord{
			MonthRecord:         m,
			CumulativeOrdinato:  cumOrdinato,
			CumulativeFatturato: cumFatturato,
			CumulativeTarget:    cumTarget,
		}
		if m.IsFuture {
			rec.CumulativeForecast = decimal.NewNullDecimal(cumOrdinato.Add(cumForecast))
		}
		cumulative = append(cumulative, rec)
	}

	ytd := cumulative[current]
	return &Report{
		Year:             snap.Year,
		MonthlyData:      monthly,
		CumulativeData:   cumulative,
		YTDOrdinato:      ytd.CumulativeOrdinato,
		YTDFatturato:     ytd.CumulativeFatturato,
		YTDTarget:        ytd.CumulativeTarget,
		YTDBacklog:       ytd.CumulativeOrdinato.Sub(ytd.CumulativeFatturato),
		WeightedPipeline: weighted,
		ProjectedTotal:   ytd.CumulativeOrdinato.Add(weighted),
		AnnualTarget:     targets.Annual,
	}
}

// ordinatoOfMonth somma il valore delle opportunità chiuse-vinte con
// closeDate nel mese indicato dell'anno. CloseDate assente = esclusa, mai un
// errore. Ogni opportunità cade al più in un mese (quello della sua data).
func ordinatoOfMonth(opportunities []entity.Opportunity, year, month int) decimal.Decimal {
	total := decimal.Zero
	for _, o := range opportunities {
		if o.CloseDate == nil {
			continue
		}
		if o.CloseDate.Year() != year || int(o.CloseDate.Month())-1 != month {
			continue
		}
		if !CountsAsWon(o) {
			continue
		}
		total = total.Add(o.Value)
	}
	return total
}

// fatturatoOfMonth somma gli importi delle fatture emesse nel mese indicato,
// escludendo bozze e annullate.
func fatturatoOfMonth(invoices []entity.Invoice, year, month int) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.IssueDate == nil {
			continue
		}
		if inv.IssueDate.Year() != year || int(inv.IssueDate.Month())-1 != month {
			continue
		}
		if inv.Status == entity.InvoiceStatusBozza || inv.Status == entity.InvoiceStatusAnnullata {
			continue
		}
		total = total.Add(inv.Amount)
	}
	return total
}
