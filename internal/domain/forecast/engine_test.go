package forecast_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
	"github.com/vcrm-app/vcrm-api/internal/domain/forecast"
)

// ──────────────────────────────────────────────────────────────────────────────
// Questa suite è il "canarino nella miniera" del motore di forecast: inchioda
// il vettore end-to-end di riferimento (marzo 2025) e le proprietà invarianti
// del calcolo. Se qualcuno tocca inavvertitamente l'aritmetica dei bucket
// mensili, la regola di spalmatura o il ramo cumulativo, questi test falliscono
// subito.
// ──────────────────────────────────────────────────────────────────────────────

var testTargets = forecast.NewTargets(
	[12]float64{3000, 5000, 5000, 7000, 7000, 7000, 7000, 2500, 2500, 8000, 8000, 9000},
	85000,
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// assertDecimal confronta due decimali per valore (non per rappresentazione).
func assertDecimal(t *testing.T, want decimal.Decimal, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, want.Equal(got), "atteso %s, ottenuto %s — %v", want, got, msgAndArgs)
}

// ── Vettore end-to-end di riferimento ─────────────────────────────────────────
//
// Mese corrente marzo (M=2, 0-based), anno 2025.
//   - 1 opportunità vinta  {10000, "Chiuso Vinto", closeDate 2025-01-15}
//   - 1 fattura pagata     {4000, issueDate 2025-01-20}
//   - 1 opportunità attiva {20000, "Lead", closeDate assente, probability assente}
//
// Attesi: ordinato[0]=10000, fatturato[0]=4000, backlog[0]=6000,
// weightedPipeline=2000, forecast[3..11]=2000/9, ytdOrdinato=10000,
// ytdFatturato=4000, ytdBacklog=6000, projectedTotal=12000.
func TestCompute_VettoreMarzo2025(t *testing.T) {
	snap := forecast.Snapshot{
		Opportunities: []entity.Opportunity{
			{Title: "Commessa A", Value: dec(10000), Stage: "Chiuso Vinto", CloseDate: date(2025, time.January, 15)},
			{Title: "Lead B", Value: dec(20000), Stage: "Lead"},
		},
		Invoices: []entity.Invoice{
			{Amount: dec(4000), IssueDate: date(2025, time.January, 20), Status: "Pagata"},
		},
		Year: 2025,
		Now:  time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
	}

	r := forecast.Compute(snap, testTargets)
	require.Len(t, r.MonthlyData, 12)
	require.Len(t, r.CumulativeData, 12)

	// Gennaio
	gen := r.MonthlyData[0]
	assertDecimal(t, dec(10000), gen.Ordinato, "ordinato gennaio")
	assertDecimal(t, dec(4000), gen.Fatturato, "fatturato gennaio")
	assertDecimal(t, dec(6000), gen.Backlog, "backlog gennaio")
	assert.True(t, gen.IsPast)

	// Tutti gli altri mesi: ordinato zero (partizione per data di chiusura)
	for i := 1; i < 12; i++ {
		assert.True(t, r.MonthlyData[i].Ordinato.IsZero(), "ordinato mese %d", i)
	}

	// Pipeline ponderata: 20000 × 0.10 = 2000
	assertDecimal(t, dec(2000), r.WeightedPipeline)

	// Forecast: nullo fino a marzo incluso, 2000/9 da aprile in poi
	perMonth := dec(2000).Div(dec(9))
	for i := 0; i < 12; i++ {
		m := r.MonthlyData[i]
		if i <= 2 {
			assert.False(t, m.Forecast.Valid, "forecast mese %d deve essere null", i)
		} else {
			require.True(t, m.Forecast.Valid, "forecast mese %d deve essere presente", i)
			assertDecimal(t, perMonth, m.Forecast.Decimal, "forecast mese", i)
		}
	}

	// KPI
	assertDecimal(t, dec(10000), r.YTDOrdinato)
	assertDecimal(t, dec(4000), r.YTDFatturato)
	assertDecimal(t, dec(6000), r.YTDBacklog)
	assertDecimal(t, dec(13000), r.YTDTarget, "3000+5000+5000")
	assertDecimal(t, dec(12000), r.ProjectedTotal, "ytdOrdinato + pipeline ponderata")

	// Serie cumulativa: i mesi futuri congelano lo storico e fanno crescere
	// solo l'overlay di forecast.
	mar := r.CumulativeData[2]
	assertDecimal(t, dec(10000), mar.CumulativeOrdinato)
	assert.False(t, mar.CumulativeForecast.Valid, "mese corrente: niente cumulativeForecast")

	apr := r.CumulativeData[3]
	assertDecimal(t, dec(10000), apr.CumulativeOrdinato, "storico congelato")
	require.True(t, apr.CumulativeForecast.Valid)
	assertDecimal(t, dec(10000).Add(perMonth), apr.CumulativeForecast.Decimal)

	// A dicembre l'overlay ha accumulato le 9 quote (≈ intera pipeline).
	dic := r.CumulativeData[11]
	require.True(t, dic.CumulativeForecast.Valid)
	diff := dic.CumulativeForecast.Decimal.Sub(dec(12000)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.0001)),
		"cumulativeForecast dicembre ≈ 12000, ottenuto %s", dic.CumulativeForecast.Decimal)
}

// ── Regole di esclusione ──────────────────────────────────────────────────────

func TestCompute_BozzaEAnnullataEscluseDalFatturato(t *testing.T) {
	snap := forecast.Snapshot{
		Invoices: []entity.Invoice{
			{Amount: dec(5000), IssueDate: date(2025, time.June, 1), Status: "Bozza"},
			{Amount: dec(3000), IssueDate: date(2025, time.June, 2), Status: "Annullata"},
			{Amount: dec(1000), IssueDate: date(2025, time.June, 3), Status: "Emessa"},
		},
		Year: 2025,
		Now:  time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
	}
	r := forecast.Compute(snap, testTargets)
	assertDecimal(t, dec(1000), r.MonthlyData[5].Fatturato, "solo la fattura emessa conta")
}

func TestCompute_DateAssentiEscludonoIlRecord(t *testing.T) {
	snap := forecast.Snapshot{
		Opportunities: []entity.Opportunity{
			// Vinta ma senza closeDate: esclusa dall'ordinato, mai un errore.
			{Value: dec(7000), Stage: "Chiuso Vinto"},
		},
		Invoices: []entity.Invoice{
			// Fattura senza data di emissione: esclusa dal fatturato.
			{Amount: dec(4000), Status: "Pagata"},
		},
		Year: 2025,
		Now:  time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
	r := forecast.Compute(snap, testTargets)
	for i := 0; i < 12; i++ {
		assert.True(t, r.MonthlyData[i].Ordinato.IsZero(), "mese %d", i)
		assert.True(t, r.MonthlyData[i].Fatturato.IsZero(), "mese %d", i)
	}
}

func TestCompute_AnnoDiversoEscluso(t *testing.T) {
	snap := forecast.Snapshot{
		Opportunities: []entity.Opportunity{
			{Value: dec(9000), Stage: "Chiuso Vinto", CloseDate: date(2024, time.March, 1)},
		},
		Year: 2025,
		Now:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	r := forecast.Compute(snap, testTargets)
	assert.True(t, r.YTDOrdinato.IsZero(), "chiusure 2024 non contano nel 2025")
}

// ── Proprietà invarianti ──────────────────────────────────────────────────────

func TestCompute_BacklogMaiNegativo(t *testing.T) {
	// Fatturato > ordinato nello stesso mese: il backlog mensile si ferma a 0.
	snap := forecast.Snapshot{
		Opportunities: []entity.Opportunity{
			{Value: dec(1000), Stage: "Chiuso Vinto", CloseDate: date(2025, time.February, 10)},
		},
		Invoices: []entity.Invoice{
			{Amount: dec(5000), IssueDate: date(2025, time.February, 12), Status: "Pagata"},
		},
		Year: 2025,
		Now:  time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
	r := forecast.Compute(snap, testTargets)
	for _, m := range r.MonthlyData {
		assert.False(t, m.Backlog.IsNegative(), "backlog %s", m.Month)
	}
	// Il KPI invece NON è clampato: qui deve risultare negativo.
	assertDecimal(t, dec(-4000), r.YTDBacklog)
}

func TestCompute_PartizionePerMese(t *testing.T) {
	// Un'opportunità vinta con closeDate valida contribuisce a esattamente
	// un mese; la somma dei 12 bucket è il suo valore.
	snap := forecast.Snapshot{
		Opportunities: []entity.Opportunity{
			{Value: dec(8000), Stage: "Chiuso Vinto", CloseDate: date(2025, time.September, 30)},
		},
		Year: 2025,
		Now:  time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
	}
	r := forecast.Compute(snap, testTargets)

	sum := decimal.Zero
	nonZero := 0
	for _, m := range r.MonthlyData {
		sum = sum.Add(m.Ordinato)
		if !m.Ordinato.IsZero() {
			nonZero++
		}
	}
	assertDecimal(t, dec(8000), sum)
	assert.Equal(t, 1, nonZero, "il valore cade in un solo mese")
	assertDecimal(t, dec(8000), r.MonthlyData[8].Ordinato, "settembre")
}

func TestCompute_DicembreSenzaMesiResidui(t *testing.T) {
	// Mese corrente dicembre: nessun mese futuro, nessun forecast, e la
	// divisione per zero è definita come quota nulla (mai NaN/∞).
	snap := forecast.Snapshot{
		Opportunities: []entity.Opportunity{
			{Value: dec(50000), Stage: "Lead"},
		},
		Year: 2025,
		Now:  time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC),
	}
	r := forecast.Compute(snap, testTargets)
	for _, m := range r.MonthlyData {
		assert.False(t, m.Forecast.Valid, "nessun forecast a dicembre (%s)", m.Month)
	}
	for _, c := range r.CumulativeData {
		assert.False(t, c.CumulativeForecast.Valid)
	}
	// La pipeline resta comunque nei KPI di proiezione.
	assertDecimal(t, dec(5000), r.WeightedPipeline)
	assertDecimal(t, dec(5000), r.ProjectedTotal)
}

func TestCompute_TargetCumulativoMonotono(t *testing.T) {
	snap := forecast.Snapshot{
		Year: 2025,
		Now:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	r := forecast.Compute(snap, testTargets)
	prev := decimal.Zero
	for _, c := range r.CumulativeData {
		assert.True(t, c.CumulativeTarget.GreaterThanOrEqual(prev),
			"cumulativeTarget non monotono a %s", c.Month)
		prev = c.CumulativeTarget
	}
	// La tabella mensile somma a 71000; il target annuale (85000) è un
	// valore a sé, non derivato dalla somma dei mesi.
	assertDecimal(t, dec(71000), prev, "somma dei 12 target mensili")
	assertDecimal(t, dec(85000), r.AnnualTarget, "target annuale")
}

func TestCompute_CoerenzaKPIConSerieCumulativa(t *testing.T) {
	snap := forecast.Snapshot{
		Opportunities: []entity.Opportunity{
			{Value: dec(3000), Stage: "Chiuso Vinto", CloseDate: date(2025, time.January, 5)},
			{Value: dec(2000), Stage: "Revisionare offerta", OriginalStage: "Chiuso Vinto", CloseDate: date(2025, time.March, 5)},
			{Value: dec(12000), Stage: "In contatto"},
		},
		Invoices: []entity.Invoice{
			{Amount: dec(1500), IssueDate: date(2025, time.February, 20), Status: "Emessa"},
		},
		Year: 2025,
		Now:  time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC),
	}
	r := forecast.Compute(snap, testTargets)

	current := 3 // aprile
	assertDecimal(t, r.CumulativeData[current].CumulativeOrdinato, r.YTDOrdinato)
	assertDecimal(t, r.CumulativeData[current].CumulativeFatturato, r.YTDFatturato)
	assertDecimal(t, r.CumulativeData[current].CumulativeTarget, r.YTDTarget)
	assertDecimal(t, r.YTDOrdinato.Sub(r.YTDFatturato), r.YTDBacklog)

	// L'opportunità riclassificata (OriginalStage vinto) è ordinato a marzo.
	assertDecimal(t, dec(2000), r.MonthlyData[2].Ordinato)
	// Ma essendo tornata su uno stage attivo rientra ANCHE nella pipeline
	// ponderata: 12000×0.20 + 2000×0.60. È l'asimmetria segnalata agli
	// stakeholder, preservata di proposito.
	assertDecimal(t, dec(2400).Add(dec(1200)), r.WeightedPipeline)
}

// ── Determinismo ──────────────────────────────────────────────────────────────

func TestCompute_Idempotente(t *testing.T) {
	snap := forecast.Snapshot{
		Opportunities: []entity.Opportunity{
			{Value: dec(10000), Stage: "Chiuso Vinto", CloseDate: date(2025, time.January, 15)},
			{Value: dec(20000), Stage: "Lead"},
		},
		Invoices: []entity.Invoice{
			{Amount: dec(4000), IssueDate: date(2025, time.January, 20), Status: "Pagata"},
		},
		Year: 2025,
		Now:  time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
	r1 := forecast.Compute(snap, testTargets)
	r2 := forecast.Compute(snap, testTargets)
	assert.Equal(t, r1, r2, "stesso input (stessa data corrente) ⇒ stesso output")
}
