// Package pdf implementa il rendering del report di forecast commerciale.
//
// Layout della pagina A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: vCRM + anno  │  Forecast Vendite + data            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPI: Ordinato / Fatturato / Backlog / Pipeline / Proiezione│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELLA: Mese | Target | Ordinato | Fatturato | Forecast   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: target annuale + nota sul metodo                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vcrm-app/vcrm-api/internal/application/analytics"
	"github.com/vcrm-app/vcrm-api/internal/domain/forecast"
)

// ── Palette colori ────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// printer formatta gli importi con separatori italiani (1.234,56).
var printer = message.NewPrinter(language.Italian)

var _ analytics.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.ReportGenerator con Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator costruisce il generatore.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// ForecastReport genera il PDF del report e ne restituisce i byte.
func (g *MarotoReportGenerator) ForecastReport(report *forecast.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Forecast Vendite %d", report.Year), true).
		WithAuthor("vCRM", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableMonthRows(report) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: genera documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sezioni ───────────────────────────────────────────────────────────────────

// headerRow: nome applicazione (sx) e titolo report + anno (dx).
func headerRow(report *forecast.Report) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("vCRM", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Sales Forecast & Pipeline", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("FORECAST VENDITE", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Anno %d", report.Year), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// kpiRow: i cinque indicatori year-to-date in colonne affiancate.
func kpiRow(report *forecast.Report) core.Row {
	kpi := func(label string, value decimal.Decimal) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New("€ "+formatAmount(value), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(14).Add(
		col.New(1),
		kpi("ORDINATO YTD", report.YTDOrdinato),
		kpi("FATTURATO YTD", report.YTDFatturato),
		kpi("BACKLOG YTD", report.YTDBacklog),
		kpi("PIPELINE PESATA", report.WeightedPipeline),
		kpi("PROIEZIONE ANNO", report.ProjectedTotal),
		col.New(1),
	)
}

// tableHeaderRow: intestazione della tabella mensile.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Mese", 2, align.Left),
		h("Target", 2, align.Right),
		h("Ordinato", 2, align.Right),
		h("Fatturato", 2, align.Right),
		h("Backlog", 2, align.Right),
		h("Forecast", 2, align.Right),
	)
}

// tableMonthRows: una riga per mese; il mese corrente è in grassetto.
func tableMonthRows(report *forecast.Report) []core.Row {
	result := make([]core.Row, 0, len(report.MonthlyData))
	for _, m := range report.MonthlyData {
		style := fontstyle.Normal
		if m.IsCurrent {
			style = fontstyle.Bold
		}
		cell := func(s string, a align.Type, size int) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 8, Style: style, Align: a, Top: 1, Left: 1, Right: 1,
			}))
		}
		forecastCell := "—" // mesi passati e corrente: nessuna proiezione
		if m.Forecast.Valid {
			forecastCell = formatAmount(m.Forecast.Decimal)
		}
		result = append(result, row.New(7).Add(
			cell(m.Month, align.Left, 2),
			cell(formatAmount(m.Target), align.Right, 2),
			cell(formatAmount(m.Ordinato), align.Right, 2),
			cell(formatAmount(m.Fatturato), align.Right, 2),
			cell(formatAmount(m.Backlog), align.Right, 2),
			cell(forecastCell, align.Right, 2),
		))
	}
	return result
}

// footerRow: target annuale e nota sul metodo di calcolo.
func footerRow(report *forecast.Report) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(
				printer.Sprintf("Target annuale: € %s — raggiunto: € %s",
					formatAmount(report.AnnualTarget), formatAmount(report.YTDOrdinato)),
				props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2},
			),
			text.New(
				"La colonna Forecast distribuisce la pipeline pesata sui mesi successivi "+
					"a quello corrente. La proiezione anno somma l'ordinato YTD all'intera "+
					"pipeline pesata.",
				props.Text{Size: 6.5, Color: colorGray, Top: 9},
			),
		),
	)
}

// ── helper ────────────────────────────────────────────────────────────────────

// formatAmount rende l'importo con separatori di migliaia e virgola decimale
// secondo la locale italiana: 12345.5 → "12.345,50".
func formatAmount(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.InexactFloat64())
}
