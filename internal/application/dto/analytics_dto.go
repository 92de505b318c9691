package dto

import "github.com/shopspring/decimal"

// StatsDTO risposta di GET /api/stats: contatori globali e cifre derivate
// dalla classificazione degli stage (stesso classificatore del forecast).
type StatsDTO struct {
	Contacts      int             `json:"contacts"`
	Opportunities int             `json:"opportunities"`
	Tasks         int             `json:"tasks"`
	PipelineValue decimal.Decimal `json:"pipelineValue"` // somma valore opportunità attive
	WonDeals      int             `json:"wonDeals"`
	WonValue      decimal.Decimal `json:"wonValue"`
	LostDeals     int             `json:"lostDeals"`
	OpenTasks     int             `json:"openTasks"`
}

// SearchResultsDTO risposta di GET /api/search: massimo 10 risultati per tipo.
type SearchResultsDTO struct {
	Contacts      []*ContactResponse     `json:"contacts"`
	Opportunities []*OpportunityResponse `json:"opportunities"`
	Tasks         []*TaskResponse        `json:"tasks"`
}

// ExportDataDTO payload comune di GET /api/export.
type ExportDataDTO struct {
	Contacts      []*ContactResponse     `json:"contacts"`
	Opportunities []*OpportunityResponse `json:"opportunities"`
	Tasks         []*TaskResponse        `json:"tasks"`
	Invoices      []*InvoiceResponse     `json:"invoices"`
}

// ExportJSONDTO risposta per format=json.
type ExportJSONDTO struct {
	Format     string        `json:"format"`
	ExportDate string        `json:"exportDate"`
	Data       ExportDataDTO `json:"data"`
}

// ExportCSVDTO risposta per format=csv: un documento CSV per collezione.
type ExportCSVDTO struct {
	Format string            `json:"format"`
	Data   map[string]string `json:"data"`
}
