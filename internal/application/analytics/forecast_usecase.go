// Package analytics contiene i casi d'uso di reportistica: forecast
// commerciale, statistiche, ricerca globale ed export dei dati.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
	"github.com/vcrm-app/vcrm-api/internal/domain/forecast"
	"github.com/vcrm-app/vcrm-api/internal/domain/repository"
)

// ReportGenerator rende il report di forecast in un documento scaricabile
// (implementato dall'adapter PDF).
type ReportGenerator interface {
	ForecastReport(report *forecast.Report) ([]byte, error)
}

// ForecastUseCase ricalcola il report di forecast dall'istantanea corrente
// delle collezioni. Nessuno stato: ogni richiesta è un ricalcolo completo.
type ForecastUseCase struct {
	oppRepo     repository.OpportunityRepository
	invoiceRepo repository.InvoiceRepository
	taskRepo    repository.TaskRepository
	contactRepo repository.ContactRepository
	targets     forecast.Targets
	pdf         ReportGenerator
}

// NewForecastUseCase costruisce il caso d'uso del forecast.
func NewForecastUseCase(
	oppRepo repository.OpportunityRepository,
	invoiceRepo repository.InvoiceRepository,
	taskRepo repository.TaskRepository,
	contactRepo repository.ContactRepository,
	targets forecast.Targets,
	pdf ReportGenerator,
) *ForecastUseCase {
	return &ForecastUseCase{
		oppRepo:     oppRepo,
		invoiceRepo: invoiceRepo,
		taskRepo:    taskRepo,
		contactRepo: contactRepo,
		targets:     targets,
		pdf:         pdf,
	}
}

// Compute carica l'istantanea e calcola il report per l'anno indicato
// (0 = anno corrente).
//
// Quattro letture in parallelo:
//  1. ListAll opportunità  → pipeline e ordinato
//  2. List fatture (anno)  → fatturato
//  3. ListAll attività     → istantanea completa
//  4. ListAll contatti     → istantanea completa
func (uc *ForecastUseCase) Compute(ctx context.Context, year int) (*forecast.Report, error) {
	now := time.Now()
	if year <= 0 {
		year = now.Year()
	}

	// ── Goroutine per parallelizzare le 4 letture DB ──────────────────────────
	type oppsResult struct {
		opps []entity.Opportunity
		err  error
	}
	type invoicesResult struct {
		invoices []entity.Invoice
		err      error
	}
	type tasksResult struct {
		tasks []entity.Task
		err   error
	}
	type contactsResult struct {
		contacts []entity.Contact
		err      error
	}

	oppCh := make(chan oppsResult, 1)
	invCh := make(chan invoicesResult, 1)
	taskCh := make(chan tasksResult, 1)
	contactCh := make(chan contactsResult, 1)

	go func() {
		opps, err := uc.oppRepo.ListAll(ctx)
		oppCh <- oppsResult{opps, err}
	}()
	go func() {
		invoices, err := uc.invoiceRepo.List(ctx, year)
		invCh <- invoicesResult{invoices, err}
	}()
	go func() {
		tasks, err := uc.taskRepo.ListAll(ctx)
		taskCh <- tasksResult{tasks, err}
	}()
	go func() {
		contacts, err := uc.contactRepo.ListAll(ctx)
		contactCh <- contactsResult{contacts, err}
	}()

	opps := <-oppCh
	invoices := <-invCh
	tasks := <-taskCh
	contacts := <-contactCh

	if opps.err != nil {
		return nil, fmt.Errorf("forecast: opportunità: %w", opps.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("forecast: fatture: %w", invoices.err)
	}
	if tasks.err != nil {
		return nil, fmt.Errorf("forecast: attività: %w", tasks.err)
	}
	if contacts.err != nil {
		return nil, fmt.Errorf("forecast: contatti: %w", contacts.err)
	}

	snap := forecast.Snapshot{
		Opportunities: opps.opps,
		Invoices:      invoices.invoices,
		Tasks:         tasks.tasks,
		Contacts:      contacts.contacts,
		Year:          year,
		Now:           now,
	}
	return forecast.Compute(snap, uc.targets), nil
}

// ComputePDF calcola il report e lo rende in PDF.
func (uc *ForecastUseCase) ComputePDF(ctx context.Context, year int) ([]byte, error) {
	report, err := uc.Compute(ctx, year)
	if err != nil {
		return nil, err
	}
	return uc.pdf.ForecastReport(report)
}
