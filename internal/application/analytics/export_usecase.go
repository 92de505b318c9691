package analytics

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/vcrm-app/vcrm-api/internal/application/dto"
	"github.com/vcrm-app/vcrm-api/internal/domain"
	"github.com/vcrm-app/vcrm-api/internal/domain/repository"
)

// Formati di export supportati.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXML  = "xml"
)

// ExportUseCase esporta l'intero dataset (contatti, opportunità, attività,
// fatture) nei formati json, csv e xml.
type ExportUseCase struct {
	contactRepo repository.ContactRepository
	oppRepo     repository.OpportunityRepository
	taskRepo    repository.TaskRepository
	invoiceRepo repository.InvoiceRepository
}

// NewExportUseCase costruisce il caso d'uso dell'export.
func NewExportUseCase(
	contactRepo repository.ContactRepository,
	oppRepo repository.OpportunityRepository,
	taskRepo repository.TaskRepository,
	invoiceRepo repository.InvoiceRepository,
) *ExportUseCase {
	return &ExportUseCase{
		contactRepo: contactRepo,
		oppRepo:     oppRepo,
		taskRepo:    taskRepo,
		invoiceRepo: invoiceRepo,
	}
}

// snapshot carica tutte le collezioni (nessun filtro per utente: l'export è
// il backup completo del dataset).
func (uc *ExportUseCase) snapshot(ctx context.Context) (*dto.ExportDataDTO, error) {
	contacts, err := uc.contactRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: contatti: %w", err)
	}
	opps, err := uc.oppRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: opportunità: %w", err)
	}
	tasks, err := uc.taskRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: attività: %w", err)
	}
	invoices, err := uc.invoiceRepo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("export: fatture: %w", err)
	}

	data := &dto.ExportDataDTO{
		Contacts:      []*dto.ContactResponse{},
		Opportunities: []*dto.OpportunityResponse{},
		Tasks:         []*dto.TaskResponse{},
		Invoices:      []*dto.InvoiceResponse{},
	}
	for i := range contacts {
		data.Contacts = append(data.Contacts, dto.ToContactResponse(&contacts[i]))
	}
	for i := range opps {
		data.Opportunities = append(data.Opportunities, dto.ToOpportunityResponse(&opps[i]))
	}
	for i := range tasks {
		data.Tasks = append(data.Tasks, dto.ToTaskResponse(&tasks[i]))
	}
	for i := range invoices {
		data.Invoices = append(data.Invoices, dto.ToInvoiceResponse(&invoices[i]))
	}
	return data, nil
}

// ExportJSON produce il payload per format=json.
func (uc *ExportUseCase) ExportJSON(ctx context.Context) (*dto.ExportJSONDTO, error) {
	data, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ExportJSONDTO{
		Format:     FormatJSON,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		Data:       *data,
	}, nil
}

// ExportCSV produce un documento CSV per collezione (format=csv).
func (uc *ExportUseCase) ExportCSV(ctx context.Context) (*dto.ExportCSVDTO, error) {
	data, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ExportCSVDTO{
		Format: FormatCSV,
		Data: map[string]string{
			"contacts":      ContactsCSV(data.Contacts),
			"opportunities": OpportunitiesCSV(data.Opportunities),
			"tasks":         TasksCSV(data.Tasks),
			"invoices":      InvoicesCSV(data.Invoices),
		},
	}, nil
}

// ExportXML produce il documento XML completo (format=xml).
func (uc *ExportUseCase) ExportXML(ctx context.Context) ([]byte, error) {
	data, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return buildXML(data)
}

// ValidateFormat controlla che il formato richiesto sia supportato. Lo
// smistamento resta nel handler: il tipo di ritorno dipende dal formato.
func ValidateFormat(format string) error {
	switch format {
	case FormatJSON, FormatCSV, FormatXML:
		return nil
	default:
		return domain.ErrInvalidInput
	}
}

// ── CSV ─────────────────────────────────────────────────────────────────────

func writeCSV(header []string, rows [][]string) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write(header)
	_ = w.WriteAll(rows)
	w.Flush()
	return b.String()
}

// ContactsCSV serializza i contatti in CSV.
func ContactsCSV(contacts []*dto.ContactResponse) string {
	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []string{
			c.ID, c.Name, c.Company, c.Email, c.Phone,
			c.Value.String(), c.Status, c.LastContact, c.Notes,
		})
	}
	return writeCSV(
		[]string{"id", "name", "company", "email", "phone", "value", "status", "lastContact", "notes"},
		rows,
	)
}

// OpportunitiesCSV serializza le opportunità in CSV.
func OpportunitiesCSV(opps []*dto.OpportunityResponse) string {
	rows := make([][]string, 0, len(opps))
	for _, o := range opps {
		prob := ""
		if o.Probability != nil {
			prob = strconv.Itoa(*o.Probability)
		}
		rows = append(rows, []string{
			o.ID, o.Title, o.Company, o.Value.String(), o.Stage, prob,
			o.OpenDate, o.CloseDate, o.Owner, o.OriginalStage, o.Notes,
		})
	}
	return writeCSV(
		[]string{"id", "title", "company", "value", "stage", "probability", "openDate", "closeDate", "owner", "originalStage", "notes"},
		rows,
	)
}

// TasksCSV serializza le attività in CSV.
func TasksCSV(tasks []*dto.TaskResponse) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			t.ID, t.Title, t.Type, t.Priority, t.Status, t.DueDate, t.Description,
		})
	}
	return writeCSV(
		[]string{"id", "title", "type", "priority", "status", "dueDate", "description"},
		rows,
	)
}

// InvoicesCSV serializza le fatture in CSV.
func InvoicesCSV(invoices []*dto.InvoiceResponse) string {
	rows := make([][]string, 0, len(invoices))
	for _, i := range invoices {
		rows = append(rows, []string{
			i.ID, i.Number, i.CustomerName, i.Amount.String(), i.IssueDate, i.Status, i.Notes,
		})
	}
	return writeCSV(
		[]string{"id", "number", "customerName", "amount", "issueDate", "status", "notes"},
		rows,
	)
}

// ── XML ─────────────────────────────────────────────────────────────────────

// buildXML costruisce il documento con etree: un elemento per record, un
// sotto-elemento per campo, indentato per leggibilità.
func buildXML(data *dto.ExportDataDTO) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("vcrmExport")
	root.CreateAttr("exportDate", time.Now().UTC().Format(time.RFC3339))

	contacts := root.CreateElement("contacts")
	for _, c := range data.Contacts {
		el := contacts.CreateElement("contact")
		el.CreateAttr("id", c.ID)
		addText(el, "name", c.Name)
		addText(el, "company", c.Company)
		addText(el, "email", c.Email)
		addText(el, "phone", c.Phone)
		addText(el, "value", c.Value.String())
		addText(el, "status", c.Status)
		addText(el, "lastContact", c.LastContact)
		addText(el, "notes", c.Notes)
	}

	opps := root.CreateElement("opportunities")
	for _, o := range data.Opportunities {
		el := opps.CreateElement("opportunity")
		el.CreateAttr("id", o.ID)
		addText(el, "title", o.Title)
		addText(el, "company", o.Company)
		addText(el, "value", o.Value.String())
		addText(el, "stage", o.Stage)
		if o.Probability != nil {
			addText(el, "probability", strconv.Itoa(*o.Probability))
		}
		addText(el, "openDate", o.OpenDate)
		addText(el, "closeDate", o.CloseDate)
		addText(el, "owner", o.Owner)
		addText(el, "originalStage", o.OriginalStage)
		addText(el, "notes", o.Notes)
	}

	tasks := root.CreateElement("tasks")
	for _, t := range data.Tasks {
		el := tasks.CreateElement("task")
		el.CreateAttr("id", t.ID)
		addText(el, "title", t.Title)
		addText(el, "type", t.Type)
		addText(el, "priority", t.Priority)
		addText(el, "status", t.Status)
		addText(el, "dueDate", t.DueDate)
		addText(el, "description", t.Description)
	}

	invoices := root.CreateElement("invoices")
	for _, i := range data.Invoices {
		el := invoices.CreateElement("invoice")
		el.CreateAttr("id", i.ID)
		addText(el, "number", i.Number)
		addText(el, "customerName", i.CustomerName)
		addText(el, "amount", i.Amount.String())
		addText(el, "issueDate", i.IssueDate)
		addText(el, "status", i.Status)
		addText(el, "notes", i.Notes)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// addText aggiunge un sotto-elemento testuale, omettendo i campi vuoti.
func addText(parent *etree.Element, name, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(name).SetText(value)
}
