package analytics

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrm-app/vcrm-api/internal/application/dto"
	"github.com/vcrm-app/vcrm-api/internal/domain"
)

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat("json"))
	assert.NoError(t, ValidateFormat("csv"))
	assert.NoError(t, ValidateFormat("xml"))
	assert.ErrorIs(t, ValidateFormat("yaml"), domain.ErrInvalidInput)
	assert.ErrorIs(t, ValidateFormat(""), domain.ErrInvalidInput)
}

func TestContactsCSV(t *testing.T) {
	intero := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	out := ContactsCSV([]*dto.ContactResponse{
		{
			ID: "c1", Name: "Mario Rossi", Company: "ACME, Srl", Email: "mario@acme.it",
			Phone: "+39 333 1234567", Value: intero("1500.50"), Status: "Cliente",
			LastContact: "2025-02-10", Notes: "nota con \"virgolette\"",
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,company,email,phone,value,status,lastContact,notes", lines[0])
	// La virgola nel nome azienda e le virgolette nelle note devono essere
	// quotate secondo RFC 4180.
	assert.Contains(t, lines[1], `"ACME, Srl"`)
	assert.Contains(t, lines[1], `"nota con ""virgolette"""`)
	assert.Contains(t, lines[1], "1500.5")
}

func TestOpportunitiesCSV_ProbabilitaOpzionale(t *testing.T) {
	p := 60
	out := OpportunitiesCSV([]*dto.OpportunityResponse{
		{ID: "o1", Title: "Offerta A", Value: decimal.NewFromInt(1000), Stage: "Lead"},
		{ID: "o2", Title: "Offerta B", Value: decimal.NewFromInt(2000), Stage: "Revisionare offerta", Probability: &p},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	// Probabilità assente = campo vuoto, mai uno zero inventato.
	assert.Contains(t, lines[1], "o1,Offerta A,,1000,Lead,,")
	assert.Contains(t, lines[2], ",60,")
}

func TestCSV_CollezioneVuota(t *testing.T) {
	out := TasksCSV(nil)
	assert.Equal(t, "id,title,type,priority,status,dueDate,description\n", out)
}

func TestBuildXML(t *testing.T) {
	data := &dto.ExportDataDTO{
		Contacts: []*dto.ContactResponse{
			{ID: "c1", Name: "Mario <Rossi>", Value: decimal.NewFromInt(100)},
		},
		Opportunities: []*dto.OpportunityResponse{
			{ID: "o1", Title: "Offerta A", Value: decimal.NewFromInt(5000), Stage: "Lead"},
		},
		Tasks:    []*dto.TaskResponse{},
		Invoices: []*dto.InvoiceResponse{},
	}

	raw, err := buildXML(data)
	require.NoError(t, err)
	xml := string(raw)

	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, "<vcrmExport")
	assert.Contains(t, xml, `<contact id="c1">`)
	// etree esegue l'escaping dei caratteri speciali XML.
	assert.Contains(t, xml, "Mario &lt;Rossi&gt;")
	assert.Contains(t, xml, `<opportunity id="o1">`)
	assert.Contains(t, xml, "<stage>Lead</stage>")
	assert.NotContains(t, xml, "<probability>")
}
