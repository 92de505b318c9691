package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrm-app/vcrm-api/internal/application/dto"
)

func TestParseDate_FormatiAccettati(t *testing.T) {
	d := dto.ParseDate("2025-01-15")
	require.NotNil(t, d)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, "2025-01-15", dto.FormatDate(d))

	// Timestamp ISO completo (dati legacy)
	d = dto.ParseDate("2025-01-15T10:30:00Z")
	require.NotNil(t, d)
	assert.Equal(t, "2025-01-15", dto.FormatDate(d))
}

func TestParseDate_TolleranteMaiErrore(t *testing.T) {
	// Date illeggibili = record escluso dalle aggregazioni, mai un errore.
	assert.Nil(t, dto.ParseDate(""))
	assert.Nil(t, dto.ParseDate("non-una-data"))
	assert.Nil(t, dto.ParseDate("15/01/2025"))
	assert.Equal(t, "", dto.FormatDate(nil))
}

func TestInvoiceRequest_AliasLegacyDellaData(t *testing.T) {
	// issueDate vince; date è il fallback legacy.
	r := dto.InvoiceRequest{IssueDate: "2025-02-01", Date: "2024-12-31"}
	assert.Equal(t, "2025-02-01", r.ResolveIssueDate())

	r = dto.InvoiceRequest{Date: "2024-12-31"}
	assert.Equal(t, "2024-12-31", r.ResolveIssueDate())

	assert.Equal(t, "", dto.InvoiceRequest{}.ResolveIssueDate())
}
