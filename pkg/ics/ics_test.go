package ics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vcrm-app/vcrm-api/pkg/ics"
)

func TestCalendar_EventoGiornaliero(t *testing.T) {
	out := ics.Calendar(ics.Event{
		UID:       "abc-123@vcrm.app",
		Summary:   "Chiamata con Rossi",
		Date:      time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Confirmed: false,
	})

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Contains(t, out, "UID:abc-123@vcrm.app")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250310")
	// DTEND esclusivo: il giorno dopo.
	assert.Contains(t, out, "DTEND;VALUE=DATE:20250311")
	assert.Contains(t, out, "SUMMARY:Chiamata con Rossi")
	assert.Contains(t, out, "STATUS:TENTATIVE")
	assert.NotContains(t, out, "DESCRIPTION:")
}

func TestCalendar_CompletataDiventaConfirmed(t *testing.T) {
	out := ics.Calendar(ics.Event{
		UID:       "x@vcrm.app",
		Summary:   "Follow up",
		Date:      time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		Confirmed: true,
	})
	assert.Contains(t, out, "STATUS:CONFIRMED")
	// Fine anno: DTEND scavalca nel nuovo anno.
	assert.Contains(t, out, "DTEND;VALUE=DATE:20260101")
}

func TestCalendar_EscapingTesto(t *testing.T) {
	out := ics.Calendar(ics.Event{
		UID:         "y@vcrm.app",
		Summary:     "Offerta; revisione, fase 2",
		Description: "riga1\nriga2",
		Date:        time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Contains(t, out, "SUMMARY:Offerta\\; revisione\\, fase 2")
	assert.Contains(t, out, "DESCRIPTION:riga1\\nriga2")
}
