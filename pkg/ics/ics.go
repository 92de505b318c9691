// Package ics genera documenti iCalendar (RFC 5545) minimali: un evento
// giornaliero per attività, importabile da Google Calendar e Outlook.
package ics

import (
	"strings"
	"time"
)

const dateLayout = "20060102"

// Event descrive l'evento giornaliero esportato.
type Event struct {
	UID         string
	Summary     string
	Description string
	Date        time.Time
	Confirmed   bool
}

// Calendar serializza l'evento in un documento VCALENDAR completo.
// DTEND è il giorno successivo: per RFC 5545 la fine è esclusiva.
func Calendar(ev Event) string {
	status := "TENTATIVE"
	if ev.Confirmed {
		status = "CONFIRMED"
	}
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//vCRM//vCRM API//IT",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + escape(ev.UID),
		"DTSTAMP:" + time.Now().UTC().Format("20060102T150405Z"),
		"DTSTART;VALUE=DATE:" + ev.Date.Format(dateLayout),
		"DTEND;VALUE=DATE:" + ev.Date.AddDate(0, 0, 1).Format(dateLayout),
		"SUMMARY:" + escape(ev.Summary),
	}
	if ev.Description != "" {
		lines = append(lines, "DESCRIPTION:"+escape(ev.Description))
	}
	lines = append(lines,
		"STATUS:"+status,
		"END:VEVENT",
		"END:VCALENDAR",
	)
	return strings.Join(lines, "\r\n") + "\r\n"
}

// escape applica l'escaping dei valori di testo previsto da RFC 5545.
func escape(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
		"\r", "",
	)
	return r.Replace(s)
}
