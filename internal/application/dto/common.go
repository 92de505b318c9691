package dto

import "time"

// ErrorResponse corpo d'errore HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Formati data accettati in ingresso. Il frontend invia "YYYY-MM-DD"; i dati
// legacy importati possono contenere timestamp ISO completi.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// ParseDate interpreta una data in modo tollerante: stringa vuota o non
// parsabile restituisce nil, mai un errore. I record con data illeggibile
// vengono semplicemente esclusi dalle aggregazioni per data.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDate serializza una data opzionale come "YYYY-MM-DD" ("" se assente).
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
