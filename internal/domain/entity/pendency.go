package entity

// Severity gravidade de uma pendência.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Valid informa se a gravidade pertence ao conjunto conhecido.
func (s Severity) Valid() bool {
	return s == SeverityCritical || s == SeverityWarning
}

// Pendency representa uma pendência aberta que exige ação manual.
// Resolver uma pendência a remove do store; não há trilha de auditoria.
type Pendency struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Date        string   `json:"date"` // ISO (YYYY-MM-DD)
}
