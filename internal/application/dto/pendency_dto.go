package dto

// CreatePendencyRequest entrada para abrir uma pendência.
type CreatePendencyRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Severity    string `json:"severity" validate:"required"`
	Date        string `json:"date"`
}

// PendencyResponse saída de uma pendência.
type PendencyResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Date        string `json:"date"`
}

// PendencyListResponse lista de pendências abertas.
type PendencyListResponse struct {
	Items []PendencyResponse `json:"items"`
	Total int                `json:"total"`
}
