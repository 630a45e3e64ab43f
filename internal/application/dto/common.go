package dto

// ErrorResponse cuerpo de error HTTP: {"error": "<mensaje>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse respuesta informativa simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// Pagination metadatos de página en los listados.
type Pagination struct {
	TotalRecords int `json:"totalRecords"`
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	Limit        int `json:"limit"`
}
