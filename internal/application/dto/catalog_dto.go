package dto

// CreateCatalogItemRequest cuerpo de POST /api/departments y /api/job-titles.
type CreateCatalogItemRequest struct {
	Name string `json:"name"`
}

// CatalogItemResponse entrada de catálogo (departamento o cargo).
type CatalogItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
