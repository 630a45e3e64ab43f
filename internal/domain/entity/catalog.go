package entity

// CatalogItem entrada de un catálogo de nombres únicos (departamentos y
// cargos comparten la misma forma: id numérico + nombre único).
type CatalogItem struct {
	ID   int64
	Name string
}
