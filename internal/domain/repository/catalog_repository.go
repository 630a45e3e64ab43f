package repository

import (
	"context"

	"github.com/jhoicas/hrdash-api/internal/domain/entity"
)

// CatalogRepository define el puerto de persistencia para los catálogos de
// nombres únicos (departamentos y cargos). Un adaptador por tabla.
type CatalogRepository interface {
	// Create inserta el nombre y devuelve el ID asignado.
	// Devuelve domain.ErrDuplicate si el nombre ya existe.
	Create(ctx context.Context, name string) (int64, error)

	// List devuelve todas las entradas ordenadas por ID.
	List(ctx context.Context) ([]*entity.CatalogItem, error)

	// Delete elimina la entrada (borrado duro, sin verificación de empleados
	// que referencien la etiqueta). Devuelve true si la fila existía.
	Delete(ctx context.Context, id int64) (bool, error)
}
