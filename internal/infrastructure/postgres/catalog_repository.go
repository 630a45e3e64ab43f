package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/hrdash-api/internal/domain/entity"
	"github.com/jhoicas/hrdash-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// Tablas de catálogo admitidas. El nombre de tabla se interpola desde estas
// constantes, nunca desde entrada del cliente.
const (
	TableDepartments = "departments"
	TableJobTitles   = "job_titles"
)

// CatalogRepo implementación de CatalogRepository para una tabla concreta de
// (id, name único). Departamentos y cargos usan el mismo adaptador.
type CatalogRepo struct {
	q     Querier
	table string
}

// NewCatalogRepository construye el adaptador para la tabla indicada.
func NewCatalogRepository(q Querier, table string) *CatalogRepo {
	return &CatalogRepo{q: q, table: table}
}

// Create inserta el nombre y devuelve el ID asignado. Nombre duplicado se
// traduce a domain.ErrDuplicate.
func (r *CatalogRepo) Create(ctx context.Context, name string) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) RETURNING id`, r.table)
	var id int64
	if err := r.q.QueryRow(ctx, query, name).Scan(&id); err != nil {
		return 0, wrapStoreError(err, "insert "+r.table)
	}
	return id, nil
}

// List devuelve todas las entradas ordenadas por ID.
func (r *CatalogRepo) List(ctx context.Context) ([]*entity.CatalogItem, error) {
	query := fmt.Sprintf(`SELECT id, name FROM %s ORDER BY id`, r.table)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreError(err, "list "+r.table)
	}
	defer rows.Close()

	var list []*entity.CatalogItem
	for rows.Next() {
		var item entity.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		list = append(list, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(err, "list "+r.table)
	}
	return list, nil
}

// Delete borra la fila (borrado duro). Devuelve true si existía.
func (r *CatalogRepo) Delete(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return false, wrapStoreError(err, "delete "+r.table)
	}
	return tag.RowsAffected() > 0, nil
}
