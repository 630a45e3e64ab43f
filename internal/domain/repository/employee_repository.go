package repository

import (
	"context"
	"time"

	"github.com/jhoicas/hrdash-api/internal/domain/entity"
)

// EmployeeFilter predicados opcionales del listado. Los campos vacíos no
// filtran; los presentes se combinan con AND.
type EmployeeFilter struct {
	Search     string // subcadena sobre first_name, last_name o email (OR)
	Department string // igualdad exacta
	JobTitle   string // igualdad exacta
}

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	// List devuelve la página de empleados activos que cumplen el filtro,
	// ordenada por (first_name, last_name), junto con el total sin paginar.
	List(ctx context.Context, filter EmployeeFilter, limit, offset int) ([]*entity.Employee, int, error)

	// Create inserta el empleado y devuelve el ID asignado por el almacén.
	// Devuelve domain.ErrDuplicate si el email ya existe.
	Create(ctx context.Context, e *entity.Employee) (int64, error)

	// GetByID devuelve el empleado o nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)

	// Update aplica las columnas indicadas (ya filtradas por la capa de
	// aplicación). Devuelve domain.ErrDuplicate si el nuevo email ya existe.
	Update(ctx context.Context, id int64, columns map[string]any) error

	// Deactivate marca is_active=false y estampa end_date solo si el empleado
	// sigue activo. Devuelve true si hubo transición.
	Deactivate(ctx context.Context, id int64, endDate time.Time) (bool, error)
}
