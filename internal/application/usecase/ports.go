package usecase

import (
	"context"

	"github.com/jhoicas/hrdash-api/internal/domain/repository"
)

// Nombres de los eventos realtime emitidos tras cada mutación confirmada.
const (
	EventEmployeeAdded       = "employee_added"
	EventEmployeeUpdated     = "employee_updated"
	EventEmployeeDeactivated = "employee_deactivated"
)

// Broadcaster puerto de notificaciones en tiempo real. La publicación es
// fire-and-forget: nunca devuelve error ni bloquea la petición que la origina.
type Broadcaster interface {
	Broadcast(event string, payload any)
}

// TxRunner ejecuta fn dentro de una transacción del almacén, con un
// repositorio de empleados atado a esa transacción. Commit al devolver nil,
// rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.EmployeeRepository) error) error
}
