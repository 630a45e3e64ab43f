package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee registro de un empleado. El ID lo asigna el almacén y es inmutable.
// EndDate solo se estampa al desactivar; mientras IsActive es true, EndDate es
// nil. La desactivación es un borrado suave: el registro nunca se elimina ni
// se reactiva.
type Employee struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      string // único a nivel de almacén
	JobTitle   string // etiqueta libre, sin integridad referencial contra job_titles
	Department string // etiqueta libre, sin integridad referencial contra departments
	StartDate  time.Time
	EndDate    *time.Time
	IsActive   bool
	Salary     decimal.Decimal // no negativo, 0 por defecto
}
