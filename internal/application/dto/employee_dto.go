package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest cuerpo de POST /api/employees.
// salary es opcional (0 por defecto); las fechas viajan como YYYY-MM-DD.
type CreateEmployeeRequest struct {
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Email      string           `json:"email"`
	JobTitle   string           `json:"job_title"`
	Department string           `json:"department"`
	StartDate  string           `json:"start_date"`
	Salary     *decimal.Decimal `json:"salary"`
}

// UpdateEmployeeRequest cuerpo parcial de PUT /api/employees/:id.
// Solo los campos presentes se aplican; claves desconocidas se ignoran.
type UpdateEmployeeRequest struct {
	FirstName  *string          `json:"first_name"`
	LastName   *string          `json:"last_name"`
	Email      *string          `json:"email"`
	JobTitle   *string          `json:"job_title"`
	Department *string          `json:"department"`
	StartDate  *string          `json:"start_date"`
	Salary     *decimal.Decimal `json:"salary"`
}

// EmployeeResponse registro completo de un empleado en la API y en los
// eventos realtime.
type EmployeeResponse struct {
	ID         int64           `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	JobTitle   string          `json:"job_title"`
	Department string          `json:"department"`
	StartDate  string          `json:"start_date"`
	EndDate    *string         `json:"end_date"`
	IsActive   bool            `json:"is_active"`
	Salary     decimal.Decimal `json:"salary"`
}

// EmployeeListResponse página de empleados con sus metadatos.
type EmployeeListResponse struct {
	Data       []EmployeeResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}
