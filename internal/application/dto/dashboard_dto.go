package dto

// KPIsDTO indicadores del dashboard sobre una ventana móvil de 30 días.
type KPIsDTO struct {
	TotalEmployees int `json:"totalEmployees"`
	NewHires       int `json:"newHires"`
	Departures     int `json:"departures"`
}

// DepartmentCountDTO conteo de empleados activos por departamento.
type DepartmentCountDTO struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// MonthCountDTO conteo mensual (month en formato YYYY-MM).
type MonthCountDTO struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// TurnoverDTO series mensuales de altas y bajas.
type TurnoverDTO struct {
	Hires      []MonthCountDTO `json:"hires"`
	Departures []MonthCountDTO `json:"departures"`
}

// SalaryBucketDTO conteo de empleados activos por rango salarial.
type SalaryBucketDTO struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}
