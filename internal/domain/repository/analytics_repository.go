package repository

import (
	"context"
	"time"
)

// DepartmentCount conteo de empleados activos por departamento.
type DepartmentCount struct {
	Department string
	Count      int
}

// MonthCount conteo agrupado por mes calendario (formato YYYY-MM).
type MonthCount struct {
	Month string
	Count int
}

// AnalyticsRepository consultas agregadas de solo lectura sobre employees.
type AnalyticsRepository interface {
	// CountActive total de empleados con is_active = true.
	CountActive(ctx context.Context) (int, error)

	// CountHiresSince empleados (activos o no) con start_date >= since.
	CountHiresSince(ctx context.Context, since time.Time) (int, error)

	// CountDeparturesSince empleados inactivos con end_date >= since.
	CountDeparturesSince(ctx context.Context, since time.Time) (int, error)

	// DepartmentBreakdown agrupa empleados activos por departamento.
	DepartmentBreakdown(ctx context.Context) ([]DepartmentCount, error)

	// MonthlyHires altas por mes de start_date, ascendente; incluye inactivos.
	MonthlyHires(ctx context.Context) ([]MonthCount, error)

	// MonthlyDepartures bajas por mes de end_date, ascendente; solo inactivos
	// con end_date no nulo.
	MonthlyDepartures(ctx context.Context) ([]MonthCount, error)

	// CountActiveSalaryBetween empleados activos con salario en [low, high],
	// extremos inclusive.
	CountActiveSalaryBetween(ctx context.Context, low, high int64) (int, error)
}
