package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/hrdash-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura sobre employees.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, wrapStoreError(err, "count employees")
	}
	return n, nil
}

// CountActive total de empleados activos.
func (r *AnalyticsRepo) CountActive(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = TRUE`)
}

// CountHiresSince altas desde la fecha indicada, activos o no.
func (r *AnalyticsRepo) CountHiresSince(ctx context.Context, since time.Time) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM employees WHERE start_date >= $1::date`, since)
}

// CountDeparturesSince bajas desde la fecha indicada (solo inactivos).
func (r *AnalyticsRepo) CountDeparturesSince(ctx context.Context, since time.Time) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = FALSE AND end_date >= $1::date`, since)
}

// DepartmentBreakdown agrupa empleados activos por departamento.
func (r *AnalyticsRepo) DepartmentBreakdown(ctx context.Context) ([]repository.DepartmentCount, error) {
	const query = `
		SELECT department, COUNT(*) AS count
		FROM employees
		WHERE is_active = TRUE
		GROUP BY department
		ORDER BY department`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreError(err, "department breakdown")
	}
	defer rows.Close()

	var out []repository.DepartmentCount
	for rows.Next() {
		var dc repository.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return nil, wrapStoreError(err, "scan department breakdown")
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

// MonthlyHires altas agrupadas por mes calendario de start_date, ascendente.
// Incluye empleados inactivos: la serie histórica no se recorta al desactivar.
func (r *AnalyticsRepo) MonthlyHires(ctx context.Context) ([]repository.MonthCount, error) {
	const query = `
		SELECT to_char(start_date, 'YYYY-MM') AS month, COUNT(id) AS count
		FROM employees
		GROUP BY 1
		ORDER BY 1`
	return r.monthCounts(ctx, query)
}

// MonthlyDepartures bajas agrupadas por mes calendario de end_date,
// ascendente; solo empleados inactivos con end_date estampado.
func (r *AnalyticsRepo) MonthlyDepartures(ctx context.Context) ([]repository.MonthCount, error) {
	const query = `
		SELECT to_char(end_date, 'YYYY-MM') AS month, COUNT(id) AS count
		FROM employees
		WHERE is_active = FALSE AND end_date IS NOT NULL
		GROUP BY 1
		ORDER BY 1`
	return r.monthCounts(ctx, query)
}

// CountActiveSalaryBetween empleados activos con salario en [low, high],
// extremos inclusive.
func (r *AnalyticsRepo) CountActiveSalaryBetween(ctx context.Context, low, high int64) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM employees WHERE is_active = TRUE AND salary BETWEEN $1 AND $2`,
		low, high)
}

func (r *AnalyticsRepo) monthCounts(ctx context.Context, query string) ([]repository.MonthCount, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreError(err, "monthly counts")
	}
	defer rows.Close()

	var out []repository.MonthCount
	for rows.Next() {
		var mc repository.MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, wrapStoreError(err, "scan monthly counts")
		}
		out = append(out, mc)
	}
	return out, rows.Err()
}
