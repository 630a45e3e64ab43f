// Package analytics contiene los casos de uso de solo lectura del dashboard:
// KPIs, distribución por departamento, rotación y distribución salarial.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/hrdash-api/internal/application/dto"
	"github.com/jhoicas/hrdash-api/internal/domain/repository"
)

// kpiWindowDays ventana móvil de los KPIs de altas y bajas.
const kpiWindowDays = 30

// DashboardUseCase agrega métricas sobre employees.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a la tabla; delega todo en el repositorio.
type DashboardUseCase struct {
	repo    repository.AnalyticsRepository
	labeler *SalaryLabeler
	now     func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository, labeler *SalaryLabeler) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, labeler: labeler, now: time.Now}
}

// KPIs calcula los tres indicadores del dashboard. La ventana de 30 días es
// móvil desde el momento de la llamada, con el reloj del servidor.
//
// Tres consultas en paralelo:
//  1. CountActive            → totalEmployees
//  2. CountHiresSince        → newHires (incluye inactivos)
//  3. CountDeparturesSince   → departures (solo inactivos)
func (uc *DashboardUseCase) KPIs(ctx context.Context) (*dto.KPIsDTO, error) {
	since := uc.now().AddDate(0, 0, -kpiWindowDays)

	type countResult struct {
		n   int
		err error
	}
	totalCh := make(chan countResult, 1)
	hiresCh := make(chan countResult, 1)
	departuresCh := make(chan countResult, 1)

	go func() {
		n, err := uc.repo.CountActive(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountHiresSince(ctx, since)
		hiresCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountDeparturesSince(ctx, since)
		departuresCh <- countResult{n, err}
	}()

	total := <-totalCh
	hires := <-hiresCh
	departures := <-departuresCh

	if total.err != nil {
		return nil, fmt.Errorf("kpis: empleados activos: %w", total.err)
	}
	if hires.err != nil {
		return nil, fmt.Errorf("kpis: altas recientes: %w", hires.err)
	}
	if departures.err != nil {
		return nil, fmt.Errorf("kpis: bajas recientes: %w", departures.err)
	}

	return &dto.KPIsDTO{
		TotalEmployees: total.n,
		NewHires:       hires.n,
		Departures:     departures.n,
	}, nil
}

// DepartmentBreakdown conteo de empleados activos por departamento.
func (uc *DashboardUseCase) DepartmentBreakdown(ctx context.Context) ([]dto.DepartmentCountDTO, error) {
	rows, err := uc.repo.DepartmentBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentCountDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DepartmentCountDTO{Department: r.Department, Count: r.Count})
	}
	return out, nil
}

// Turnover series mensuales de altas (por start_date, todos los empleados) y
// bajas (por end_date, solo inactivos), ambas ascendentes por mes.
func (uc *DashboardUseCase) Turnover(ctx context.Context) (*dto.TurnoverDTO, error) {
	hires, err := uc.repo.MonthlyHires(ctx)
	if err != nil {
		return nil, fmt.Errorf("turnover: altas mensuales: %w", err)
	}
	departures, err := uc.repo.MonthlyDepartures(ctx)
	if err != nil {
		return nil, fmt.Errorf("turnover: bajas mensuales: %w", err)
	}
	return &dto.TurnoverDTO{
		Hires:      toMonthCounts(hires),
		Departures: toMonthCounts(departures),
	}, nil
}

// SalaryDistribution conteo de empleados activos por rango salarial fijo,
// extremos inclusive. Las etiquetas las produce el SalaryLabeler configurado.
func (uc *DashboardUseCase) SalaryDistribution(ctx context.Context) ([]dto.SalaryBucketDTO, error) {
	out := make([]dto.SalaryBucketDTO, 0, len(salaryBuckets))
	for _, b := range salaryBuckets {
		n, err := uc.repo.CountActiveSalaryBetween(ctx, b.Low, b.High)
		if err != nil {
			return nil, fmt.Errorf("distribución salarial [%d,%d]: %w", b.Low, b.High, err)
		}
		out = append(out, dto.SalaryBucketDTO{Range: uc.labeler.Label(b), Count: n})
	}
	return out, nil
}

func toMonthCounts(rows []repository.MonthCount) []dto.MonthCountDTO {
	out := make([]dto.MonthCountDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthCountDTO{Month: r.Month, Count: r.Count})
	}
	return out
}
