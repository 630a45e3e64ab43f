package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hrdash-api/internal/application/dto"
	"github.com/jhoicas/hrdash-api/internal/domain"
	"github.com/jhoicas/hrdash-api/internal/domain/entity"
	"github.com/jhoicas/hrdash-api/internal/domain/repository"
)

const defaultPageLimit = 20

// EmployeeUseCase aplica las reglas de negocio sobre empleados: listados
// filtrados, escrituras validadas y notificación tras cada mutación
// confirmada.
type EmployeeUseCase struct {
	repo   repository.EmployeeRepository
	tx     TxRunner
	notify Broadcaster
	now    func() time.Time
}

// NewEmployeeUseCase construye el caso de uso con sus puertos.
func NewEmployeeUseCase(repo repository.EmployeeRepository, tx TxRunner, notify Broadcaster) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, tx: tx, notify: notify, now: time.Now}
}

// List devuelve la página de empleados activos que cumplen el filtro.
// Página y límite fuera de rango se ajustan (página mínima 1; límite 20 por
// defecto). totalPages se calcula por división techo.
func (uc *EmployeeUseCase) List(ctx context.Context, filter repository.EmployeeFilter, page, limit int) (*dto.EmployeeListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	offset := (page - 1) * limit

	rows, total, err := uc.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	data := make([]dto.EmployeeResponse, 0, len(rows))
	for _, e := range rows {
		data = append(data, toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Data: data,
		Pagination: dto.Pagination{
			TotalRecords: total,
			CurrentPage:  page,
			TotalPages:   (total + limit - 1) / limit,
			Limit:        limit,
		},
	}, nil
}

// Get obtiene un empleado por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *EmployeeUseCase) Get(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// Create valida y persiste un nuevo empleado dentro de una transacción y,
// tras el commit, emite employee_added con el registro completo.
// La validación ocurre antes de tocar el almacén: nunca hay escritura parcial.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" ||
		in.Email == "" || strings.TrimSpace(in.JobTitle) == "" ||
		strings.TrimSpace(in.Department) == "" || in.StartDate == "" {
		return nil, fmt.Errorf("%w: faltan campos requeridos", domain.ErrInvalidInput)
	}
	if !domain.ValidEmail(in.Email) {
		return nil, fmt.Errorf("%w: formato de email inválido", domain.ErrInvalidInput)
	}
	if !domain.ValidDate(in.StartDate) {
		return nil, fmt.Errorf("%w: formato de fecha inválido, use YYYY-MM-DD", domain.ErrInvalidInput)
	}
	salary := decimal.Zero
	if in.Salary != nil {
		if in.Salary.IsNegative() {
			return nil, fmt.Errorf("%w: el salario no puede ser negativo", domain.ErrInvalidInput)
		}
		salary = *in.Salary
	}
	startDate, _ := time.Parse(domain.DateLayout, in.StartDate)

	var created *entity.Employee
	err := uc.tx.Run(ctx, func(repo repository.EmployeeRepository) error {
		id, err := repo.Create(ctx, &entity.Employee{
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Email:      in.Email,
			JobTitle:   in.JobTitle,
			Department: in.Department,
			StartDate:  startDate,
			IsActive:   true,
			Salary:     salary,
		})
		if err != nil {
			return err
		}
		created, err = repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := toEmployeeResponse(created)
	uc.notify.Broadcast(EventEmployeeAdded, resp)
	return &resp, nil
}

// Update aplica una actualización parcial. Solo las columnas de la lista
// blanca llegan al almacén; claves desconocidas del cuerpo se ignoran en la
// deserialización. Tras el commit emite employee_updated con la fila completa.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	columns := map[string]any{}
	if in.FirstName != nil {
		columns["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		columns["last_name"] = *in.LastName
	}
	if in.Email != nil {
		if !domain.ValidEmail(*in.Email) {
			return nil, fmt.Errorf("%w: formato de email inválido", domain.ErrInvalidInput)
		}
		columns["email"] = *in.Email
	}
	if in.JobTitle != nil {
		columns["job_title"] = *in.JobTitle
	}
	if in.Department != nil {
		columns["department"] = *in.Department
	}
	if in.StartDate != nil {
		if !domain.ValidDate(*in.StartDate) {
			return nil, fmt.Errorf("%w: formato de fecha inválido para start_date, use YYYY-MM-DD", domain.ErrInvalidInput)
		}
		startDate, _ := time.Parse(domain.DateLayout, *in.StartDate)
		columns["start_date"] = startDate
	}
	if in.Salary != nil {
		if in.Salary.IsNegative() {
			return nil, fmt.Errorf("%w: el salario no puede ser negativo", domain.ErrInvalidInput)
		}
		columns["salary"] = *in.Salary
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: sin campos actualizables", domain.ErrInvalidInput)
	}

	var updated *entity.Employee
	err := uc.tx.Run(ctx, func(repo repository.EmployeeRepository) error {
		existing, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if err := repo.Update(ctx, id, columns); err != nil {
			return err
		}
		updated, err = repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := toEmployeeResponse(updated)
	uc.notify.Broadcast(EventEmployeeUpdated, resp)
	return &resp, nil
}

// Deactivate borra suavemente al empleado: is_active=false y end_date=hoy
// (reloj del servidor). Sobre un empleado ya inactivo es un no-op idempotente
// que conserva el end_date original y no emite evento. ID desconocido devuelve
// domain.ErrNotFound. No existe operación de reactivación.
func (uc *EmployeeUseCase) Deactivate(ctx context.Context, id int64) error {
	today := uc.now()
	changed, err := uc.repo.Deactivate(ctx, id, today)
	if err != nil {
		return err
	}
	if !changed {
		e, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.ErrNotFound
		}
		// ya estaba inactivo: no-op, sin evento
		return nil
	}
	uc.notify.Broadcast(EventEmployeeDeactivated, struct {
		ID int64 `json:"id"`
	}{ID: id})
	return nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	var endDate *string
	if e.EndDate != nil {
		s := e.EndDate.Format(domain.DateLayout)
		endDate = &s
	}
	return dto.EmployeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		JobTitle:   e.JobTitle,
		Department: e.Department,
		StartDate:  e.StartDate.Format(domain.DateLayout),
		EndDate:    endDate,
		IsActive:   e.IsActive,
		Salary:     e.Salary,
	}
}
