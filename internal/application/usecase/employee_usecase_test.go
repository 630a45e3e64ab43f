package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hrdash-api/internal/application/dto"
	"github.com/jhoicas/hrdash-api/internal/domain"
	"github.com/jhoicas/hrdash-api/internal/domain/entity"
	"github.com/jhoicas/hrdash-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ─────────────────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	employees map[int64]*entity.Employee
	nextID    int64

	createErr error
	updateErr error

	gotFilter repository.EmployeeFilter
	gotLimit  int
	gotOffset int
	listRows  []*entity.Employee
	listTotal int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[int64]*entity.Employee{}, nextID: 1}
}

func (f *fakeEmployeeRepo) List(_ context.Context, filter repository.EmployeeFilter, limit, offset int) ([]*entity.Employee, int, error) {
	f.gotFilter = filter
	f.gotLimit = limit
	f.gotOffset = offset
	return f.listRows, f.listTotal, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	clone := *e
	clone.ID = id
	f.employees[id] = &clone
	return id, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, nil
	}
	clone := *e
	return &clone, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, id int64, columns map[string]any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	e, ok := f.employees[id]
	if !ok {
		return nil
	}
	for col, v := range columns {
		switch col {
		case "first_name":
			e.FirstName = v.(string)
		case "last_name":
			e.LastName = v.(string)
		case "email":
			e.Email = v.(string)
		case "job_title":
			e.JobTitle = v.(string)
		case "department":
			e.Department = v.(string)
		case "start_date":
			e.StartDate = v.(time.Time)
		case "salary":
			e.Salary = v.(decimal.Decimal)
		}
	}
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(_ context.Context, id int64, endDate time.Time) (bool, error) {
	e, ok := f.employees[id]
	if !ok || !e.IsActive {
		return false, nil
	}
	e.IsActive = false
	d := endDate
	e.EndDate = &d
	return true, nil
}

// fakeTxRunner ejecuta la función directamente contra el repositorio, sin
// transacción real.
type fakeTxRunner struct {
	repo repository.EmployeeRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repo repository.EmployeeRepository) error) error {
	return fn(f.repo)
}

type broadcastCall struct {
	event   string
	payload any
}

type fakeBroadcaster struct {
	calls []broadcastCall
}

func (f *fakeBroadcaster) Broadcast(event string, payload any) {
	f.calls = append(f.calls, broadcastCall{event: event, payload: payload})
}

func newEmployeeUC() (*EmployeeUseCase, *fakeEmployeeRepo, *fakeBroadcaster) {
	repo := newFakeEmployeeRepo()
	notify := &fakeBroadcaster{}
	uc := NewEmployeeUseCase(repo, &fakeTxRunner{repo: repo}, notify)
	return uc, repo, notify
}

func validCreateRequest() dto.CreateEmployeeRequest {
	salary := decimal.NewFromInt(450000)
	return dto.CreateEmployeeRequest{
		FirstName:  "Ana",
		LastName:   "Lee",
		Email:      "ana.lee@empresa.com",
		JobTitle:   "Engineer",
		Department: "Engineering",
		StartDate:  "2024-01-10",
		Salary:     &salary,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────────────────────────────────────

func TestEmployeeCreate(t *testing.T) {
	t.Run("crea y emite employee_added", func(t *testing.T) {
		uc, repo, notify := newEmployeeUC()

		resp, err := uc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "ana.lee@empresa.com", resp.Email)
		assert.Equal(t, "2024-01-10", resp.StartDate)
		assert.True(t, resp.IsActive)
		assert.Nil(t, resp.EndDate)
		assert.True(t, resp.Salary.Equal(decimal.NewFromInt(450000)))

		require.Len(t, notify.calls, 1)
		assert.Equal(t, EventEmployeeAdded, notify.calls[0].event)
		assert.Len(t, repo.employees, 1)
	})

	t.Run("salario omitido queda en cero", func(t *testing.T) {
		uc, _, _ := newEmployeeUC()
		in := validCreateRequest()
		in.Salary = nil

		resp, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, resp.Salary.IsZero())
	})

	t.Run("campos requeridos faltantes", func(t *testing.T) {
		base := validCreateRequest()
		cases := []struct {
			name   string
			mutate func(*dto.CreateEmployeeRequest)
		}{
			{"sin first_name", func(r *dto.CreateEmployeeRequest) { r.FirstName = "" }},
			{"sin last_name", func(r *dto.CreateEmployeeRequest) { r.LastName = " " }},
			{"sin email", func(r *dto.CreateEmployeeRequest) { r.Email = "" }},
			{"sin job_title", func(r *dto.CreateEmployeeRequest) { r.JobTitle = "" }},
			{"sin department", func(r *dto.CreateEmployeeRequest) { r.Department = "" }},
			{"sin start_date", func(r *dto.CreateEmployeeRequest) { r.StartDate = "" }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, repo, notify := newEmployeeUC()
				in := base
				tc.mutate(&in)

				_, err := uc.Create(context.Background(), in)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Empty(t, repo.employees, "no debe haber escritura parcial")
				assert.Empty(t, notify.calls)
			})
		}
	})

	t.Run("email inválido", func(t *testing.T) {
		uc, _, notify := newEmployeeUC()
		in := validCreateRequest()
		in.Email = "ana.lee.empresa.com"

		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, notify.calls)
	})

	t.Run("fecha inválida", func(t *testing.T) {
		uc, _, _ := newEmployeeUC()
		in := validCreateRequest()
		in.StartDate = "10/01/2024"

		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("salario negativo", func(t *testing.T) {
		uc, _, _ := newEmployeeUC()
		in := validCreateRequest()
		negative := decimal.NewFromInt(-1)
		in.Salary = &negative

		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("email duplicado no emite evento", func(t *testing.T) {
		uc, repo, notify := newEmployeeUC()
		repo.createErr = domain.ErrDuplicate

		_, err := uc.Create(context.Background(), validCreateRequest())
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		assert.Empty(t, notify.calls)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Get / List
// ─────────────────────────────────────────────────────────────────────────────

func TestEmployeeGet(t *testing.T) {
	t.Run("existente", func(t *testing.T) {
		uc, _, _ := newEmployeeUC()
		created, err := uc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		got, err := uc.Get(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, got.Email)
	})

	t.Run("inexistente", func(t *testing.T) {
		uc, _, _ := newEmployeeUC()
		_, err := uc.Get(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEmployeeList(t *testing.T) {
	t.Run("ajusta página y límite fuera de rango", func(t *testing.T) {
		uc, repo, _ := newEmployeeUC()
		repo.listTotal = 0

		resp, err := uc.List(context.Background(), repository.EmployeeFilter{}, 0, -5)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Pagination.CurrentPage)
		assert.Equal(t, defaultPageLimit, resp.Pagination.Limit)
		assert.Equal(t, 0, repo.gotOffset)
		assert.Equal(t, defaultPageLimit, repo.gotLimit)
	})

	t.Run("totalPages por división techo", func(t *testing.T) {
		uc, repo, _ := newEmployeeUC()
		repo.listTotal = 11

		resp, err := uc.List(context.Background(), repository.EmployeeFilter{}, 2, 5)
		require.NoError(t, err)
		assert.Equal(t, 11, resp.Pagination.TotalRecords)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
		assert.Equal(t, 2, resp.Pagination.CurrentPage)
		assert.Equal(t, 5, repo.gotOffset, "offset = (página-1)*límite")
	})

	t.Run("propaga el filtro al repositorio", func(t *testing.T) {
		uc, repo, _ := newEmployeeUC()
		filter := repository.EmployeeFilter{Search: "ana", Department: "Engineering", JobTitle: "Engineer"}

		_, err := uc.List(context.Background(), filter, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, filter, repo.gotFilter)
	})

	t.Run("lista vacía serializa como slice, no nil", func(t *testing.T) {
		uc, _, _ := newEmployeeUC()
		resp, err := uc.List(context.Background(), repository.EmployeeFilter{}, 1, 10)
		require.NoError(t, err)
		assert.NotNil(t, resp.Data)
		assert.Empty(t, resp.Data)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }

func TestEmployeeUpdate(t *testing.T) {
	t.Run("actualización parcial y employee_updated", func(t *testing.T) {
		uc, _, notify := newEmployeeUC()
		created, err := uc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		notify.calls = nil

		resp, err := uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{
			Department: strPtr("Platform"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Platform", resp.Department)
		assert.Equal(t, "Ana", resp.FirstName, "los campos no enviados se conservan")

		require.Len(t, notify.calls, 1)
		assert.Equal(t, EventEmployeeUpdated, notify.calls[0].event)
	})

	t.Run("sin campos actualizables", func(t *testing.T) {
		uc, _, _ := newEmployeeUC()
		created, err := uc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, err = uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("id inexistente", func(t *testing.T) {
		uc, _, notify := newEmployeeUC()
		_, err := uc.Update(context.Background(), 42, dto.UpdateEmployeeRequest{
			FirstName: strPtr("Eva"),
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, notify.calls)
	})

	t.Run("email inválido no toca el almacén", func(t *testing.T) {
		uc, repo, _ := newEmployeeUC()
		created, err := uc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, err = uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{
			Email: strPtr("sin-arroba"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, "ana.lee@empresa.com", repo.employees[created.ID].Email)
	})

	t.Run("start_date inválida", func(t *testing.T) {
		uc, _, _ := newEmployeeUC()
		created, err := uc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, err = uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{
			StartDate: strPtr("2024-02-30"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("email duplicado", func(t *testing.T) {
		uc, repo, notify := newEmployeeUC()
		created, err := uc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		notify.calls = nil
		repo.updateErr = domain.ErrDuplicate

		_, err = uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{
			Email: strPtr("otra@empresa.com"),
		})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		assert.Empty(t, notify.calls)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Deactivate
// ─────────────────────────────────────────────────────────────────────────────

func TestEmployeeDeactivate(t *testing.T) {
	fixed := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("desactiva y emite employee_deactivated", func(t *testing.T) {
		uc, repo, notify := newEmployeeUC()
		uc.now = func() time.Time { return fixed }
		created, err := uc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		notify.calls = nil

		require.NoError(t, uc.Deactivate(context.Background(), created.ID))

		e := repo.employees[created.ID]
		assert.False(t, e.IsActive)
		require.NotNil(t, e.EndDate)
		assert.Equal(t, fixed, *e.EndDate)

		require.Len(t, notify.calls, 1)
		assert.Equal(t, EventEmployeeDeactivated, notify.calls[0].event)
	})

	t.Run("ya inactivo: no-op sin evento y conserva end_date", func(t *testing.T) {
		uc, repo, notify := newEmployeeUC()
		uc.now = func() time.Time { return fixed }
		created, err := uc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		require.NoError(t, uc.Deactivate(context.Background(), created.ID))
		notify.calls = nil

		later := fixed.AddDate(0, 1, 0)
		uc.now = func() time.Time { return later }
		require.NoError(t, uc.Deactivate(context.Background(), created.ID))

		assert.Equal(t, fixed, *repo.employees[created.ID].EndDate)
		assert.Empty(t, notify.calls)
	})

	t.Run("id inexistente", func(t *testing.T) {
		uc, _, notify := newEmployeeUC()
		err := uc.Deactivate(context.Background(), 7)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, notify.calls)
	})
}
