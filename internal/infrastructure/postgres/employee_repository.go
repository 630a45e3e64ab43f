package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/hrdash-api/internal/domain/entity"
	"github.com/jhoicas/hrdash-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// psql builder de sentencias con placeholders $n de PostgreSQL. Los filtros
// se componen como predicados parametrizados, nunca por concatenación.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var employeeColumns = []string{
	"id", "first_name", "last_name", "email", "job_title",
	"department", "start_date", "end_date", "is_active", "salary",
}

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// listPredicates traduce el filtro a predicados AND. La búsqueda libre es una
// subcadena insensible a mayúsculas sobre nombre, apellido o email (OR).
func listPredicates(f repository.EmployeeFilter) sq.And {
	pred := sq.And{sq.Eq{"is_active": true}}
	if f.Search != "" {
		term := "%" + f.Search + "%"
		pred = append(pred, sq.Or{
			sq.ILike{"first_name": term},
			sq.ILike{"last_name": term},
			sq.ILike{"email": term},
		})
	}
	if f.Department != "" {
		pred = append(pred, sq.Eq{"department": f.Department})
	}
	if f.JobTitle != "" {
		pred = append(pred, sq.Eq{"job_title": f.JobTitle})
	}
	return pred
}

// List devuelve la página ordenada por (first_name, last_name) y el total de
// filas que cumplen el filtro antes de paginar.
func (r *EmployeeRepo) List(ctx context.Context, filter repository.EmployeeFilter, limit, offset int) ([]*entity.Employee, int, error) {
	pred := listPredicates(filter)

	countQuery, countArgs, err := psql.Select("COUNT(id)").From("employees").Where(pred).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("componer count: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, wrapStoreError(err, "count employees")
	}

	query, args, err := psql.Select(employeeColumns...).
		From("employees").
		Where(pred).
		OrderBy("first_name", "last_name").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("componer listado: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, wrapStoreError(err, "list employees")
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapStoreError(err, "list employees")
	}
	return list, total, nil
}

// Create inserta el empleado y devuelve el ID asignado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) (int64, error) {
	const query = `
		INSERT INTO employees (first_name, last_name, email, job_title, department, start_date, is_active, salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		e.FirstName, e.LastName, e.Email, e.JobTitle, e.Department,
		e.StartDate, e.IsActive, e.Salary,
	).Scan(&id)
	if err != nil {
		return 0, wrapStoreError(err, "insert employee")
	}
	return id, nil
}

// GetByID obtiene un empleado por ID, o nil si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	const query = `
		SELECT id, first_name, last_name, email, job_title, department, start_date, end_date, is_active, salary
		FROM employees WHERE id = $1`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStoreError(err, "get employee")
	}
	return e, nil
}

// Update aplica las columnas recibidas. La capa de aplicación ya restringió
// las claves a la lista blanca de columnas actualizables.
func (r *EmployeeRepo) Update(ctx context.Context, id int64, columns map[string]any) error {
	query, args, err := psql.Update("employees").
		SetMap(columns).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("componer update: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return wrapStoreError(err, "update employee")
	}
	return nil
}

// Deactivate estampa el borrado suave solo sobre filas aún activas; devuelve
// true si hubo transición. Nunca reactiva ni re-estampa un end_date previo.
func (r *EmployeeRepo) Deactivate(ctx context.Context, id int64, endDate time.Time) (bool, error) {
	const query = `
		UPDATE employees SET is_active = FALSE, end_date = $1
		WHERE id = $2 AND is_active = TRUE`
	tag, err := r.q.Exec(ctx, query, endDate, id)
	if err != nil {
		return false, wrapStoreError(err, "deactivate employee")
	}
	return tag.RowsAffected() > 0, nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.JobTitle,
		&e.Department, &e.StartDate, &e.EndDate, &e.IsActive, &e.Salary,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
