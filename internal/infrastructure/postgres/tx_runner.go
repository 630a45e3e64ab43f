package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/hrdash-api/internal/application/usecase"
	"github.com/jhoicas/hrdash-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// txStarter lo satisfacen pgxpool.Pool y los dobles de prueba.
type txStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Las
// mutaciones de empleados (insert + relectura, update + relectura) corren así
// para que el evento realtime solo se emita sobre datos ya confirmados.
type TxRunner struct {
	pool txStarter
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool txStarter) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con un repositorio atado a la tx y
// hace Commit o Rollback. El rollback diferido cubre todo camino de error.
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.EmployeeRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapStoreError(err, "begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewEmployeeRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
