package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/hrdash-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// isUnavailable verifica si un error es transitorio de conexión o de espera:
// timeout de contexto, timeout de pgconn o fallo de red.
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// wrapStoreError traduce errores del driver a errores de dominio: 23505 ->
// ErrDuplicate, fallos transitorios -> ErrStoreUnavailable; el resto se
// envuelve con la operación para el log del servidor.
func wrapStoreError(err error, op string) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isUnavailable(err):
		return fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, op)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
