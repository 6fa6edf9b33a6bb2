package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/sky_take_out/internal/apperrors"
	"github.com/SscSPs/sky_take_out/internal/autofill"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the part of pgx the mappers use. *pgxpool.Pool, *pgx.Conn and
// pgx.Tx all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB       DBTX
	Autofill *autofill.Interceptor
}

// write runs a marked statement through the audit auto-fill stage. The
// entity is the first invocation argument; run must read its audit fields
// only when it is called.
func (r *BaseRepository) write(ctx context.Context, method string, op autofill.OperationType, entity any, run autofill.Handler) error {
	return r.Autofill.Intercept(ctx, autofill.Invocation{
		Method:    method,
		Operation: op,
		Args:      []any{entity},
	}, run)
}

// nilEntityError is returned by mappers handed a nil entity.
func nilEntityError(what string) error {
	return fmt.Errorf("%s is nil: %w", what, apperrors.ErrValidation)
}

// mapWriteError translates constraint violations into application errors.
func mapWriteError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", what, apperrors.ErrDuplicate)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s references a missing row: %w", what, apperrors.ErrValidation)
		}
	}
	return apperrors.NewAppError(500, "failed to write "+what, err)
}

// expectOneRow turns an UPDATE that matched nothing into ErrNotFound.
func expectOneRow(tag pgconn.CommandTag, what string) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
	}
	return nil
}
