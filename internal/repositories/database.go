package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the slice of *pgxpool.Pool the repositories depend on.
// pgxmock.PgxPoolIface satisfies it too, so repository tests run
// against a mock pool.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ErrNotFound indicates the referenced entity does not exist.
var ErrNotFound = errors.New("entity not found")

// ErrDuplicateEmail indicates a unique-email constraint violation.
var ErrDuplicateEmail = errors.New("email already exists")

// ErrDriverHasOpenPickups indicates a guarded driver delete was
// blocked by scheduled or in-progress pickups.
var ErrDriverHasOpenPickups = errors.New("driver has open pickups")

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
