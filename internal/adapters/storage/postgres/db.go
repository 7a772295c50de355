// Package postgres implementa los repositorios sobre Postgres (pgx vía database/sql).
package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"adoptme-api/internal/platform/storeerr"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// uniqueViolation es el SQLSTATE de violación de índice único.
const uniqueViolation = "23505"

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(ctx context.Context, dsn string, timeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         CHAR(24) PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	email      TEXT NOT NULL,
	age        DOUBLE PRECISION NOT NULL,
	password   TEXT NOT NULL,
	role       TEXT NOT NULL DEFAULT 'user',
	pets       JSONB NOT NULL DEFAULT '[]'::jsonb,
	seq        BIGSERIAL
);
CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique ON users (email);

CREATE TABLE IF NOT EXISTS pets (
	id         CHAR(24) PRIMARY KEY,
	name       TEXT NOT NULL,
	species    TEXT NOT NULL,
	birth_date TIMESTAMPTZ NULL,
	adopted    BOOLEAN NOT NULL DEFAULT FALSE,
	owner      CHAR(24) NULL,
	seq        BIGSERIAL
);
`

// Migrate crea tablas e índices si no existen.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres migrate: %w", translateErr(err))
	}
	return nil
}

// translateErr mapea errores de pgx/database/sql a storeerr; el resto pasa igual.
func translateErr(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	var connErr *pgconn.ConnectError
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return storeerr.ErrNotFound
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		return fmt.Errorf("%w: %v", storeerr.ErrDuplicate, err)
	case errors.As(err, &connErr),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		pgconn.Timeout(err):
		return fmt.Errorf("%w: %v", storeerr.ErrUnavailable, err)
	default:
		return err
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}
