// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/migrations"
)

// Dialect identifies the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

// DB is the explicitly constructed storage handle shared by all
// repositories. It carries the dialect-specific query builder and error
// classifier next to the connection pool.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database described by cfg.DSN. DSNs starting with
// "sqlite://", "file:" or ":memory:" select SQLite, everything else is
// handed to the pgx PostgreSQL driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if DialectFromDSN(cfg.DSN) == DialectSQLite {
		return NewConnectSQLite(ctx, cfg, log)
	}

	return NewConnectPostgres(ctx, cfg, log)
}

// DialectFromDSN reports which backend a DSN addresses.
func DialectFromDSN(dsn string) Dialect {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"),
		strings.HasPrefix(dsn, "file:"),
		strings.HasPrefix(dsn, ":memory:"):
		return DialectSQLite
	default:
		return DialectPostgres
	}
}

func newDB(conn *sql.DB, dialect Dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Dollar
	if dialect == DialectSQLite {
		placeholder = sq.Question
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Dialect returns the backend this handle talks to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate brings the schema up to date using the embedded migrations of the
// handle's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB, string(db.dialect)); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Str("dialect", string(db.dialect)).Msg("migrations applied")
	return nil
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// classify maps a driver error to the store sentinel it represents.
// Errors with no matching class are wrapped with fallback.
func (db *DB) classify(err error, fallback error) error {
	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return ErrEmailAlreadyExists
	case ForeignKeyViolation:
		return ErrNoUserWasFound
	case Unavailable:
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}
