// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/migrations"
)

// SQL dialects understood by [NewConnect].
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// DB wraps a *sql.DB together with the dialect-specific pieces the
// repositories need: the query placeholder style and the error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens and pings a database of the given dialect.
func NewConnect(ctx context.Context, dialect, dsn string, log *logger.Logger) (*DB, error) {
	var driver string
	switch dialect {
	case DialectPostgres:
		driver = "pgx"
	case DialectSQLite:
		driver = "sqlite3"
	default:
		return nil, fmt.Errorf("%w: sql dialect %q", ErrUnknownBackend, dialect)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: open database: %w", ErrStoreUnavailable, err)
	}

	if dialect == DialectSQLite {
		// sqlite serialises writers; a single connection avoids SQLITE_BUSY
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(4)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("%w: ping database: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewConnect").Str("dialect", dialect).Msg("connected to database successfully")

	return newDB(conn, dialect, log), nil
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = sqliteErrorClassifier{}
	}

	return db
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	gooseDialect := migrations.DialectSQLite
	if db.dialect == DialectPostgres {
		gooseDialect = migrations.DialectPostgres
	}
	return migrations.Migrate(db.DB, gooseDialect)
}
