// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestSQLStore(t *testing.T, dialect string) (SecretStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewSQLStore(newDB(db, dialect, logger.Nop()), logger.Nop()), mock
}

// ── GetItem ───────────────────────────────────────────────────────────────────

func TestSQLStore_GetItem_Postgres(t *testing.T) {
	s, mock := newTestSQLStore(t, DialectPostgres)

	payload, err := json.Marshal(sealedItem("license"))
	require.NoError(t, err)
	updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT payload, updated_at FROM data_bag_items WHERE bag = $1 AND item = $2`)).
		WithArgs("nexus", "license").
		WillReturnRows(sqlmock.NewRows([]string{"payload", "updated_at"}).AddRow(string(payload), updated))

	got, err := s.GetItem(context.Background(), "nexus", "license")
	require.NoError(t, err)
	assert.Equal(t, "license", got.ID)
	assert.Equal(t, sealedItem("license").Fields, got.Fields)
	assert.Equal(t, updated, got.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_GetItem_SQLitePlaceholders(t *testing.T) {
	s, mock := newTestSQLStore(t, DialectSQLite)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT payload, updated_at FROM data_bag_items WHERE bag = ? AND item = ?`)).
		WithArgs("nexus", "license").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetItem(context.Background(), "nexus", "license")
	assert.ErrorIs(t, err, ErrItemNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_GetItem_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "connection failure is unavailable",
			err:     &pgconn.PgError{Code: pgerrcode.ConnectionFailure},
			wantErr: ErrStoreUnavailable,
		},
		{
			name:    "cannot connect now is unavailable",
			err:     &pgconn.PgError{Code: pgerrcode.CannotConnectNow},
			wantErr: ErrStoreUnavailable,
		},
		{
			name:    "undefined table is a query error",
			err:     &pgconn.PgError{Code: pgerrcode.UndefinedTable},
			wantErr: ErrExecutingQuery,
		},
		{
			name:    "unknown error is a query error",
			err:     errors.New("boom"),
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestSQLStore(t, DialectPostgres)
			mock.ExpectQuery(`SELECT payload, updated_at FROM data_bag_items`).WillReturnError(tt.err)

			_, err := s.GetItem(context.Background(), "nexus", "credentials")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, ErrItemNotFound)
		})
	}
}

func TestSQLStore_GetItem_BadPayload(t *testing.T) {
	s, mock := newTestSQLStore(t, DialectPostgres)
	mock.ExpectQuery(`SELECT payload, updated_at FROM data_bag_items`).
		WillReturnRows(sqlmock.NewRows([]string{"payload", "updated_at"}).AddRow("not-json", time.Now()))

	_, err := s.GetItem(context.Background(), "nexus", "credentials")
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── PutItem ───────────────────────────────────────────────────────────────────

func TestSQLStore_PutItem_Upsert(t *testing.T) {
	s, mock := newTestSQLStore(t, DialectPostgres)

	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO data_bag_items (bag,item,payload,updated_at) VALUES ($1,$2,$3,$4) ON CONFLICT (bag, item) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`)).
		WithArgs("nexus", "license", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.PutItem(context.Background(), "nexus", sealedItem("license")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_PutItem_Error(t *testing.T) {
	s, mock := newTestSQLStore(t, DialectPostgres)
	mock.ExpectExec(`INSERT INTO data_bag_items`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})

	err := s.PutItem(context.Background(), "nexus", sealedItem("license"))
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

// ── DeleteItem ────────────────────────────────────────────────────────────────

func TestSQLStore_DeleteItem(t *testing.T) {
	s, mock := newTestSQLStore(t, DialectPostgres)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM data_bag_items WHERE bag = $1 AND item = $2`)).
		WithArgs("nexus", "license").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM data_bag_items WHERE bag = $1 AND item = $2`)).
		WithArgs("nexus", "license").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.DeleteItem(context.Background(), "nexus", "license"))
	assert.ErrorIs(t, s.DeleteItem(context.Background(), "nexus", "license"), ErrItemNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── ListItems ─────────────────────────────────────────────────────────────────

func TestSQLStore_ListItems(t *testing.T) {
	s, mock := newTestSQLStore(t, DialectPostgres)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT item FROM data_bag_items WHERE bag = $1 ORDER BY item`)).
		WithArgs("nexus").
		WillReturnRows(sqlmock.NewRows([]string{"item"}).AddRow("certificates").AddRow("credentials"))

	items, err := s.ListItems(context.Background(), "nexus")
	require.NoError(t, err)
	assert.Equal(t, []string{"certificates", "credentials"}, items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_ListItems_Empty(t *testing.T) {
	s, mock := newTestSQLStore(t, DialectSQLite)
	mock.ExpectQuery(`SELECT item FROM data_bag_items`).
		WillReturnRows(sqlmock.NewRows([]string{"item"}))

	items, err := s.ListItems(context.Background(), "nexus")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

// ── real sqlite ───────────────────────────────────────────────────────────────

func TestSQLStore_SQLiteContract(t *testing.T) {
	ctx := context.Background()
	db, err := NewConnect(ctx, DialectSQLite, filepath.Join(t.TempDir(), "bags.db"), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	s := NewSQLStore(db, logger.Nop())
	defer s.Close()

	storeContract(t, s)
}

func TestNewConnect_UnknownDialect(t *testing.T) {
	_, err := NewConnect(context.Background(), "mssql", "dsn", logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

// ── classifiers ───────────────────────────────────────────────────────────────

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	assert.Equal(t, NonRetryable, c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("ping: %w", driver.ErrBadConn)))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := sqliteErrorClassifier{}

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("other")))
}
