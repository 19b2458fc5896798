// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/models"
)

const (
	itemsTable = "data_bag_items"

	upsertItemSuffix = "ON CONFLICT (bag, item) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at"
)

// sqlStore is the database/sql implementation of [SecretStore] shared by the
// sqlite and postgres backends. The sealed item is kept as a JSON document in
// the payload column.
type sqlStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLStore constructs a [SecretStore] on top of an open, migrated DB.
func NewSQLStore(db *DB, log *logger.Logger) SecretStore {
	log.Debug().Str("dialect", db.dialect).Msg("creating sql secret store")
	return &sqlStore{db: db, logger: log}
}

// GetItem implements [SecretStore].
func (s *sqlStore) GetItem(ctx context.Context, bag, item string) (models.EncryptedItem, error) {
	log := logger.FromContext(ctx)

	if err := validateNames(bag, item); err != nil {
		return models.EncryptedItem{}, err
	}

	query, args, err := s.db.builder.
		Select("payload", "updated_at").
		From(itemsTable).
		Where(sq.Eq{"bag": bag, "item": item}).
		ToSql()
	if err != nil {
		return models.EncryptedItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		payload   string
		updatedAt time.Time
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&payload, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EncryptedItem{}, fmt.Errorf("%w: %s/%s", ErrItemNotFound, bag, item)
		}
		log.Err(err).Str("func", "*sqlStore.GetItem").Msg("error selecting item")
		return models.EncryptedItem{}, s.wrapError(err)
	}

	var sealed models.EncryptedItem
	if err = json.Unmarshal([]byte(payload), &sealed); err != nil {
		log.Err(err).Str("func", "*sqlStore.GetItem").Msg("error decoding item payload")
		return models.EncryptedItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	sealed.ID = item
	sealed.UpdatedAt = updatedAt

	return sealed, nil
}

// PutItem implements [SecretStore].
func (s *sqlStore) PutItem(ctx context.Context, bag string, item models.EncryptedItem) error {
	log := logger.FromContext(ctx)

	if err := validateNames(bag, item.ID); err != nil {
		return err
	}

	// updated_at lives in its own column
	updatedAt := time.Now().UTC()
	item.UpdatedAt = time.Time{}
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}

	query, args, err := s.db.builder.
		Insert(itemsTable).
		Columns("bag", "item", "payload", "updated_at").
		Values(bag, item.ID, string(payload), updatedAt).
		Suffix(upsertItemSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlStore.PutItem").Msg("error upserting item")
		return s.wrapError(err)
	}

	return nil
}

// DeleteItem implements [SecretStore].
func (s *sqlStore) DeleteItem(ctx context.Context, bag, item string) error {
	if err := validateNames(bag, item); err != nil {
		return err
	}

	query, args, err := s.db.builder.
		Delete(itemsTable).
		Where(sq.Eq{"bag": bag, "item": item}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlStore.DeleteItem").Msg("error deleting item")
		return s.wrapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return s.wrapError(err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s/%s", ErrItemNotFound, bag, item)
	}

	return nil
}

// ListItems implements [SecretStore].
func (s *sqlStore) ListItems(ctx context.Context, bag string) ([]string, error) {
	log := logger.FromContext(ctx)

	if err := validateNames(bag); err != nil {
		return nil, err
	}

	query, args, err := s.db.builder.
		Select("item").
		From(itemsTable).
		Where(sq.Eq{"bag": bag}).
		OrderBy("item").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.ListItems").Msg("error listing items")
		return nil, s.wrapError(err)
	}
	defer rows.Close()

	items := []string{}
	for rows.Next() {
		var item string
		if err = rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, s.wrapError(err)
	}

	return items, nil
}

// Close implements [SecretStore].
func (s *sqlStore) Close() error {
	return s.db.Close()
}

// wrapError tags transient driver errors with [ErrStoreUnavailable] so the
// caller can tell an outage from a broken query.
func (s *sqlStore) wrapError(err error) error {
	if s.db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
