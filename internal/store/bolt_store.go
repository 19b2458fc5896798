// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/models"
	"github.com/fxamacker/cbor/v2"
	"go.etcd.io/bbolt"
)

// boltStore keeps one bbolt bucket per bag; values are CBOR-encoded
// [models.EncryptedItem] records keyed by item name.
type boltStore struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltStore opens (creating if needed) the bbolt database at path.
func NewBoltStore(path string, log *logger.Logger) (SecretStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("%w: create database directory: %w", ErrStoreUnavailable, err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltStore").Str("path", path).Msg("error opening bolt database")
		return nil, fmt.Errorf("%w: open bolt database: %w", ErrStoreUnavailable, err)
	}
	log.Debug().Str("func", "NewBoltStore").Str("path", path).Msg("opened bolt secret store")

	return &boltStore{db: db, logger: log}, nil
}

// GetItem implements [SecretStore].
func (b *boltStore) GetItem(ctx context.Context, bag, item string) (models.EncryptedItem, error) {
	if err := validateNames(bag, item); err != nil {
		return models.EncryptedItem{}, err
	}

	var sealed models.EncryptedItem
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bag))
		if bucket == nil {
			return fmt.Errorf("%w: %s/%s", ErrItemNotFound, bag, item)
		}
		data := bucket.Get([]byte(item))
		if data == nil {
			return fmt.Errorf("%w: %s/%s", ErrItemNotFound, bag, item)
		}
		return cbor.Unmarshal(data, &sealed)
	})
	if err != nil {
		return models.EncryptedItem{}, err
	}

	return sealed, nil
}

// PutItem implements [SecretStore].
func (b *boltStore) PutItem(ctx context.Context, bag string, item models.EncryptedItem) error {
	if err := validateNames(bag, item.ID); err != nil {
		return err
	}

	item.UpdatedAt = time.Now().UTC()
	data, err := cbor.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}

	err = b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bag))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(item.ID), data)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*boltStore.PutItem").Msg("error writing item")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// DeleteItem implements [SecretStore].
func (b *boltStore) DeleteItem(ctx context.Context, bag, item string) error {
	if err := validateNames(bag, item); err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bag))
		if bucket == nil || bucket.Get([]byte(item)) == nil {
			return fmt.Errorf("%w: %s/%s", ErrItemNotFound, bag, item)
		}
		return bucket.Delete([]byte(item))
	})
}

// ListItems implements [SecretStore]. bbolt iterates keys in byte order, so
// the result is already sorted.
func (b *boltStore) ListItems(ctx context.Context, bag string) ([]string, error) {
	if err := validateNames(bag); err != nil {
		return nil, err
	}

	items := []string{}
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bag))
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, _ []byte) error {
			items = append(items, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return items, nil
}

// Close implements [SecretStore].
func (b *boltStore) Close() error {
	return b.db.Close()
}
