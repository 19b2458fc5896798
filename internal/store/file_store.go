// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/models"
)

const itemFileExt = ".json"

// fileStore keeps each item in <dir>/<bag>/<item>.json, the layout of a
// local data bag checkout.
type fileStore struct {
	dir    string
	logger *logger.Logger
}

// NewFileStore constructs a [SecretStore] rooted at dir. The directory is
// not created until the first PutItem.
func NewFileStore(dir string, log *logger.Logger) SecretStore {
	log.Debug().Str("dir", dir).Msg("creating file secret store")
	return &fileStore{dir: dir, logger: log}
}

func (f *fileStore) itemPath(bag, item string) string {
	return filepath.Join(f.dir, bag, item+itemFileExt)
}

// GetItem implements [SecretStore].
func (f *fileStore) GetItem(ctx context.Context, bag, item string) (models.EncryptedItem, error) {
	log := logger.FromContext(ctx)

	if err := validateNames(bag, item); err != nil {
		return models.EncryptedItem{}, err
	}

	path := f.itemPath(bag, item)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.EncryptedItem{}, fmt.Errorf("%w: %s/%s", ErrItemNotFound, bag, item)
		}
		log.Err(err).Str("func", "*fileStore.GetItem").Str("path", path).Msg("error reading item file")
		return models.EncryptedItem{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var sealed models.EncryptedItem
	if err = json.Unmarshal(data, &sealed); err != nil {
		log.Err(err).Str("func", "*fileStore.GetItem").Str("path", path).Msg("error decoding item file")
		return models.EncryptedItem{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if sealed.ID == "" {
		sealed.ID = item
	}

	return sealed, nil
}

// PutItem implements [SecretStore]. The item is written to a temporary file
// first and renamed into place so readers never see a partial item.
func (f *fileStore) PutItem(ctx context.Context, bag string, item models.EncryptedItem) error {
	log := logger.FromContext(ctx)

	if err := validateNames(bag, item.ID); err != nil {
		return err
	}

	item.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}

	bagDir := filepath.Join(f.dir, bag)
	if err = os.MkdirAll(bagDir, 0o700); err != nil {
		log.Err(err).Str("func", "*fileStore.PutItem").Str("dir", bagDir).Msg("error creating bag directory")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	tmp, err := os.CreateTemp(bagDir, "."+item.ID+"-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err = os.Rename(tmp.Name(), f.itemPath(bag, item.ID)); err != nil {
		log.Err(err).Str("func", "*fileStore.PutItem").Msg("error moving item file into place")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// DeleteItem implements [SecretStore].
func (f *fileStore) DeleteItem(ctx context.Context, bag, item string) error {
	if err := validateNames(bag, item); err != nil {
		return err
	}

	err := os.Remove(f.itemPath(bag, item))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s/%s", ErrItemNotFound, bag, item)
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*fileStore.DeleteItem").Msg("error removing item file")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}

// ListItems implements [SecretStore].
func (f *fileStore) ListItems(ctx context.Context, bag string) ([]string, error) {
	if err := validateNames(bag); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(f.dir, bag))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		logger.FromContext(ctx).Err(err).Str("func", "*fileStore.ListItems").Msg("error reading bag directory")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	items := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, itemFileExt) {
			continue
		}
		items = append(items, strings.TrimSuffix(name, itemFileExt))
	}
	slices.Sort(items)

	return items, nil
}

// Close implements [SecretStore]. The file store holds no handles.
func (f *fileStore) Close() error {
	return nil
}
