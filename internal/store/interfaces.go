// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-nexus-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_store_mock.go -package=mock

// SecretStore persists encrypted secret items grouped into named bags.
// Stores never see plaintext: items arrive and leave sealed.
type SecretStore interface {
	// GetItem returns the sealed item stored under bag/item, or an error
	// matching [ErrItemNotFound] when either does not exist.
	GetItem(ctx context.Context, bag, item string) (models.EncryptedItem, error)

	// PutItem creates or replaces item.ID inside bag.
	PutItem(ctx context.Context, bag string, item models.EncryptedItem) error

	// DeleteItem removes bag/item. Missing items yield [ErrItemNotFound].
	DeleteItem(ctx context.Context, bag, item string) error

	// ListItems returns the sorted item names of bag. An unknown bag is
	// empty, not an error.
	ListItems(ctx context.Context, bag string) ([]string, error)

	// Close releases handles held by the store.
	Close() error
}
