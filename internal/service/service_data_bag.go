// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/internal/store"
	"github.com/MKhiriev/go-nexus-keeper/models"
)

type dataBagService struct {
	secretStore store.SecretStore

	logger *logger.Logger
}

func NewDataBagService(secretStore store.SecretStore, log *logger.Logger) DataBagService {
	return &dataBagService{
		secretStore: secretStore,
		logger:      log,
	}
}

func (d *dataBagService) GetItem(ctx context.Context, bag, item string) (models.EncryptedItem, error) {
	return d.secretStore.GetItem(ctx, bag, item)
}

func (d *dataBagService) PutItem(ctx context.Context, bag string, item models.EncryptedItem) error {
	if err := d.secretStore.PutItem(ctx, bag, item); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Str("bag", bag).Str("item", item.ID).Msg("item stored")
	return nil
}

func (d *dataBagService) DeleteItem(ctx context.Context, bag, item string) error {
	if err := d.secretStore.DeleteItem(ctx, bag, item); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Str("bag", bag).Str("item", item).Msg("item deleted")
	return nil
}

func (d *dataBagService) ListItems(ctx context.Context, bag string) ([]string, error) {
	return d.secretStore.ListItems(ctx, bag)
}
