// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the provisioning logic: loading and validating
// secrets, opening authenticated Nexus sessions with credential fallback,
// converging a Nexus instance, and serving data-bag items.
package service

import (
	"context"

	"github.com/MKhiriev/go-nexus-keeper/internal/adapter"
	"github.com/MKhiriev/go-nexus-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SecretService loads secret items from the configured bag, decrypts them and
// hands out validated, typed records.
type SecretService interface {
	// LoadItem fetches and decrypts item. Any failure is a
	// [*SecretNotFoundError] naming the item.
	LoadItem(ctx context.Context, item string) (models.SecretItem, error)

	Credentials(ctx context.Context) (models.Credentials, error)
	License(ctx context.Context) (models.License, error)

	// Certificates validates and returns the entries of the trusted servers.
	Certificates(ctx context.Context, trusted []string) (models.Certificates, error)

	// SSLCertificate returns the base64-decoded certificate and key.
	SSLCertificate(ctx context.Context) (models.SSLCertificate, error)

	// StoreItem validates well-known items, seals and writes item.
	StoreItem(ctx context.Context, item models.SecretItem) error
	DeleteItem(ctx context.Context, item string) error
	ListItems(ctx context.Context) ([]string, error)
}

// NexusService opens authenticated Nexus sessions.
type NexusService interface {
	// Client connects with default_admin and, on an authorization error
	// only, retries once with updated_admin. It reports which set won.
	Client(ctx context.Context) (adapter.NexusSession, models.CredentialSetName, error)

	// CheckCredentials reports whether username/password authenticate.
	// Authorization errors yield false; any other error is returned.
	CheckCredentials(ctx context.Context, username, password string) (bool, error)
}

// ProvisionService brings a Nexus instance to the state the attributes and
// secrets describe.
type ProvisionService interface {
	Converge(ctx context.Context) (models.ConvergeReport, error)
}

// DataBagService serves encrypted items for the data-bag server. Items are
// never decrypted on this path.
type DataBagService interface {
	GetItem(ctx context.Context, bag, item string) (models.EncryptedItem, error)
	PutItem(ctx context.Context, bag string, item models.EncryptedItem) error
	DeleteItem(ctx context.Context, bag, item string) error
	ListItems(ctx context.Context, bag string) ([]string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
