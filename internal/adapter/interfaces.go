// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the transport boundary to the Nexus repository manager.
//
// [NexusConnector] opens an authenticated [NexusSession] against the Nexus 2
// REST API (/service/local/...). Sessions are plain values tied to one set of
// credentials; they hold no state beyond the configured HTTP client.
//
// HTTP status codes are mapped to the sentinel errors in errors.go so callers
// can branch with [errors.Is]. [IsAuthorizationError] is the single predicate
// the credential fallback relies on.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-nexus-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/nexus_adapter_mock.go -package=mock

// NexusConnector opens sessions against a Nexus instance.
type NexusConnector interface {
	// Connect authenticates with params and returns a ready session.
	// Rejected credentials surface as [ErrUnauthorized] or [ErrForbidden].
	Connect(ctx context.Context, params models.ConnectionParams) (NexusSession, error)
}

// NexusSession is an authenticated handle on a Nexus instance.
type NexusSession interface {
	// Username is the account the session authenticated as.
	Username() string

	// Repository is the default repository taken from the connection
	// parameters.
	Repository() string

	// Status returns the instance status read at connect time or refreshed
	// from /service/local/status.
	Status(ctx context.Context) (models.NexusStatus, error)

	RepositoryExists(ctx context.Context, id string) (bool, error)
	CreateHostedRepository(ctx context.Context, repo models.HostedRepository) error

	// ChangePassword changes the password of username. Nexus requires the
	// current password even for administrators.
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error

	// InstalledLicense describes the installed license. The zero value
	// means none is installed.
	InstalledLicense(ctx context.Context) (models.LicenseInfo, error)

	// InstallLicense uploads a Nexus Professional license file.
	InstallLicense(ctx context.Context, license []byte) error

	ConfigureSmartProxy(ctx context.Context, settings models.SmartProxySettings) error

	// EnableArtifactPublish turns on smart-proxy publishing for a repository.
	EnableArtifactPublish(ctx context.Context, repositoryID string) error

	// TrustedKeys lists the peer certificates smart proxy already trusts.
	TrustedKeys(ctx context.Context) ([]models.TrustedKey, error)
	AddTrustedKey(ctx context.Context, key models.TrustedKey) error
}
