// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nexus-keeper/internal/config"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
)

// NewSecretStore opens the backend selected by cfg.Backend. SQL backends are
// migrated before use.
func NewSecretStore(ctx context.Context, cfg config.Secrets, log *logger.Logger) (SecretStore, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return NewFileStore(cfg.Path, log), nil

	case config.BackendBolt:
		return NewBoltStore(cfg.Path, log)

	case config.BackendSQLite, config.BackendPostgres:
		dialect := DialectSQLite
		if cfg.Backend == config.BackendPostgres {
			dialect = DialectPostgres
		}

		db, err := NewConnect(ctx, dialect, cfg.DSN, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			log.Err(err).Str("func", "NewSecretStore").Msg("error migrating database")
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return NewSQLStore(db, log), nil

	case config.BackendHTTP:
		return NewHTTPStore(cfg.URL, cfg.Token, cfg.RequestTimeout, log)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
