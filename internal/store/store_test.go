// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-nexus-keeper/internal/config"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSecretStore(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		cfg      config.Secrets
		wantType any
	}{
		{
			name:     "file",
			cfg:      config.Secrets{Backend: config.BackendFile, Path: dir},
			wantType: &fileStore{},
		},
		{
			name:     "bolt",
			cfg:      config.Secrets{Backend: config.BackendBolt, Path: filepath.Join(dir, "bags.db")},
			wantType: &boltStore{},
		},
		{
			name:     "sqlite",
			cfg:      config.Secrets{Backend: config.BackendSQLite, DSN: filepath.Join(dir, "bags.sqlite")},
			wantType: &sqlStore{},
		},
		{
			name:     "http",
			cfg:      config.Secrets{Backend: config.BackendHTTP, URL: "http://localhost:8080", RequestTimeout: time.Second},
			wantType: &httpStore{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSecretStore(context.Background(), tt.cfg, logger.Nop())
			require.NoError(t, err)
			defer s.Close()

			assert.IsType(t, tt.wantType, s)
		})
	}
}

func TestNewSecretStore_UnknownBackend(t *testing.T) {
	_, err := NewSecretStore(context.Background(), config.Secrets{Backend: "vault"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
