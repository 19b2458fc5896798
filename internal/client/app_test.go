// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-nexus-keeper/internal/config"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, attributesFile string) *config.StructuredConfig {
	t.Helper()
	dir := t.TempDir()
	secretFile := filepath.Join(dir, "encrypted_data_bag_secret")
	require.NoError(t, os.WriteFile(secretFile, []byte("a-shared-secret\n"), 0o600))

	return &config.StructuredConfig{
		Node: config.Node{FQDN: "repo.example.com", AttributesFile: attributesFile},
		Secrets: config.Secrets{
			Backend:    config.BackendFile,
			Path:       filepath.Join(dir, "data_bags"),
			SecretFile: secretFile,
			Bag:        config.DefaultBag,
		},
		Nexus: config.Nexus{RequestTimeout: 5 * time.Second},
	}
}

func writeAttributes(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "node.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewApp_DerivedAttributes(t *testing.T) {
	app, err := NewApp(testConfig(t, ""), logger.Nop())
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, "https://repo.example.com:8443/nexus", app.Attributes().Nexus.CLI.URL)
}

func TestNewApp_BadAttributesFile(t *testing.T) {
	_, err := NewApp(testConfig(t, filepath.Join(t.TempDir(), "missing.yaml")), logger.Nop())
	assert.Error(t, err)
}

func TestApp_ServicesMissingSecret(t *testing.T) {
	cfg := testConfig(t, "")
	cfg.Secrets.SecretFile = filepath.Join(t.TempDir(), "absent")

	app, err := NewApp(cfg, logger.Nop())
	require.NoError(t, err)

	_, err = app.Services(context.Background())
	assert.Error(t, err)

	// the failure is remembered
	_, again := app.Services(context.Background())
	assert.Equal(t, err, again)
	assert.NoError(t, app.Close())
}

// ── end to end ───────────────────────────────────────────────────────────────

// fakeOSSNexus accepts admin/newpass only and reports an OSS edition.
func fakeOSSNexus(t *testing.T, created *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /service/local/authentication/login", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /service/local/status", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"version":"2.1.2","editionShort":"OSS","editionLong":"Open Source","state":"STARTED"}}`))
	})
	mux.HandleFunc("GET /service/local/repositories/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("POST /service/local/repositories", func(w http.ResponseWriter, _ *http.Request) {
		created.Add(1)
		w.WriteHeader(http.StatusCreated)
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, p, ok := r.BasicAuth()
		if !ok || u != "admin" || p != "newpass" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestApp_ConvergeOnce(t *testing.T) {
	var created atomic.Int32
	srv := fakeOSSNexus(t, &created)

	cfg := testConfig(t, writeAttributes(t, "nexus:\n  cli:\n    url: "+srv.URL+"\n"))
	app, err := NewApp(cfg, logger.Nop())
	require.NoError(t, err)
	defer app.Close()

	ctx := context.Background()
	services, err := app.Services(ctx)
	require.NoError(t, err)

	require.NoError(t, services.SecretService.StoreItem(ctx, models.SecretItem{
		ID: models.CredentialsItem,
		Fields: map[string]json.RawMessage{
			models.DefaultAdminField: json.RawMessage(`{"username":"admin","password":"admin123"}`),
			models.UpdatedAdminField: json.RawMessage(`{"username":"admin","password":"newpass"}`),
		},
	}))

	var reports []models.ConvergeReport
	err = app.Converge(ctx, 0, func(r models.ConvergeReport, err error) {
		require.NoError(t, err)
		reports = append(reports, r)
	})
	require.NoError(t, err)

	require.Len(t, reports, 1)
	assert.Equal(t, models.UpdatedAdminSet, reports[0].CredentialSet)
	assert.False(t, reports[0].PasswordRotated)
	assert.Equal(t, []string{"Artifacts"}, reports[0].CreatedRepositories)
	assert.Equal(t, "OSS", reports[0].Status.EditionShort)
	assert.Equal(t, int32(1), created.Load())
}
