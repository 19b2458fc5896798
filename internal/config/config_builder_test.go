// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validSecrets() Secrets {
	return Secrets{Backend: BackendFile, Path: "/tmp/bags", Bag: "nexus"}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and no sources.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.sources())
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_PriorityOrder verifies that flags beat env, env beats JSON and
// defaults only fill what is left.
func TestBuild_PriorityOrder(t *testing.T) {
	b := &configBuilder{
		flags: &StructuredConfig{Log: Log{Level: "debug"}},
		env: &StructuredConfig{
			Log:     Log{Level: "warn"},
			Secrets: Secrets{Path: "/env/bags"},
		},
		json: &StructuredConfig{
			Log:     Log{Level: "error"},
			Secrets: Secrets{Path: "/json/bags", Backend: BackendBolt},
			Nexus:   Nexus{RequestTimeout: time.Minute},
		},
		defaults: Defaults(),
	}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/env/bags", cfg.Secrets.Path)
	assert.Equal(t, BackendBolt, cfg.Secrets.Backend)
	assert.Equal(t, time.Minute, cfg.Nexus.RequestTimeout)
	assert.Equal(t, DefaultBag, cfg.Secrets.Bag)
	assert.Equal(t, DefaultSecretFile, cfg.Secrets.SecretFile)
	assert.Equal(t, DefaultConvergeInterval, cfg.Workers.ConvergeInterval)
}

// TestBuild_ValidationFailure verifies that a merged config without a
// usable secret store is rejected.
func TestBuild_ValidationFailure(t *testing.T) {
	b := &configBuilder{
		flags: &StructuredConfig{Secrets: Secrets{Backend: BackendPostgres, Bag: "nexus"}},
	}

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSecretsConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_PathFromEnv verifies that the JSON file named by a higher
// priority source is loaded.
func TestWithJSON_PathFromEnv(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"secrets": map[string]any{"backend": "bolt", "path": "/json/bags.db"},
	})

	b := &configBuilder{env: &StructuredConfig{JSONFilePath: path}}
	b.withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, BackendBolt, b.json.Secrets.Backend)
	assert.Equal(t, "/json/bags.db", b.json.Secrets.Path)
}

// TestWithJSON_NoPath verifies that no JSON source is added when no path was
// given.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Nil(t, b.json)
}

// TestWithJSON_MissingFile verifies that a missing file is reported.
func TestWithJSON_MissingFile(t *testing.T) {
	b := &configBuilder{flags: &StructuredConfig{JSONFilePath: "/does/not/exist.json"}}
	b.withJSON()
	require.Error(t, b.err)
	assert.Nil(t, b.json)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_EnvOverJSON verifies the full pipeline with env
// and a JSON file.
func TestGetStructuredConfig_EnvOverJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"log":     map[string]any{"level": "error"},
		"secrets": map[string]any{"backend": "sqlite", "dsn": "file:json.db"},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":      path,
		"SECRETS_DSN": "file:env.db",
	})

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, BackendSQLite, cfg.Secrets.Backend)
	assert.Equal(t, "file:env.db", cfg.Secrets.DSN)
	assert.Equal(t, DefaultBag, cfg.Secrets.Bag)
}

// TestGetStructuredConfig_FlagsOverEnv verifies that an explicitly set flag
// wins over the environment.
func TestGetStructuredConfig_FlagsOverEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"LOG_LEVEL": "warn"})

	fs := newTestFlagSet()
	require.NoError(t, fs.Parse([]string{"--log-level", "debug", "--secrets-path", "/flags/bags"}))

	cfg, err := GetStructuredConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/flags/bags", cfg.Secrets.Path)
	assert.Equal(t, BackendFile, cfg.Secrets.Backend)
}

// TestGetStructuredConfig_Defaults verifies that an empty environment yields
// the built-in defaults.
func TestGetStructuredConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, BackendFile, cfg.Secrets.Backend)
	assert.Equal(t, DefaultSecretsPath, cfg.Secrets.Path)
	assert.Equal(t, DefaultRequestTimeout, cfg.Nexus.RequestTimeout)
	assert.NotEmpty(t, cfg.Node.FQDN)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestSecretsValidate(t *testing.T) {
	tests := []struct {
		name    string
		secrets Secrets
		wantErr bool
	}{
		{"file ok", validSecrets(), false},
		{"file without path", Secrets{Backend: BackendFile, Bag: "nexus"}, true},
		{"bolt ok", Secrets{Backend: BackendBolt, Path: "bags.db", Bag: "nexus"}, false},
		{"sqlite without dsn", Secrets{Backend: BackendSQLite, Bag: "nexus"}, true},
		{"postgres ok", Secrets{Backend: BackendPostgres, DSN: "postgres://x", Bag: "nexus"}, false},
		{"http without url", Secrets{Backend: BackendHTTP, Bag: "nexus"}, true},
		{"unknown backend", Secrets{Backend: "vault", Path: "x", Bag: "nexus"}, true},
		{"empty bag", Secrets{Backend: BackendFile, Path: "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.secrets.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSecretsConfigs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStructuredConfigValidate_NegativeInterval(t *testing.T) {
	cfg := &StructuredConfig{
		Secrets: validSecrets(),
		Workers: Workers{ConvergeInterval: -time.Second},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestServerValidate(t *testing.T) {
	ok := Server{
		HTTPAddress:    "localhost:8080",
		RequestTimeout: time.Second,
		TokenSignKey:   "key",
		TokenIssuer:    "iss",
	}
	assert.NoError(t, ok.validate())

	noKey := ok
	noKey.TokenSignKey = ""
	assert.ErrorIs(t, noKey.validate(), ErrInvalidServerConfigs)

	noAddr := ok
	noAddr.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidServerConfigs)
}
