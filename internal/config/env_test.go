// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"LOG_LEVEL": "debug",

		"NODE_FQDN":            "repo.example.com",
		"NODE_ATTRIBUTES_FILE": "/etc/nexus-keeper/node.yaml",

		"SECRETS_BACKEND":         "http",
		"SECRETS_PATH":            "/var/lib/data_bags",
		"SECRETS_DSN":             "file:secrets.db",
		"SECRETS_URL":             "https://bags.example.com",
		"SECRETS_TOKEN":           "bearer-token",
		"SECRETS_SECRET_FILE":     "/etc/secret",
		"SECRETS_BAG":             "nexus",
		"SECRETS_REQUEST_TIMEOUT": "5s",

		"NEXUS_REQUEST_TIMEOUT":      "45s",
		"NEXUS_INSECURE_SKIP_VERIFY": "true",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_TOKEN_SIGN_KEY":  "jwt_secret",
		"SERVER_TOKEN_ISSUER":    "test_issuer",
		"SERVER_TOKEN_DURATION":  "1h",

		"WORKERS_CONVERGE_INTERVAL": "10m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "debug", cfg.Log.Level)

	assert.Equal(t, "repo.example.com", cfg.Node.FQDN)
	assert.Equal(t, "/etc/nexus-keeper/node.yaml", cfg.Node.AttributesFile)

	assert.Equal(t, BackendHTTP, cfg.Secrets.Backend)
	assert.Equal(t, "/var/lib/data_bags", cfg.Secrets.Path)
	assert.Equal(t, "file:secrets.db", cfg.Secrets.DSN)
	assert.Equal(t, "https://bags.example.com", cfg.Secrets.URL)
	assert.Equal(t, "bearer-token", cfg.Secrets.Token)
	assert.Equal(t, "/etc/secret", cfg.Secrets.SecretFile)
	assert.Equal(t, "nexus", cfg.Secrets.Bag)
	assert.Equal(t, 5*time.Second, cfg.Secrets.RequestTimeout)

	assert.Equal(t, 45*time.Second, cfg.Nexus.RequestTimeout)
	assert.True(t, cfg.Nexus.InsecureSkipVerify)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "jwt_secret", cfg.Server.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.Server.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Server.TokenDuration)

	assert.Equal(t, 10*time.Minute, cfg.Workers.ConvergeInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SERVER_TOKEN_SIGN_KEY": "jwt_secret",
		"SECRETS_BACKEND":       "bolt",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.Server.TokenSignKey)
	assert.Empty(t, cfg.Server.TokenIssuer)
	assert.Zero(t, cfg.Server.TokenDuration)

	assert.Equal(t, BackendBolt, cfg.Secrets.Backend)
	assert.Empty(t, cfg.Secrets.Path)

	assert.Equal(t, Node{}, cfg.Node)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SERVER_TOKEN_DURATION": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"NEXUS_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Nexus.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"LOG_LEVEL",

		"NODE_FQDN",
		"NODE_ATTRIBUTES_FILE",

		"SECRETS_BACKEND",
		"SECRETS_PATH",
		"SECRETS_DSN",
		"SECRETS_URL",
		"SECRETS_TOKEN",
		"SECRETS_SECRET_FILE",
		"SECRETS_BAG",
		"SECRETS_REQUEST_TIMEOUT",

		"NEXUS_REQUEST_TIMEOUT",
		"NEXUS_INSECURE_SKIP_VERIFY",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_TOKEN_SIGN_KEY",
		"SERVER_TOKEN_ISSUER",
		"SERVER_TOKEN_DURATION",

		"WORKERS_CONVERGE_INTERVAL",
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		_ = os.Unsetenv(k)
	}
}
