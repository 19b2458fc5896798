// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container shared by the
// nexusctl and databag-server binaries. It aggregates all sub-configurations
// and is populated by merging values from environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Node describes the host being provisioned.
	Node Node `envPrefix:"NODE_"`

	// Secrets selects and configures the encrypted secret store.
	Secrets Secrets `envPrefix:"SECRETS_"`

	// Nexus holds settings for the outbound Nexus REST client.
	Nexus Nexus `envPrefix:"NEXUS_"`

	// Server holds listen address, timeout and token settings for the
	// data-bag server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds settings for periodic convergence.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimal emitted level (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Node describes the host being provisioned.
type Node struct {
	// FQDN is the fully-qualified domain name of the node. It seeds the
	// reverse-proxy server name and SSL certificate key attributes.
	// Env: NODE_FQDN
	FQDN string `env:"FQDN"`

	// AttributesFile is an optional YAML or JSON file whose values override
	// the default attribute table.
	// Env: NODE_ATTRIBUTES_FILE
	AttributesFile string `env:"ATTRIBUTES_FILE"`
}

// Secret store backends.
const (
	BackendFile     = "file"
	BackendBolt     = "bolt"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendHTTP     = "http"
)

// Secrets configures the encrypted secret store.
type Secrets struct {
	// Backend is one of file, bolt, sqlite, postgres, http.
	// Env: SECRETS_BACKEND
	Backend string `env:"BACKEND"`

	// Path is the data-bag directory (file backend) or database file
	// (bolt backend).
	// Env: SECRETS_PATH
	Path string `env:"PATH"`

	// DSN is the database connection string for the sqlite and postgres
	// backends.
	// Env: SECRETS_DSN
	DSN string `env:"DSN"`

	// URL is the base URL of a data-bag server (http backend).
	// Env: SECRETS_URL
	URL string `env:"URL"`

	// Token is the bearer token presented to the data-bag server.
	// Env: SECRETS_TOKEN
	Token string `env:"TOKEN"`

	// SecretFile is the path of the shared secret that decrypts items.
	// Env: SECRETS_SECRET_FILE
	SecretFile string `env:"SECRET_FILE"`

	// Bag is the logical bag name holding the Nexus items.
	// Env: SECRETS_BAG
	Bag string `env:"BAG"`

	// RequestTimeout bounds a single call to a remote store.
	// Env: SECRETS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Nexus configures the outbound Nexus REST client.
type Nexus struct {
	// RequestTimeout bounds a single REST call against Nexus.
	// Env: NEXUS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// InsecureSkipVerify disables TLS verification, for proxies that serve
	// a self-signed certificate.
	// Env: NEXUS_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`
}

// Server holds network, timeout and token settings for the data-bag server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenSignKey is the HMAC key used to sign and verify bearer tokens.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and required from every
	// token.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long minted tokens stay valid.
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Workers holds settings for periodic convergence.
type Workers struct {
	// ConvergeInterval is the pause between two convergence passes.
	// Env: WORKERS_CONVERGE_INTERVAL
	ConvergeInterval time.Duration `env:"CONVERGE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. Priority, highest first:
//  1. Command-line flags set on fs (only flags the user actually changed)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// fs may be nil when no flags are available.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withJSON().
		withDefaults().
		build()
}
