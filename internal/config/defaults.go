// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

const (
	// DefaultSecretsPath is where local data bags live.
	DefaultSecretsPath = "/etc/nexus-keeper/data_bags"

	// DefaultSecretFile holds the shared item encryption secret.
	DefaultSecretFile = "/etc/nexus-keeper/encrypted_data_bag_secret"

	DefaultBag              = "nexus"
	DefaultLogLevel         = "info"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultServerTimeout    = 15 * time.Second
	DefaultTokenIssuer      = "databag-server"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultConvergeInterval = 30 * time.Minute
)

// Defaults returns the lowest-priority configuration layer.
func Defaults() *StructuredConfig {
	fqdn, err := os.Hostname()
	if err != nil {
		fqdn = "localhost"
	}

	return &StructuredConfig{
		Log:  Log{Level: DefaultLogLevel},
		Node: Node{FQDN: fqdn},
		Secrets: Secrets{
			Backend:        BackendFile,
			Path:           DefaultSecretsPath,
			SecretFile:     DefaultSecretFile,
			Bag:            DefaultBag,
			RequestTimeout: DefaultRequestTimeout,
		},
		Nexus: Nexus{RequestTimeout: DefaultRequestTimeout},
		Server: Server{
			RequestTimeout: DefaultServerTimeout,
			TokenIssuer:    DefaultTokenIssuer,
			TokenDuration:  DefaultTokenDuration,
		},
		Workers: Workers{ConvergeInterval: DefaultConvergeInterval},
	}
}
