// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants every binary relies on.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Secrets.validate(); err != nil {
		return err
	}

	if cfg.Workers.ConvergeInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (s Secrets) validate() error {
	switch s.Backend {
	case BackendFile, BackendBolt:
		if s.Path == "" {
			return fmt.Errorf("%w: %s backend requires a path", ErrInvalidSecretsConfigs, s.Backend)
		}
	case BackendSQLite, BackendPostgres:
		if s.DSN == "" {
			return fmt.Errorf("%w: %s backend requires a DSN", ErrInvalidSecretsConfigs, s.Backend)
		}
	case BackendHTTP:
		if s.URL == "" {
			return fmt.Errorf("%w: http backend requires a URL", ErrInvalidSecretsConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidSecretsConfigs, s.Backend)
	}

	if s.Bag == "" {
		return fmt.Errorf("%w: empty bag name", ErrInvalidSecretsConfigs)
	}

	return nil
}

// validate checks the settings the data-bag server needs before listening.
func (s Server) validate() error {
	if s.HTTPAddress == "" || s.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}
	if s.TokenSignKey == "" || s.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidServerConfigs)
	}
	return nil
}
