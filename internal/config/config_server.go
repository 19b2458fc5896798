package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// GetServerConfig builds the structured configuration and additionally
// validates the settings required by the data-bag server.
func GetServerConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	if err = cfg.Server.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
