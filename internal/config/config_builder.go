package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

// configBuilder collects partial configs from every source and merges them
// in priority order. Each source is kept in its own slot so that the JSON
// path can be resolved from env and flags before the file is read.
type configBuilder struct {
	flags    *StructuredConfig
	env      *StructuredConfig
	json     *StructuredConfig
	defaults *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// sources returns the collected configs ordered from highest to lowest
// priority.
func (b *configBuilder) sources() []*StructuredConfig {
	configs := make([]*StructuredConfig, 0, 4)
	for _, cfg := range []*StructuredConfig{b.flags, b.env, b.json, b.defaults} {
		if cfg != nil {
			configs = append(configs, cfg)
		}
	}
	return configs
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	// mergo only fills zero fields, so merging from highest to lowest
	// priority lets the first non-zero value win.
	config := new(StructuredConfig)
	for _, cfg := range b.sources() {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	if fs == nil {
		return b
	}

	flagsCfg, err := parseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flagsCfg
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.sources() {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.json = jsonCfg

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = Defaults()
	return b
}
