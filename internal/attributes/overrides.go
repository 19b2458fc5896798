// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package attributes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadOverrides reads a node override file. Files ending in .json are
// decoded as JSON, everything else as YAML.
func LoadOverrides(path string) (*Attributes, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error reading attributes file: %w", err)
	}

	overrides := &Attributes{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, overrides)
	default:
		err = yaml.Unmarshal(data, overrides)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing attributes file %s: %w", path, err)
	}

	return overrides, nil
}

// Load composes the table for node, applying the override file at path when
// one is given.
func Load(node Node, path string) (*Attributes, error) {
	if path == "" {
		return Compose(node, nil)
	}

	overrides, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	return Compose(node, overrides)
}
