// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package attributes

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrUnknownAttribute is returned by Lookup for a dotted name that does not
// exist in the table.
var ErrUnknownAttribute = errors.New("unknown attribute")

// Lookup returns the value stored under a dotted name such as
// "nexus.cli.url". Intermediate names return the nested group as a map.
func (a *Attributes) Lookup(name string) (any, error) {
	tree, err := a.tree()
	if err != nil {
		return nil, err
	}

	var node any = tree
	for _, part := range strings.Split(name, ".") {
		group, ok := node.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
		}
		node, ok = group[part]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
		}
	}
	return node, nil
}

// Flatten returns every leaf setting keyed by its dotted name. Lists are
// leaves.
func (a *Attributes) Flatten() (map[string]any, error) {
	tree, err := a.tree()
	if err != nil {
		return nil, err
	}

	flat := make(map[string]any)
	flatten("", tree, flat)
	return flat, nil
}

// Keys returns the sorted dotted names of every leaf setting.
func (a *Attributes) Keys() ([]string, error) {
	flat, err := a.Flatten()
	if err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(flat)), nil
}

func (a *Attributes) tree() (map[string]any, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("error encoding attributes: %w", err)
	}
	var tree map[string]any
	if err = json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("error decoding attributes: %w", err)
	}
	return tree, nil
}

func flatten(prefix string, node map[string]any, out map[string]any) {
	for key, value := range node {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if group, ok := value.(map[string]any); ok {
			flatten(name, group, out)
			continue
		}
		out[name] = value
	}
}
