// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownItem     = errors.New("unknown secret item")

	// ErrInvalidSecretContent is matched by every [*InvalidItemError].
	ErrInvalidSecretContent = errors.New("invalid secret content")
)

// InvalidItemError reports the first required field missing from a secret
// item. Nested fields are written as parent::child, for example
// "default_admin::password" or "repo1.example.com::certificate".
type InvalidItemError struct {
	Item  string
	Field string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("%s: item %q is missing field %q", ErrInvalidSecretContent, e.Item, e.Field)
}

// Is makes errors.Is(err, ErrInvalidSecretContent) true.
func (e *InvalidItemError) Is(target error) bool {
	return target == ErrInvalidSecretContent
}

func missing(item string, field ...string) error {
	name := field[0]
	for _, f := range field[1:] {
		name += "::" + f
	}
	return &InvalidItemError{Item: item, Field: name}
}
