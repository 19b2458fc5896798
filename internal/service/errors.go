// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrSecretNotFound is matched by every [*SecretNotFoundError].
	ErrSecretNotFound = errors.New("secret not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrItemMismatch          = errors.New("item id does not match its name")
)

// SecretNotFoundError reports that a secret item could not be located or
// decrypted. Err keeps the store or cipher failure, so callers can still tell
// an unreachable store from a missing item with errors.Is.
type SecretNotFoundError struct {
	Item string
	Err  error
}

func (e *SecretNotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", ErrSecretNotFound, e.Item)
	}
	return fmt.Sprintf("%s: %q: %v", ErrSecretNotFound, e.Item, e.Err)
}

// Is makes errors.Is(err, ErrSecretNotFound) true.
func (e *SecretNotFoundError) Is(target error) bool {
	return target == ErrSecretNotFound
}

func (e *SecretNotFoundError) Unwrap() error {
	return e.Err
}
