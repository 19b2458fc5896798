// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decrypted secret items before any consumer reads
// them.
//
// Validators are pure: they inspect the value passed in and report the first
// missing field as an [*InvalidItemError]. Services inject a [Validator] and
// call it between decryption and decoding.
package validators

import "context"

// Validator validates an arbitrary value. The optional field names narrow or
// parameterise the check; their meaning depends on the implementation.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
