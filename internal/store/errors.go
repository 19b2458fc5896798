// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by every [SecretStore] backend. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when the requested bag or item does not
	// exist.
	ErrItemNotFound = errors.New("data bag item not found")

	// ErrStoreUnavailable is returned when the store cannot be reached or
	// refuses the request (I/O, transport or authentication failure).
	ErrStoreUnavailable = errors.New("secret store unavailable")

	// ErrInvalidName is returned for bag or item names that are empty or
	// contain characters outside [A-Za-z0-9_.-].
	ErrInvalidName = errors.New("invalid data bag or item name")

	// ErrUnknownBackend is returned by [NewSecretStore] for an unsupported
	// backend name.
	ErrUnknownBackend = errors.New("unknown secret store backend")
)

// Low-level database operation errors, wrapped by the SQL backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan data bag item row")
)
