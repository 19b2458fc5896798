// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration has no HTTP address.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoTokenSignKey is returned when bearer tokens could not be verified.
	errNoTokenSignKey = errors.New("token sign key is not set")
)
