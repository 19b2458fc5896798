// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the data-bag server writes into
// response bodies and log entries, so that wording stays consistent across
// handlers and middleware.
package app

const (
	// MsgInvalidJSON is returned when a PUT body is not a JSON encrypted item
	// or exceeds the size limit.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgItemIDMismatch is returned when the id inside a PUT body differs
	// from the item name in the path.
	MsgItemIDMismatch = "item id does not match the request path"

	// MsgRequestTimedOut is returned when a request exceeds the server's
	// request timeout.
	MsgRequestTimedOut = "request timed out"
)
