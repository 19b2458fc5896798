// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the binaries:
// typed context keys, JSON response writing, the resty HTTP client wrapper,
// JWT generation and validation, and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so values set here never
// collide with string keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// NodeCtxKey holds the authenticated node name (the JWT subject).
	NodeCtxKey = contextKey("node")

	// TraceIDCtxKey holds the request trace id.
	TraceIDCtxKey = contextKey("traceID")
)

// GetNodeFromContext returns the authenticated node name and whether one was
// set.
func GetNodeFromContext(ctx context.Context) (string, bool) {
	node, ok := ctx.Value(NodeCtxKey).(string)
	return node, ok
}

// GetTraceIDFromContext returns the request trace id and whether one was set.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
