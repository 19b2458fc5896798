// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a JWT issued by the data-bag server to a provisioned node.
//
// The "sub" claim names the node (usually its FQDN); the server logs it with
// every request but does not scope access by it.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Node is the parsed subject claim.
	Node string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
