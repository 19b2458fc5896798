// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Well-known names of the secret bag used to provision Nexus and of the items
// stored in it.
const (
	// SecretBag is the logical bag (collection) holding every Nexus secret.
	SecretBag = "nexus"

	CredentialsItem    = "credentials"
	LicenseItem        = "license"
	CertificatesItem   = "certificates"
	SSLCertificateItem = "ssl_certificate"
)

// SecretItem is a decrypted secret record: a mapping from field name to the
// raw JSON value of that field.
//
// A SecretItem is never consumed directly by provisioning code. It is first
// checked by the secret validator and then decoded into one of the typed
// records ([Credentials], [License], [Certificates], [SSLCertificate]).
type SecretItem struct {
	// ID is the item name inside the bag (e.g. "credentials").
	ID string `json:"id"`

	// Fields holds every non-id field of the item in plaintext JSON form.
	Fields map[string]json.RawMessage `json:"fields"`
}

// Field returns the raw JSON value of name and whether it is present.
// A JSON null is reported as absent.
func (s SecretItem) Field(name string) (json.RawMessage, bool) {
	raw, ok := s.Fields[name]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}
	return raw, true
}

// EncryptedField is a single AES-GCM encrypted field value.
type EncryptedField struct {
	// IV is the base64-encoded GCM nonce.
	IV string `json:"iv" cbor:"1,keyasint"`

	// Data is the base64-encoded ciphertext with the GCM tag appended.
	Data string `json:"encrypted_data" cbor:"2,keyasint"`
}

// EncryptedItem is the at-rest representation of a [SecretItem]. The item id
// is kept in plaintext; every other field is encrypted on its own.
type EncryptedItem struct {
	// ID is the plaintext item name.
	ID string `json:"id" cbor:"1,keyasint"`

	// Version is the envelope format version.
	Version int `json:"version" cbor:"2,keyasint"`

	// Cipher names the field cipher (always "aes-256-gcm").
	Cipher string `json:"cipher" cbor:"3,keyasint"`

	// Salt is the base64-encoded Argon2id salt used to derive the item key.
	Salt string `json:"salt" cbor:"4,keyasint"`

	// Fields maps the plaintext field name to its encrypted value.
	Fields map[string]EncryptedField `json:"fields" cbor:"5,keyasint"`

	// UpdatedAt is set by stores that track modification time.
	UpdatedAt time.Time `json:"updated_at,omitzero" cbor:"6,keyasint"`
}
