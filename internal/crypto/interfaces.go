// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-nexus-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/item_cipher_mock.go -package=mock

// ItemCipher encrypts and decrypts secret items with the shared secret.
// The item id stays in plaintext; every field is sealed on its own with
// AES-256-GCM under a key derived from the secret and a per-item salt.
//
// Scheme:
//
//	Salt      = 16 random bytes                         (per Seal call)
//	Key       = Argon2id(secret, Salt)
//	Field     = Nonce ‖ AES-GCM(Key, Nonce, value, AAD = id "/" name)
type ItemCipher interface {
	// Seal encrypts every field of item. Each call picks a fresh salt and
	// fresh nonces, so sealing the same item twice yields different output.
	Seal(item models.SecretItem) (models.EncryptedItem, error)

	// Open decrypts item. A wrong secret, an unknown envelope version or a
	// tampered field fails with an error matching ErrDecryption.
	Open(item models.EncryptedItem) (models.SecretItem, error)
}
