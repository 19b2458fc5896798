// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-nexus-keeper/models"
	"golang.org/x/crypto/argon2"
)

const (
	// EnvelopeVersion is the only [models.EncryptedItem] version Open accepts.
	EnvelopeVersion = 1

	// CipherName is recorded in every sealed item.
	CipherName = "aes-256-gcm"

	saltLen = 16
)

var (
	// ErrDecryption is returned when an item cannot be opened.
	ErrDecryption = errors.New("cannot decrypt secret item")

	// ErrEmptySecret is returned when the shared secret has no content.
	ErrEmptySecret = errors.New("empty shared secret")
)

// itemCipher is the private implementation of [ItemCipher].
type itemCipher struct {
	secret []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewItemCipher constructs an [ItemCipher] around secret with the Argon2id
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (AES-256)
func NewItemCipher(secret []byte) (ItemCipher, error) {
	secret = bytes.TrimSpace(secret)
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	return &itemCipher{
		secret:       secret,
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		argonKeyLen:  32,
	}, nil
}

// LoadSecret reads the shared secret file. Surrounding whitespace is not
// part of the secret.
func LoadSecret(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error reading secret file: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySecret, path)
	}
	return data, nil
}

// Seal implements [ItemCipher].
func (c *itemCipher) Seal(item models.SecretItem) (models.EncryptedItem, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.EncryptedItem{}, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := c.newGCM(salt)
	if err != nil {
		return models.EncryptedItem{}, err
	}

	sealed := models.EncryptedItem{
		ID:      item.ID,
		Version: EnvelopeVersion,
		Cipher:  CipherName,
		Salt:    base64.StdEncoding.EncodeToString(salt),
		Fields:  make(map[string]models.EncryptedField, len(item.Fields)),
	}

	for name, raw := range item.Fields {
		if !json.Valid(raw) {
			return models.EncryptedItem{}, fmt.Errorf("field %q of %s is not valid JSON", name, item.ID)
		}

		nonce := make([]byte, gcm.NonceSize())
		if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
			return models.EncryptedItem{}, fmt.Errorf("generate nonce: %w", err)
		}

		ciphertext := gcm.Seal(nil, nonce, raw, fieldAAD(item.ID, name))
		sealed.Fields[name] = models.EncryptedField{
			IV:   base64.StdEncoding.EncodeToString(nonce),
			Data: base64.StdEncoding.EncodeToString(ciphertext),
		}
	}

	return sealed, nil
}

// Open implements [ItemCipher].
func (c *itemCipher) Open(item models.EncryptedItem) (models.SecretItem, error) {
	if item.Version != EnvelopeVersion || item.Cipher != CipherName {
		return models.SecretItem{}, fmt.Errorf("%w: unsupported envelope v%d/%s",
			ErrDecryption, item.Version, item.Cipher)
	}

	salt, err := base64.StdEncoding.DecodeString(item.Salt)
	if err != nil || len(salt) == 0 {
		return models.SecretItem{}, fmt.Errorf("%w: bad salt", ErrDecryption)
	}

	gcm, err := c.newGCM(salt)
	if err != nil {
		return models.SecretItem{}, err
	}

	opened := models.SecretItem{
		ID:     item.ID,
		Fields: make(map[string]json.RawMessage, len(item.Fields)),
	}

	for name, field := range item.Fields {
		nonce, err := base64.StdEncoding.DecodeString(field.IV)
		if err != nil || len(nonce) != gcm.NonceSize() {
			return models.SecretItem{}, fmt.Errorf("%w: bad nonce for field %q", ErrDecryption, name)
		}
		ciphertext, err := base64.StdEncoding.DecodeString(field.Data)
		if err != nil {
			return models.SecretItem{}, fmt.Errorf("%w: bad data for field %q", ErrDecryption, name)
		}

		plaintext, err := gcm.Open(nil, nonce, ciphertext, fieldAAD(item.ID, name))
		if err != nil {
			return models.SecretItem{}, fmt.Errorf("%w: field %q: %v", ErrDecryption, name, err)
		}
		if !json.Valid(plaintext) {
			return models.SecretItem{}, fmt.Errorf("%w: field %q is not JSON", ErrDecryption, name)
		}

		opened.Fields[name] = plaintext
	}

	return opened, nil
}

func (c *itemCipher) newGCM(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(c.secret, salt, c.argonTime, c.argonMemory, c.argonThreads, c.argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// fieldAAD binds a ciphertext to its item and field so values cannot be
// moved between fields or items.
func fieldAAD(id, name string) []byte {
	return []byte(id + "/" + name)
}
