// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-nexus-keeper/models"
)

// Required fields per secret item, in the order they are checked.
var (
	credentialsFields    = []string{models.DefaultAdminField, models.UpdatedAdminField}
	credentialSetFields  = []string{models.UsernameField, models.PasswordField}
	licenseFields        = []string{models.LicenseFileField}
	serverCertFields     = []string{models.CertificateField, models.DescriptionField}
	sslCertificateFields = []string{models.SSLCertificateCrtField, models.SSLCertificateKeyField}
)

// SecretItemValidator checks that a decrypted secret item carries every
// field its consumers read. It is pure and holds no state.
type SecretItemValidator struct{}

func NewSecretItemValidator() Validator {
	return &SecretItemValidator{}
}

// Validate implements [Validator]. obj must be a [models.SecretItem]; its ID
// selects the rule set. For the certificates item, fields is the list of
// trusted servers that must each have an entry; other items ignore fields.
func (v *SecretItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SecretItem:
		return v.validateItem(value, fields)
	case *models.SecretItem:
		return v.validateItem(*value, fields)
	default:
		return ErrUnsupportedType
	}
}

func (v *SecretItemValidator) validateItem(item models.SecretItem, trusted []string) error {
	switch item.ID {
	case models.CredentialsItem:
		return ValidateCredentials(item)
	case models.LicenseItem:
		return ValidateLicense(item)
	case models.CertificatesItem:
		return ValidateCertificates(item, trusted)
	case models.SSLCertificateItem:
		return ValidateSSLCertificate(item)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownItem, item.ID)
	}
}

// ValidateCredentials requires default_admin then updated_admin, each with a
// username and a password.
func ValidateCredentials(item models.SecretItem) error {
	if err := requireFields(item.ID, item.Fields, credentialsFields); err != nil {
		return err
	}

	for _, set := range credentialsFields {
		raw, _ := item.Field(set)
		nested, ok := decodeObject(raw)
		if !ok {
			return missing(item.ID, set, credentialSetFields[0])
		}
		for _, field := range credentialSetFields {
			if !present(nested, field) {
				return missing(item.ID, set, field)
			}
		}
	}

	return nil
}

// ValidateLicense requires the file field.
func ValidateLicense(item models.SecretItem) error {
	return requireFields(item.ID, item.Fields, licenseFields)
}

// ValidateCertificates checks, for each trusted server in order, that the
// server entry exists and carries a certificate and a description. The first
// gap found is reported.
func ValidateCertificates(item models.SecretItem, trusted []string) error {
	for _, server := range trusted {
		raw, ok := item.Field(server)
		if !ok {
			return missing(item.ID, server)
		}

		nested, ok := decodeObject(raw)
		if !ok {
			return missing(item.ID, server, serverCertFields[0])
		}
		for _, field := range serverCertFields {
			if !present(nested, field) {
				return missing(item.ID, server, field)
			}
		}
	}

	return nil
}

// ValidateSSLCertificate requires the crt and key fields.
func ValidateSSLCertificate(item models.SecretItem) error {
	return requireFields(item.ID, item.Fields, sslCertificateFields)
}

func requireFields(item string, fields map[string]json.RawMessage, required []string) error {
	for _, field := range required {
		if !present(fields, field) {
			return missing(item, field)
		}
	}
	return nil
}

// present treats a JSON null or false like an absent key.
func present(fields map[string]json.RawMessage, name string) bool {
	raw, ok := fields[name]
	if !ok {
		return false
	}
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false":
		return false
	}
	return true
}

func decodeObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	var nested map[string]json.RawMessage
	if err := json.Unmarshal(raw, &nested); err != nil || nested == nil {
		return nil, false
	}
	return nested, true
}
