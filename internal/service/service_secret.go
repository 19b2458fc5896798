// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nexus-keeper/internal/crypto"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/internal/store"
	"github.com/MKhiriev/go-nexus-keeper/internal/validators"
	"github.com/MKhiriev/go-nexus-keeper/models"
)

type secretService struct {
	secretStore store.SecretStore
	cipher      crypto.ItemCipher
	validator   validators.Validator
	bag         string

	logger *logger.Logger
}

// NewSecretService builds a [SecretService] over bag in secretStore. An empty
// bag selects [models.SecretBag].
func NewSecretService(secretStore store.SecretStore, cipher crypto.ItemCipher, bag string, log *logger.Logger) SecretService {
	if bag == "" {
		bag = models.SecretBag
	}

	return &secretService{
		secretStore: secretStore,
		cipher:      cipher,
		validator:   validators.NewSecretItemValidator(),
		bag:         bag,
		logger:      log,
	}
}

func (s *secretService) LoadItem(ctx context.Context, item string) (models.SecretItem, error) {
	encrypted, err := s.secretStore.GetItem(ctx, s.bag, item)
	if err != nil {
		s.logger.Err(err).Str("func", "secretService.LoadItem").Str("bag", s.bag).Str("item", item).Msg("error fetching secret item")
		return models.SecretItem{}, &SecretNotFoundError{Item: item, Err: err}
	}
	if encrypted.ID != "" && encrypted.ID != item {
		return models.SecretItem{}, &SecretNotFoundError{Item: item, Err: fmt.Errorf("%w: stored id %q", ErrItemMismatch, encrypted.ID)}
	}
	encrypted.ID = item

	secret, err := s.cipher.Open(encrypted)
	if err != nil {
		s.logger.Err(err).Str("func", "secretService.LoadItem").Str("bag", s.bag).Str("item", item).Msg("error decrypting secret item")
		return models.SecretItem{}, &SecretNotFoundError{Item: item, Err: err}
	}

	return secret, nil
}

func (s *secretService) Credentials(ctx context.Context) (models.Credentials, error) {
	var creds models.Credentials
	if err := s.loadValidated(ctx, models.CredentialsItem, &creds); err != nil {
		return models.Credentials{}, err
	}
	return creds, nil
}

func (s *secretService) License(ctx context.Context) (models.License, error) {
	var license models.License
	if err := s.loadValidated(ctx, models.LicenseItem, &license); err != nil {
		return models.License{}, err
	}
	return license, nil
}

func (s *secretService) Certificates(ctx context.Context, trusted []string) (models.Certificates, error) {
	item, err := s.LoadItem(ctx, models.CertificatesItem)
	if err != nil {
		return nil, err
	}
	if err = s.validator.Validate(ctx, item, trusted...); err != nil {
		return nil, err
	}

	certs := make(models.Certificates, len(trusted))
	for _, server := range trusted {
		raw, _ := item.Field(server)

		var cert models.ServerCertificate
		if err = json.Unmarshal(raw, &cert); err != nil {
			return nil, invalidContent(models.CertificatesItem, err)
		}
		certs[server] = cert
	}

	return certs, nil
}

func (s *secretService) SSLCertificate(ctx context.Context) (models.SSLCertificate, error) {
	var encoded struct {
		Crt string `json:"crt"`
		Key string `json:"key"`
	}
	if err := s.loadValidated(ctx, models.SSLCertificateItem, &encoded); err != nil {
		return models.SSLCertificate{}, err
	}

	crt, err := base64.StdEncoding.DecodeString(encoded.Crt)
	if err != nil {
		return models.SSLCertificate{}, invalidContent(models.SSLCertificateItem, fmt.Errorf("decode crt: %w", err))
	}
	key, err := base64.StdEncoding.DecodeString(encoded.Key)
	if err != nil {
		return models.SSLCertificate{}, invalidContent(models.SSLCertificateItem, fmt.Errorf("decode key: %w", err))
	}

	return models.SSLCertificate{Crt: crt, Key: key}, nil
}

func (s *secretService) StoreItem(ctx context.Context, item models.SecretItem) error {
	// certificates are checked against the trusted list only when read
	err := s.validator.Validate(ctx, item)
	if err != nil && !errors.Is(err, validators.ErrUnknownItem) {
		return err
	}

	encrypted, err := s.cipher.Seal(item)
	if err != nil {
		return fmt.Errorf("seal %q: %w", item.ID, err)
	}

	if err = s.secretStore.PutItem(ctx, s.bag, encrypted); err != nil {
		s.logger.Err(err).Str("func", "secretService.StoreItem").Str("bag", s.bag).Str("item", item.ID).Msg("error storing secret item")
		return fmt.Errorf("store %q: %w", item.ID, err)
	}

	s.logger.Info().Str("bag", s.bag).Str("item", item.ID).Msg("secret item stored")
	return nil
}

func (s *secretService) DeleteItem(ctx context.Context, item string) error {
	return s.secretStore.DeleteItem(ctx, s.bag, item)
}

func (s *secretService) ListItems(ctx context.Context) ([]string, error) {
	return s.secretStore.ListItems(ctx, s.bag)
}

// loadValidated loads name, validates it and decodes its fields into out.
func (s *secretService) loadValidated(ctx context.Context, name string, out any) error {
	item, err := s.LoadItem(ctx, name)
	if err != nil {
		return err
	}
	if err = s.validator.Validate(ctx, item); err != nil {
		return err
	}

	data, err := json.Marshal(item.Fields)
	if err != nil {
		return invalidContent(name, err)
	}
	if err = json.Unmarshal(data, out); err != nil {
		return invalidContent(name, err)
	}
	return nil
}

func invalidContent(item string, err error) error {
	return fmt.Errorf("%w: item %q: %w", validators.ErrInvalidSecretContent, item, err)
}
