// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/internal/utils"
	"github.com/MKhiriev/go-nexus-keeper/models"
	"github.com/go-resty/resty/v2"
)

// httpStore reads items from a remote databag-server over REST.
type httpStore struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPStore constructs a [SecretStore] talking to the databag-server at
// baseURL. token, when set, is sent as a bearer token on every request.
func NewHTTPStore(baseURL, token string, timeout time.Duration, log *logger.Logger) (SecretStore, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid data bag server url %q", baseURL)
	}

	client := utils.NewHTTPClient(log)
	client.
		SetBaseURL(strings.TrimRight(u.String(), "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if token != "" {
		client.SetAuthToken(token)
	}

	return &httpStore{client: client, logger: log}, nil
}

// GetItem implements [SecretStore].
func (h *httpStore) GetItem(ctx context.Context, bag, item string) (models.EncryptedItem, error) {
	if err := validateNames(bag, item); err != nil {
		return models.EncryptedItem{}, err
	}

	var sealed models.EncryptedItem
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"bag": bag, "item": item}).
		SetResult(&sealed).
		Get("/api/data/{bag}/{item}")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpStore.GetItem").Msg("request failed")
		return models.EncryptedItem{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if err = mapStoreResponse(resp, bag, item); err != nil {
		return models.EncryptedItem{}, err
	}

	return sealed, nil
}

// PutItem implements [SecretStore].
func (h *httpStore) PutItem(ctx context.Context, bag string, item models.EncryptedItem) error {
	if err := validateNames(bag, item.ID); err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"bag": bag, "item": item.ID}).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Put("/api/data/{bag}/{item}")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpStore.PutItem").Msg("request failed")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return mapStoreResponse(resp, bag, item.ID)
}

// DeleteItem implements [SecretStore].
func (h *httpStore) DeleteItem(ctx context.Context, bag, item string) error {
	if err := validateNames(bag, item); err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"bag": bag, "item": item}).
		Delete("/api/data/{bag}/{item}")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return mapStoreResponse(resp, bag, item)
}

// ListItems implements [SecretStore].
func (h *httpStore) ListItems(ctx context.Context, bag string) ([]string, error) {
	if err := validateNames(bag); err != nil {
		return nil, err
	}

	var items []string
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("bag", bag).
		SetResult(&items).
		Get("/api/data/{bag}")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if err = mapStoreResponse(resp, bag, ""); err != nil {
		return nil, err
	}
	if items == nil {
		items = []string{}
	}

	return items, nil
}

// Close implements [SecretStore].
func (h *httpStore) Close() error {
	return nil
}

// mapStoreResponse converts a databag-server status into the store
// sentinels: 404 means the item is absent, any other non-2xx means the store
// could not serve the request.
func mapStoreResponse(resp *resty.Response, bag, item string) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	if code == http.StatusNotFound {
		return fmt.Errorf("%w: %s/%s", ErrItemNotFound, bag, item)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("%w: http %d: %s", ErrStoreUnavailable, code, body)
}
