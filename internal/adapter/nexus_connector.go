// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-nexus-keeper/internal/config"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/internal/utils"
	"github.com/MKhiriev/go-nexus-keeper/models"
)

const (
	loginPath  = "/service/local/authentication/login"
	statusPath = "/service/local/status"
)

const defaultRequestTimeout = 30 * time.Second

type httpNexusConnector struct {
	requestTimeout     time.Duration
	insecureSkipVerify bool

	logger *logger.Logger
}

// NewHTTPNexusConnector constructs a [NexusConnector] speaking the Nexus 2
// REST API over resty.
func NewHTTPNexusConnector(cfg config.Nexus, log *logger.Logger) NexusConnector {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &httpNexusConnector{
		requestTimeout:     timeout,
		insecureSkipVerify: cfg.InsecureSkipVerify,
		logger:             log,
	}
}

// Connect implements [NexusConnector]. It logs in with basic auth and reads
// the instance status; a session is returned only when both succeed.
func (c *httpNexusConnector) Connect(ctx context.Context, params models.ConnectionParams) (NexusSession, error) {
	baseURL, err := normalizeBaseURL(params.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if params.Username == "" {
		return nil, fmt.Errorf("connect to %s: %w: empty username", baseURL, ErrUnauthorized)
	}

	client := utils.NewHTTPClient(c.logger)
	client.
		SetBaseURL(baseURL).
		SetTimeout(c.requestTimeout).
		SetBasicAuth(params.Username, params.Password).
		SetHeader("Accept", "application/json")
	if c.insecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) // self-signed lab instances
	}

	session := &httpNexusSession{
		client:     client,
		baseURL:    baseURL,
		username:   params.Username,
		repository: params.Repository,
		logger:     c.logger,
	}

	resp, err := client.R().SetContext(ctx).Get(loginPath)
	if err != nil {
		c.logger.Err(err).Str("func", "httpNexusConnector.Connect").Str("url", baseURL).Msg("login request failed")
		return nil, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.logger.Debug().Str("func", "httpNexusConnector.Connect").
			Str("username", params.Username).
			Int("status", resp.StatusCode()).
			Msg("login rejected")
		return nil, fmt.Errorf("login as %q: %w", params.Username, err)
	}

	if _, err = session.Status(ctx); err != nil {
		return nil, err
	}

	return session, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// envelope is the {"data": ...} wrapper every Nexus 2 JSON resource uses.
type envelope[T any] struct {
	Data T `json:"data"`
}

func decodeEnvelope[T any](body []byte) (T, error) {
	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return env.Data, err
	}
	return env.Data, nil
}
