// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nexus-keeper/internal/adapter"
	"github.com/MKhiriev/go-nexus-keeper/internal/attributes"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/models"
)

type nexusService struct {
	secrets   SecretService
	connector adapter.NexusConnector
	cli       attributes.CLI

	logger *logger.Logger
}

// NewNexusService builds a [NexusService] that connects to cli.URL with
// cli.Repository as the default repository.
func NewNexusService(secrets SecretService, connector adapter.NexusConnector, cli attributes.CLI, log *logger.Logger) NexusService {
	return &nexusService{
		secrets:   secrets,
		connector: connector,
		cli:       cli,
		logger:    log,
	}
}

func (n *nexusService) Client(ctx context.Context) (adapter.NexusSession, models.CredentialSetName, error) {
	creds, err := n.secrets.Credentials(ctx)
	if err != nil {
		return nil, "", err
	}

	params := n.connectionParams()

	session, err := n.connector.Connect(ctx, params.WithCredentials(creds.DefaultAdmin))
	if err == nil {
		return session, models.DefaultAdminSet, nil
	}
	if !adapter.IsAuthorizationError(err) {
		n.logger.Err(err).Str("func", "nexusService.Client").Str("url", params.URL).Msg("error connecting to nexus")
		return nil, "", fmt.Errorf("connect with %s: %w", models.DefaultAdminSet, err)
	}

	n.logger.Info().Str("func", "nexusService.Client").
		Str("username", creds.DefaultAdmin.Username).
		Msgf("%s rejected, retrying with %s", models.DefaultAdminSet, models.UpdatedAdminSet)

	session, err = n.connector.Connect(ctx, params.WithCredentials(creds.UpdatedAdmin))
	if err != nil {
		n.logger.Err(err).Str("func", "nexusService.Client").Str("url", params.URL).Msg("error connecting to nexus")
		return nil, "", fmt.Errorf("connect with %s: %w", models.UpdatedAdminSet, err)
	}

	return session, models.UpdatedAdminSet, nil
}

func (n *nexusService) CheckCredentials(ctx context.Context, username, password string) (bool, error) {
	params := n.connectionParams()
	params.Username = username
	params.Password = password

	_, err := n.connector.Connect(ctx, params)
	switch {
	case err == nil:
		return true, nil
	case adapter.IsAuthorizationError(err):
		return false, nil
	default:
		return false, fmt.Errorf("check credentials of %q: %w", username, err)
	}
}

func (n *nexusService) connectionParams() models.ConnectionParams {
	return models.ConnectionParams{
		URL:        n.cli.URL,
		Repository: n.cli.Repository,
	}
}
