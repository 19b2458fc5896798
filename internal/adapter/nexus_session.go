// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/internal/utils"
	"github.com/MKhiriev/go-nexus-keeper/models"
)

const (
	repositoriesPath      = "/service/local/repositories"
	repositoryPath        = "/service/local/repositories/{id}"
	changePasswordPath    = "/service/local/users_changepw"
	licensePath           = "/service/local/licensing"
	licenseUploadPath     = "/service/local/licensing/upload"
	smartProxySettingPath = "/service/local/smartproxy/settings"
	trustedKeysPath       = "/service/local/smartproxy/trusted-keys"
	publishPath           = "/service/local/smartproxy/pub-sub/{id}"
)

const (
	maven2Provider     = "maven2"
	repositoryProvider = "org.sonatype.nexus.proxy.repository.Repository"
	hostedRepoType     = "hosted"
	allowWritePolicy   = "ALLOW_WRITE_ONCE"
	releasePolicy      = "RELEASE"
)

type httpNexusSession struct {
	client *utils.HTTPClient

	baseURL    string
	username   string
	repository string

	logger *logger.Logger
}

type createRepositoryData struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	ContentResourceURI string `json:"contentResourceURI"`
	Provider           string `json:"provider"`
	ProviderRole       string `json:"providerRole"`
	Format             string `json:"format"`
	RepoType           string `json:"repoType"`
	RepoPolicy         string `json:"repoPolicy"`
	WritePolicy        string `json:"writePolicy"`
	Exposed            bool   `json:"exposed"`
	Browseable         bool   `json:"browseable"`
	Indexable          bool   `json:"indexable"`
}

type publishData struct {
	RepositoryID string `json:"repositoryId"`
	Publish      bool   `json:"publish"`
}

type changePasswordData struct {
	UserID      string `json:"userId"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Username implements [NexusSession].
func (s *httpNexusSession) Username() string {
	return s.username
}

// Repository implements [NexusSession].
func (s *httpNexusSession) Repository() string {
	return s.repository
}

// Status implements [NexusSession]. GET /service/local/status.
func (s *httpNexusSession) Status(ctx context.Context) (models.NexusStatus, error) {
	resp, err := s.client.R().SetContext(ctx).Get(statusPath)
	if err != nil {
		return models.NexusStatus{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NexusStatus{}, fmt.Errorf("status: %w", err)
	}

	status, err := decodeEnvelope[models.NexusStatus](resp.Body())
	if err != nil {
		return models.NexusStatus{}, fmt.Errorf("decode status response: %w", err)
	}
	return status, nil
}

// RepositoryExists implements [NexusSession]. A 404 means the repository is
// absent; any other non-2xx status is an error.
func (s *httpNexusSession) RepositoryExists(ctx context.Context, id string) (bool, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get(repositoryPath)
	if err != nil {
		return false, fmt.Errorf("repository exists request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return false, fmt.Errorf("repository %q: %w", id, err)
	}
	return true, nil
}

// CreateHostedRepository implements [NexusSession]. It creates a hosted
// maven2 repository; an empty policy defaults to RELEASE.
func (s *httpNexusSession) CreateHostedRepository(ctx context.Context, repo models.HostedRepository) error {
	if repo.ID == "" {
		return fmt.Errorf("%w: empty repository id", ErrBadRequest)
	}

	data := createRepositoryData{
		ID:                 repo.ID,
		Name:               repo.Name,
		ContentResourceURI: s.baseURL + "/content/repositories/" + repo.ID,
		Provider:           maven2Provider,
		ProviderRole:       repositoryProvider,
		Format:             maven2Provider,
		RepoType:           hostedRepoType,
		RepoPolicy:         repo.Policy,
		WritePolicy:        allowWritePolicy,
		Exposed:            true,
		Browseable:         true,
		Indexable:          true,
	}
	if data.Name == "" {
		data.Name = repo.ID
	}
	if data.RepoPolicy == "" {
		data.RepoPolicy = releasePolicy
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(envelope[createRepositoryData]{Data: data}).
		Post(repositoriesPath)
	if err != nil {
		return fmt.Errorf("create repository request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("create repository %q: %w", repo.ID, err)
	}

	s.logger.Info().Str("func", "httpNexusSession.CreateHostedRepository").Str("repository", repo.ID).Msg("repository created")
	return nil
}

// ChangePassword implements [NexusSession]. POST /service/local/users_changepw.
func (s *httpNexusSession) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(envelope[changePasswordData]{Data: changePasswordData{
			UserID:      username,
			OldPassword: oldPassword,
			NewPassword: newPassword,
		}}).
		Post(changePasswordPath)
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("change password of %q: %w", username, err)
	}
	return nil
}

// InstalledLicense implements [NexusSession]. A 404 means no license is
// installed.
func (s *httpNexusSession) InstalledLicense(ctx context.Context) (models.LicenseInfo, error) {
	resp, err := s.client.R().SetContext(ctx).Get(licensePath)
	if err != nil {
		return models.LicenseInfo{}, fmt.Errorf("license request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.LicenseInfo{}, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LicenseInfo{}, fmt.Errorf("read license: %w", err)
	}

	info, err := decodeEnvelope[models.LicenseInfo](resp.Body())
	if err != nil {
		return models.LicenseInfo{}, fmt.Errorf("decode license response: %w", err)
	}
	return info, nil
}

// InstallLicense implements [NexusSession]. The license is uploaded as the
// raw request body.
func (s *httpNexusSession) InstallLicense(ctx context.Context, license []byte) error {
	if len(license) == 0 {
		return errors.New("install license: empty license file")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(license).
		Post(licenseUploadPath)
	if err != nil {
		return fmt.Errorf("install license request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("install license: %w", err)
	}
	return nil
}

// ConfigureSmartProxy implements [NexusSession].
func (s *httpNexusSession) ConfigureSmartProxy(ctx context.Context, settings models.SmartProxySettings) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(envelope[models.SmartProxySettings]{Data: settings}).
		Put(smartProxySettingPath)
	if err != nil {
		return fmt.Errorf("smart proxy request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("configure smart proxy: %w", err)
	}
	return nil
}

// EnableArtifactPublish implements [NexusSession].
func (s *httpNexusSession) EnableArtifactPublish(ctx context.Context, repositoryID string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", repositoryID).
		SetBody(envelope[publishData]{Data: publishData{RepositoryID: repositoryID, Publish: true}}).
		Put(publishPath)
	if err != nil {
		return fmt.Errorf("artifact publish request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("enable artifact publish for %q: %w", repositoryID, err)
	}
	return nil
}

// TrustedKeys implements [NexusSession]. A 404 is an empty list.
func (s *httpNexusSession) TrustedKeys(ctx context.Context) ([]models.TrustedKey, error) {
	resp, err := s.client.R().SetContext(ctx).Get(trustedKeysPath)
	if err != nil {
		return nil, fmt.Errorf("trusted keys request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return []models.TrustedKey{}, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list trusted keys: %w", err)
	}

	keys, err := decodeEnvelope[[]models.TrustedKey](resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode trusted keys response: %w", err)
	}
	return keys, nil
}

// AddTrustedKey implements [NexusSession].
func (s *httpNexusSession) AddTrustedKey(ctx context.Context, key models.TrustedKey) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(envelope[[]models.TrustedKey]{Data: []models.TrustedKey{key}}).
		Post(trustedKeysPath)
	if err != nil {
		return fmt.Errorf("trusted key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("add trusted key %q: %w", key.Description, err)
	}
	return nil
}
