// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-nexus-keeper/internal/adapter"
	"github.com/MKhiriev/go-nexus-keeper/internal/attributes"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/models"
)

type provisionService struct {
	secrets SecretService
	nexus   NexusService
	attrs   attributes.Nexus

	logger *logger.Logger
}

func NewProvisionService(secrets SecretService, nexus NexusService, attrs attributes.Nexus, log *logger.Logger) ProvisionService {
	return &provisionService{
		secrets: secrets,
		nexus:   nexus,
		attrs:   attrs,
		logger:  log,
	}
}

// Converge runs one sequential pass. The first error stops the pass; the
// report then holds what was done before it.
func (p *provisionService) Converge(ctx context.Context) (models.ConvergeReport, error) {
	report := models.ConvergeReport{
		CreatedRepositories:   []string{},
		PublishedRepositories: []string{},
		TrustedServers:        []string{},
	}

	rotated, err := p.rotateDefaultPassword(ctx)
	if err != nil {
		return report, err
	}
	report.PasswordRotated = rotated

	session, set, err := p.nexus.Client(ctx)
	if err != nil {
		return report, err
	}
	report.CredentialSet = set

	status, err := session.Status(ctx)
	if err != nil {
		return report, err
	}
	report.Status = status

	if report.CreatedRepositories, err = p.ensureHostedRepositories(ctx, session); err != nil {
		return report, err
	}

	if !status.IsProfessional() {
		p.logger.Info().Str("edition", status.EditionShort).Msg("not a professional edition, skipping license and smart proxy")
		return report, nil
	}

	if report.LicenseInstalled, err = p.installLicense(ctx, session); err != nil {
		return report, err
	}

	if !p.attrs.SmartProxy.Enabled() {
		return report, nil
	}

	if err = session.ConfigureSmartProxy(ctx, p.smartProxySettings()); err != nil {
		return report, err
	}
	report.SmartProxyConfigured = true

	for _, repo := range p.attrs.Repository.Publishers {
		if err = session.EnableArtifactPublish(ctx, repo); err != nil {
			return report, err
		}
		report.PublishedRepositories = append(report.PublishedRepositories, repo)
	}

	if report.TrustedServers, err = p.addTrustedServers(ctx, session); err != nil {
		return report, err
	}

	return report, nil
}

// rotateDefaultPassword changes the shipped admin password to the updated
// one while the shipped password still works. Both sets must name the same
// account; a password change cannot turn one user into another.
func (p *provisionService) rotateDefaultPassword(ctx context.Context) (bool, error) {
	creds, err := p.secrets.Credentials(ctx)
	if err != nil {
		return false, err
	}
	if creds.DefaultAdmin == creds.UpdatedAdmin {
		return false, nil
	}
	if creds.DefaultAdmin.Username != creds.UpdatedAdmin.Username {
		p.logger.Warn().
			Str("default_username", creds.DefaultAdmin.Username).
			Str("updated_username", creds.UpdatedAdmin.Username).
			Msg("credential sets name different users, skipping password rotation")
		return false, nil
	}

	stillDefault, err := p.nexus.CheckCredentials(ctx, creds.DefaultAdmin.Username, creds.DefaultAdmin.Password)
	if err != nil || !stillDefault {
		return false, err
	}

	session, set, err := p.nexus.Client(ctx)
	if err != nil {
		return false, err
	}
	if set != models.DefaultAdminSet {
		return false, nil
	}

	if err = session.ChangePassword(ctx, creds.DefaultAdmin.Username, creds.DefaultAdmin.Password, creds.UpdatedAdmin.Password); err != nil {
		return false, err
	}

	p.logger.Info().Str("username", creds.DefaultAdmin.Username).Msg("default admin password rotated")
	return true, nil
}

func (p *provisionService) ensureHostedRepositories(ctx context.Context, session adapter.NexusSession) ([]string, error) {
	created := []string{}
	for _, id := range p.attrs.Repository.CreateHosted {
		exists, err := session.RepositoryExists(ctx, id)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		if err = session.CreateHostedRepository(ctx, models.HostedRepository{ID: id, Name: id, Policy: "RELEASE"}); err != nil {
			return created, err
		}
		created = append(created, id)
	}
	return created, nil
}

// installLicense uploads the license unless Nexus already reports one. It
// reports whether an upload happened.
func (p *provisionService) installLicense(ctx context.Context, session adapter.NexusSession) (bool, error) {
	installed, err := session.InstalledLicense(ctx)
	if err != nil {
		return false, err
	}
	if installed.Installed() {
		p.logger.Debug().Str("license_type", installed.LicenseType).Msg("license already installed")
		return false, nil
	}

	license, err := p.secrets.License(ctx)
	if err != nil {
		return false, err
	}

	data, err := license.Bytes()
	if err != nil {
		return false, invalidContent(models.LicenseItem, err)
	}

	if err = session.InstallLicense(ctx, data); err != nil {
		return false, err
	}
	p.logger.Info().Msg("license installed")
	return true, nil
}

func (p *provisionService) smartProxySettings() models.SmartProxySettings {
	settings := models.SmartProxySettings{Enabled: true}
	if p.attrs.SmartProxy.Host != nil {
		settings.Host = *p.attrs.SmartProxy.Host
	}
	if p.attrs.SmartProxy.Port != nil {
		settings.Port = *p.attrs.SmartProxy.Port
	}
	return settings
}

// addTrustedServers registers the certificate of every trusted server that
// smart proxy does not trust yet and returns the servers it added.
func (p *provisionService) addTrustedServers(ctx context.Context, session adapter.NexusSession) ([]string, error) {
	trusted := p.attrs.SmartProxy.TrustedServers
	added := []string{}
	if len(trusted) == 0 {
		return added, nil
	}

	certs, err := p.secrets.Certificates(ctx, trusted)
	if err != nil {
		return added, err
	}

	existing, err := session.TrustedKeys(ctx)
	if err != nil {
		return added, err
	}
	known := make(map[string]struct{}, len(existing))
	for _, key := range existing {
		known[normalizeCertificate(key.Certificate)] = struct{}{}
	}

	for _, server := range trusted {
		cert := certs[server]
		if _, ok := known[normalizeCertificate(cert.Certificate)]; ok {
			continue
		}

		if err = session.AddTrustedKey(ctx, models.TrustedKey{Description: cert.Description, Certificate: cert.Certificate}); err != nil {
			return added, fmt.Errorf("trust %q: %w", server, err)
		}
		known[normalizeCertificate(cert.Certificate)] = struct{}{}
		added = append(added, server)
	}
	return added, nil
}

// normalizeCertificate drops line-ending and surrounding whitespace
// differences between a stored PEM and the one Nexus returns.
func normalizeCertificate(pem string) string {
	return strings.TrimSpace(strings.ReplaceAll(pem, "\r\n", "\n"))
}
