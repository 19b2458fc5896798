// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProfessionalEdition is the short edition name reported by Nexus Professional.
const ProfessionalEdition = "PRO"

// NexusStatus is the subset of /service/local/status the provisioner uses.
type NexusStatus struct {
	AppName      string `json:"appName" yaml:"app_name"`
	Version      string `json:"version" yaml:"version"`
	EditionLong  string `json:"editionLong" yaml:"edition_long"`
	EditionShort string `json:"editionShort" yaml:"edition_short"`
	State        string `json:"state" yaml:"state"`
}

// IsProfessional reports whether the instance runs Nexus Professional.
func (s NexusStatus) IsProfessional() bool {
	return s.EditionShort == ProfessionalEdition || s.EditionLong == "Professional"
}

// HostedRepository describes a hosted Maven 2 repository to create.
type HostedRepository struct {
	ID     string
	Name   string
	Policy string // RELEASE or SNAPSHOT
}

// SmartProxySettings are the smart-proxy connection settings of a Nexus
// Professional instance.
type SmartProxySettings struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host,omitempty"`
	Port    int    `json:"port,omitempty"`
}

// TrustedKey is a peer certificate registered as trusted for smart proxy.
type TrustedKey struct {
	// ID is assigned by Nexus and only set on keys read back from it.
	ID          string `json:"id,omitempty"`
	Description string `json:"description"`
	Certificate string `json:"certificate"`
}

// CredentialSetName names which credential set opened a session.
type CredentialSetName string

const (
	DefaultAdminSet CredentialSetName = DefaultAdminField
	UpdatedAdminSet CredentialSetName = UpdatedAdminField
)

// ConvergeReport summarises one convergence pass.
type ConvergeReport struct {
	CredentialSet         CredentialSetName `json:"credential_set" yaml:"credential_set"`
	PasswordRotated       bool              `json:"password_rotated" yaml:"password_rotated"`
	CreatedRepositories   []string          `json:"created_repositories" yaml:"created_repositories"`
	LicenseInstalled      bool              `json:"license_installed" yaml:"license_installed"`
	SmartProxyConfigured  bool              `json:"smart_proxy_configured" yaml:"smart_proxy_configured"`
	PublishedRepositories []string          `json:"published_repositories" yaml:"published_repositories"`
	TrustedServers        []string          `json:"trusted_servers" yaml:"trusted_servers"`
	Status                NexusStatus       `json:"status" yaml:"status"`
}
