// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field names of the credentials secret item.
const (
	DefaultAdminField = "default_admin"
	UpdatedAdminField = "updated_admin"
	UsernameField     = "username"
	PasswordField     = "password"
)

// CredentialSet is a username/password pair used to authenticate against the
// repository manager.
type CredentialSet struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"-"`
}

// Credentials is the validated content of the credentials secret item.
//
// DefaultAdmin holds the credentials Nexus ships with; UpdatedAdmin holds the
// credentials the operator rotates to. Both are always present.
type Credentials struct {
	DefaultAdmin CredentialSet `json:"default_admin"`
	UpdatedAdmin CredentialSet `json:"updated_admin"`
}

// ConnectionParams is the full parameter set needed to open a Nexus session.
type ConnectionParams struct {
	// URL is the Nexus base URL, e.g. https://repo.example.com:8443/nexus.
	URL string

	// Repository is the default repository the session operates on.
	Repository string

	Username string
	Password string
}

// WithCredentials returns a copy of p with the username and password taken
// from set.
func (p ConnectionParams) WithCredentials(set CredentialSet) ConnectionParams {
	p.Username = set.Username
	p.Password = set.Password
	return p
}
