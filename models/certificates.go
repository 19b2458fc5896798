// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field names of a server entry in the certificates secret item.
const (
	CertificateField = "certificate"
	DescriptionField = "description"
)

// ServerCertificate is the certificate a trusted smart-proxy peer presents,
// together with a human-readable description.
type ServerCertificate struct {
	Certificate string `json:"certificate"`
	Description string `json:"description"`
}

// Certificates is the validated content of the certificates secret item,
// keyed by trusted server identifier.
type Certificates map[string]ServerCertificate

// Field names of the ssl_certificate secret item.
const (
	SSLCertificateCrtField = "crt"
	SSLCertificateKeyField = "key"
)

// SSLCertificate is the decoded TLS certificate and private key served by the
// reverse proxy in front of Nexus.
type SSLCertificate struct {
	Crt []byte
	Key []byte
}
