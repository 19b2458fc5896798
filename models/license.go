// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"fmt"
)

// LicenseFileField is the only required field of the license secret item.
const LicenseFileField = "file"

// License is the validated content of the license secret item.
type License struct {
	// File is the base64-encoded Nexus Professional license file.
	File string `json:"file"`
}

// Bytes returns the decoded license file.
func (l License) Bytes() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(l.File)
	if err != nil {
		return nil, fmt.Errorf("decode license file: %w", err)
	}
	return data, nil
}

// LicenseInfo is the subset of /service/local/licensing the provisioner reads.
type LicenseInfo struct {
	LicenseType    string `json:"licenseType"`
	Fingerprint    string `json:"fingerprint"`
	ExpirationDate string `json:"expirationDate"`
}

// Installed reports whether Nexus described an installed license.
func (l LicenseInfo) Installed() bool {
	return l.Fingerprint != "" || l.LicenseType != ""
}
