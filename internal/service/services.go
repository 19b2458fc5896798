// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-nexus-keeper/internal/adapter"
	"github.com/MKhiriev/go-nexus-keeper/internal/attributes"
	"github.com/MKhiriev/go-nexus-keeper/internal/crypto"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/internal/store"
)

// Services is the provisioning side used by nexusctl.
type Services struct {
	SecretService    SecretService
	NexusService     NexusService
	ProvisionService ProvisionService
}

func NewServices(secretStore store.SecretStore, cipher crypto.ItemCipher, connector adapter.NexusConnector,
	attrs *attributes.Attributes, bag string, log *logger.Logger) *Services {
	secrets := NewSecretService(secretStore, cipher, bag, log)
	nexus := NewNexusService(secrets, connector, attrs.Nexus.CLI, log)

	return &Services{
		SecretService:    secrets,
		NexusService:     nexus,
		ProvisionService: NewProvisionService(secrets, nexus, attrs.Nexus, log),
	}
}

// ServerServices is the data-bag server side.
type ServerServices struct {
	DataBagService DataBagService
	AppInfoService AppInfoService
}

func NewServerServices(secretStore store.SecretStore, appInfo AppInfoService, log *logger.Logger) *ServerServices {
	return &ServerServices{
		DataBagService: NewDataBagService(secretStore, log),
		AppInfoService: appInfo,
	}
}
