// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the nexusctl application runtime.
//
// It wires the attribute table, the secret store, the item cipher, the Nexus
// connector and the services on top of them, and runs convergence passes
// through the workers package.
package client
