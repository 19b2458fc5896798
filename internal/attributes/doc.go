// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package attributes holds the default Nexus provisioning settings and
// composes them with per-node overrides.
//
// Defaults fall into two groups. Literal defaults (version, ports, plugin
// lists) are fixed. Derived defaults are interpolated from other settings
// after overrides are applied, so overriding nexus.version also moves
// nexus.url and overriding nexus.name moves nexus.home and everything under
// it:
//
//	nexus.url            http://www.sonatype.org/downloads/nexus-{version}-bundle.tar.gz
//	nexus.home           /usr/local/{name}
//	nexus.conf_dir       {home}/conf
//	nexus.bin_dir        {home}/bin
//	nexus.work_dir       {path}/sonatype-work/nexus
//	nexus.ssl_certificate.key        node FQDN
//	nexus.nginx_proxy.server_name    node FQDN
//	nexus.cli.url        https://{server_name}:{listen_port}/nexus
//
// The table is built once per run and must not be modified afterwards.
package attributes
