// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package attributes

// Attributes is the immutable per-run table of Nexus provisioning settings.
// Field tags mirror the dotted setting names ("nexus.cli.url" and so on)
// so the same struct decodes node override files and backs [Attributes.Lookup].
type Attributes struct {
	Nexus Nexus `json:"nexus" yaml:"nexus"`
	Nginx Nginx `json:"nginx" yaml:"nginx"`
}

// Nexus groups the settings under the "nexus" prefix.
type Nexus struct {
	Version  string `json:"version" yaml:"version,omitempty"`
	User     string `json:"user" yaml:"user,omitempty"`
	Group    string `json:"group" yaml:"group,omitempty"`
	URL      string `json:"url" yaml:"url,omitempty"`
	Checksum string `json:"checksum" yaml:"checksum,omitempty"`

	Port string `json:"port" yaml:"port,omitempty"`
	Host string `json:"host" yaml:"host,omitempty"`
	Path string `json:"path" yaml:"path,omitempty"`

	Name    string `json:"name" yaml:"name,omitempty"`
	Home    string `json:"home" yaml:"home,omitempty"`
	ConfDir string `json:"conf_dir" yaml:"conf_dir,omitempty"`
	BinDir  string `json:"bin_dir" yaml:"bin_dir,omitempty"`
	WorkDir string `json:"work_dir" yaml:"work_dir,omitempty"`

	SSLCertificate SSLCertificate `json:"ssl_certificate" yaml:"ssl_certificate,omitempty"`
	NginxProxy     NginxProxy     `json:"nginx_proxy" yaml:"nginx_proxy,omitempty"`
	Plugins        []string       `json:"plugins" yaml:"plugins,omitempty"`
	Nginx          NexusNginx     `json:"nginx" yaml:"nginx,omitempty"`
	CLI            CLI            `json:"cli" yaml:"cli,omitempty"`
	Repository     Repository     `json:"repository" yaml:"repository,omitempty"`
	SmartProxy     SmartProxy     `json:"smart_proxy" yaml:"smart_proxy,omitempty"`
}

// SSLCertificate names the certificate the reverse proxy serves.
type SSLCertificate struct {
	Key string `json:"key" yaml:"key,omitempty"`
}

// NginxProxy describes the TLS reverse proxy in front of Nexus.
type NginxProxy struct {
	ListenPort int    `json:"listen_port" yaml:"listen_port,omitempty"`
	ServerName string `json:"server_name" yaml:"server_name,omitempty"`
}

// NexusNginx holds the proxy options specific to the Nexus vhost.
type NexusNginx struct {
	Options NginxOptions `json:"options" yaml:"options,omitempty"`
}

type NginxOptions struct {
	ClientMaxBodySize    string `json:"client_max_body_size" yaml:"client_max_body_size,omitempty"`
	ClientBodyBufferSize string `json:"client_body_buffer_size" yaml:"client_body_buffer_size,omitempty"`
}

// CLI holds the endpoint the REST client talks to.
type CLI struct {
	URL        string   `json:"url" yaml:"url,omitempty"`
	Repository string   `json:"repository" yaml:"repository,omitempty"`
	Packages   []string `json:"packages" yaml:"packages,omitempty"`
}

type Repository struct {
	CreateHosted []string `json:"create_hosted" yaml:"create_hosted,omitempty"`
	Publishers   []string `json:"publishers" yaml:"publishers,omitempty"`
}

// SmartProxy configures the Professional smart proxy feature. Pointer
// fields distinguish "unset" from an explicit false or zero in overrides.
type SmartProxy struct {
	Enable         *bool    `json:"enable" yaml:"enable,omitempty"`
	Host           *string  `json:"host" yaml:"host,omitempty"`
	Port           *int     `json:"port" yaml:"port,omitempty"`
	TrustedServers []string `json:"trusted_servers" yaml:"trusted_servers,omitempty"`
}

// Enabled reports whether smart proxy should be configured.
func (s SmartProxy) Enabled() bool {
	return s.Enable != nil && *s.Enable
}

// Nginx groups the settings under the top-level "nginx" prefix.
type Nginx struct {
	ConfigureFlags string `json:"configure_flags" yaml:"configure_flags,omitempty"`
}

// Node carries the host facts the derived defaults depend on.
type Node struct {
	FQDN string
}
