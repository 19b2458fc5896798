// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package attributes

import (
	"fmt"
	"reflect"
	"strconv"

	"dario.cat/mergo"
)

const (
	DefaultVersion  = "2.1.2"
	DefaultChecksum = "32fcf0fcfb45e4ee8bc53149131d34257da62758515e7b9d24c92d6ad083dbc9"
	DefaultPort     = "8081"
	DefaultHost     = "0.0.0.0"
	DefaultPath     = "/nexus"
	DefaultName     = "nexus"

	DefaultProxyListenPort = 8443
	DefaultCLIRepository   = "releases"

	downloadURLFormat = "http://www.sonatype.org/downloads/nexus-%s-bundle.tar.gz"
)

// literalDefaults returns every default that does not depend on another
// setting. Derived fields stay empty until [Compose] fills them.
func literalDefaults() *Attributes {
	enable := true
	return &Attributes{
		Nexus: Nexus{
			Version:  DefaultVersion,
			User:     "nexus",
			Group:    "nexus",
			Checksum: DefaultChecksum,
			Port:     DefaultPort,
			Host:     DefaultHost,
			Path:     DefaultPath,
			Name:     DefaultName,
			NginxProxy: NginxProxy{
				ListenPort: DefaultProxyListenPort,
			},
			Plugins: []string{"nexus-custom-metadata-plugin"},
			Nginx: NexusNginx{Options: NginxOptions{
				ClientMaxBodySize:    "200M",
				ClientBodyBufferSize: "512k",
			}},
			CLI: CLI{
				Repository: DefaultCLIRepository,
				Packages:   []string{"libxml2-devel", "libxslt-devel"},
			},
			Repository: Repository{
				CreateHosted: []string{"Artifacts"},
				Publishers:   []string{"Artifacts"},
			},
			SmartProxy: SmartProxy{
				Enable:         &enable,
				TrustedServers: []string{},
			},
		},
		Nginx: Nginx{ConfigureFlags: "with-http_ssl_module"},
	}
}

// Compose builds the attribute table for node. Overrides, when non-nil, are
// merged over the literal defaults; derived settings are then computed from
// the merged values unless the override already set them.
func Compose(node Node, overrides *Attributes) (*Attributes, error) {
	attrs := literalDefaults()

	if overrides != nil {
		if err := mergo.Merge(attrs, overrides,
			mergo.WithOverride, mergo.WithTransformers(pointerOverride{})); err != nil {
			return nil, fmt.Errorf("error merging attribute overrides: %w", err)
		}
	}

	attrs.derive(node)
	return attrs, nil
}

// Defaults is Compose without overrides.
func Defaults(node Node) *Attributes {
	attrs := literalDefaults()
	attrs.derive(node)
	return attrs
}

func (a *Attributes) derive(node Node) {
	n := &a.Nexus

	setIfEmpty(&n.URL, fmt.Sprintf(downloadURLFormat, n.Version))
	setIfEmpty(&n.Home, "/usr/local/"+n.Name)
	setIfEmpty(&n.ConfDir, n.Home+"/conf")
	setIfEmpty(&n.BinDir, n.Home+"/bin")
	setIfEmpty(&n.WorkDir, n.Path+"/sonatype-work/nexus")

	setIfEmpty(&n.SSLCertificate.Key, node.FQDN)
	setIfEmpty(&n.NginxProxy.ServerName, node.FQDN)

	setIfEmpty(&n.CLI.URL, "https://"+n.NginxProxy.ServerName+":"+
		strconv.Itoa(n.NginxProxy.ListenPort)+"/nexus")
}

// pointerOverride replaces a set pointer field wholesale. Without it mergo
// merges into the pointee and skips explicit false or zero values.
type pointerOverride struct{}

func (pointerOverride) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ.Kind() != reflect.Pointer {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if !src.IsNil() && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}

func setIfEmpty(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
