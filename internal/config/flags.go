package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Flag names shared by the binaries.
const (
	FlagConfig           = "config"
	FlagLogLevel         = "log-level"
	FlagFQDN             = "fqdn"
	FlagAttributes       = "attributes"
	FlagSecretsBackend   = "secrets-backend"
	FlagSecretsPath      = "secrets-path"
	FlagSecretsDSN       = "secrets-dsn"
	FlagSecretsURL       = "secrets-url"
	FlagSecretsToken     = "secrets-token"
	FlagSecretFile       = "secret-file"
	FlagNexusTimeout     = "nexus-timeout"
	FlagInsecure         = "insecure"
	FlagAddress          = "address"
	FlagRequestTimeout   = "request-timeout"
	FlagTokenSignKey     = "token-sign-key"
	FlagTokenIssuer      = "token-issuer"
	FlagTokenDuration    = "token-duration"
	FlagConvergeInterval = "interval"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterCommonFlags registers the flags every binary understands:
//
//	-c/--config        json file path with configs
//	--log-level        log level (debug, info, warn, error)
//	--secrets-backend  file, bolt, sqlite, postgres or http
//	--secrets-path     data bag directory or bolt database file
//	--secrets-dsn      sqlite/postgres DSN
//	--secret-file      shared item encryption secret
func RegisterCommonFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagSecretsBackend, "", "Secret store backend: file, bolt, sqlite, postgres, http")
	fs.String(FlagSecretsPath, "", "Data bag directory (file) or database file (bolt)")
	fs.String(FlagSecretsDSN, "", "Secret store DSN (sqlite, postgres)")
	fs.String(FlagSecretFile, "", "Path of the item encryption secret")
}

// RegisterNodeFlags registers the flags used by nexusctl:
//
//	--fqdn            node fully-qualified domain name
//	--attributes      YAML/JSON attribute overrides file
//	--secrets-url     data-bag server base URL
//	--secrets-token   data-bag server bearer token
//	--nexus-timeout   Nexus request timeout (e.g., "30s")
//	--insecure        skip TLS verification against Nexus
func RegisterNodeFlags(fs *pflag.FlagSet) {
	fs.String(FlagFQDN, "", "Node fully-qualified domain name")
	fs.String(FlagAttributes, "", "YAML or JSON attribute overrides file")
	fs.String(FlagSecretsURL, "", "Data-bag server base URL (http backend)")
	fs.String(FlagSecretsToken, "", "Data-bag server bearer token (http backend)")
	fs.Duration(FlagNexusTimeout, 0, "Nexus request timeout (e.g., 30s, 1m)")
	fs.Bool(FlagInsecure, false, "Skip TLS certificate verification against Nexus")
}

// RegisterServerFlags registers the data-bag server flags:
//
//	-a/--address       server address in format [host]:[port]
//	--request-timeout  request timeout (e.g., "30s", "1m")
//	--token-sign-key   token signing key
//	--token-issuer     token issuer name
//	--token-duration   token duration (e.g., "1h", "30m")
func RegisterServerFlags(fs *pflag.FlagSet) {
	fs.VarP(&NetAddress{}, FlagAddress, "a", "Net address host:port")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.String(FlagTokenSignKey, "", "Token signing key")
	fs.String(FlagTokenIssuer, "", "Token issuer")
	fs.Duration(FlagTokenDuration, 0, "Token duration (e.g., 1h, 30m)")
}

// RegisterWorkerFlags registers --interval, the pause between convergence
// passes.
func RegisterWorkerFlags(fs *pflag.FlagSet) {
	fs.Duration(FlagConvergeInterval, 0, "Pause between convergence passes (e.g., 30m); implies repeating")
}

// parseFlags converts the flags the user explicitly set on fs into a
// partial [StructuredConfig]. Flags that were not registered or not changed
// leave their fields zero so lower-priority sources can fill them.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var errs []error
	str := func(name string) string {
		if f := fs.Lookup(name); f != nil && f.Changed {
			return f.Value.String()
		}
		return ""
	}
	dur := func(name string) time.Duration {
		if f := fs.Lookup(name); f != nil && f.Changed {
			d, err := fs.GetDuration(name)
			errs = append(errs, err)
			return d
		}
		return 0
	}
	boolean := func(name string) bool {
		if f := fs.Lookup(name); f != nil && f.Changed {
			v, err := fs.GetBool(name)
			errs = append(errs, err)
			return v
		}
		return false
	}

	cfg := &StructuredConfig{
		Log: Log{Level: str(FlagLogLevel)},
		Node: Node{
			FQDN:           str(FlagFQDN),
			AttributesFile: str(FlagAttributes),
		},
		Secrets: Secrets{
			Backend:    str(FlagSecretsBackend),
			Path:       str(FlagSecretsPath),
			DSN:        str(FlagSecretsDSN),
			URL:        str(FlagSecretsURL),
			Token:      str(FlagSecretsToken),
			SecretFile: str(FlagSecretFile),
		},
		Nexus: Nexus{
			RequestTimeout:     dur(FlagNexusTimeout),
			InsecureSkipVerify: boolean(FlagInsecure),
		},
		Server: Server{
			HTTPAddress:    str(FlagAddress),
			RequestTimeout: dur(FlagRequestTimeout),
			TokenSignKey:   str(FlagTokenSignKey),
			TokenIssuer:    str(FlagTokenIssuer),
			TokenDuration:  dur(FlagTokenDuration),
		},
		Workers:      Workers{ConvergeInterval: dur(FlagConvergeInterval)},
		JSONFilePath: str(FlagConfig),
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
