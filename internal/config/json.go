package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
type StructuredJSONConfig struct {
	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Node struct {
		FQDN           string `json:"fqdn"`
		AttributesFile string `json:"attributes_file"`
	} `json:"node,omitempty"`

	Secrets struct {
		Backend        string   `json:"backend"`
		Path           string   `json:"path"`
		DSN            string   `json:"dsn"`
		URL            string   `json:"url"`
		Token          string   `json:"token"`
		SecretFile     string   `json:"secret_file"`
		Bag            string   `json:"bag"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"secrets,omitempty"`

	Nexus struct {
		RequestTimeout     Duration `json:"request_timeout"`
		InsecureSkipVerify bool     `json:"insecure_skip_verify"`
	} `json:"nexus,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
	} `json:"server,omitempty"`

	Workers struct {
		ConvergeInterval Duration `json:"converge_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Log: Log{Level: jsonCfg.Log.Level},
		Node: Node{
			FQDN:           jsonCfg.Node.FQDN,
			AttributesFile: jsonCfg.Node.AttributesFile,
		},
		Secrets: Secrets{
			Backend:        jsonCfg.Secrets.Backend,
			Path:           jsonCfg.Secrets.Path,
			DSN:            jsonCfg.Secrets.DSN,
			URL:            jsonCfg.Secrets.URL,
			Token:          jsonCfg.Secrets.Token,
			SecretFile:     jsonCfg.Secrets.SecretFile,
			Bag:            jsonCfg.Secrets.Bag,
			RequestTimeout: time.Duration(jsonCfg.Secrets.RequestTimeout),
		},
		Nexus: Nexus{
			RequestTimeout:     time.Duration(jsonCfg.Nexus.RequestTimeout),
			InsecureSkipVerify: jsonCfg.Nexus.InsecureSkipVerify,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			TokenSignKey:   jsonCfg.Server.TokenSignKey,
			TokenIssuer:    jsonCfg.Server.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.Server.TokenDuration),
		},
		Workers: Workers{
			ConvergeInterval: time.Duration(jsonCfg.Workers.ConvergeInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
