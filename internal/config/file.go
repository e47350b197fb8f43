package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the optional config file.
// The same structure is accepted as JSON and as YAML.
type StructuredFileConfig struct {
	App struct {
		DeviceDesc string `json:"device_desc" yaml:"device_desc"`
		DeviceID   string `json:"device_id" yaml:"device_id"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Adapter struct {
		RegisterURL    string   `json:"register_url" yaml:"register_url"`
		TokenURL       string   `json:"token_url" yaml:"token_url"`
		DiscoveryURL   string   `json:"discovery_url" yaml:"discovery_url"`
		StorageHost    string   `json:"storage_host" yaml:"storage_host"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		UserAgent      string   `json:"user_agent" yaml:"user_agent"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Log struct {
		File  string `json:"file" yaml:"file"`
		Level string `json:"level" yaml:"level"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

// parseFile reads the config file at path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			DeviceDesc: fileCfg.App.DeviceDesc,
			DeviceID:   fileCfg.App.DeviceID,
		},
		Adapter: Adapter{
			RegisterURL:    fileCfg.Adapter.RegisterURL,
			TokenURL:       fileCfg.Adapter.TokenURL,
			DiscoveryURL:   fileCfg.Adapter.DiscoveryURL,
			StorageHost:    fileCfg.Adapter.StorageHost,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
			UserAgent:      fileCfg.Adapter.UserAgent,
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
		},
		Log: Log{
			File:  fileCfg.Log.File,
			Level: fileCfg.Log.Level,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" as well as from integer nanoseconds.
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

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		var n int64
		if nerr := value.Decode(&n); nerr != nil {
			return err
		}
		tmp = time.Duration(n)
	}
	*d = Duration(tmp)
	return nil
}
