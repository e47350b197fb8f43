package config

import (
	"fmt"
	"time"
)

// ClientApp holds the device identity used for pairing.
type ClientApp struct {
	// DeviceDesc is the device class reported to the cloud.
	DeviceDesc string
	// DeviceID is the device id reported to the cloud; may be empty.
	DeviceID string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// RegisterURL is the device pairing endpoint.
	RegisterURL string
	// TokenURL is the user token endpoint.
	TokenURL string
	// DiscoveryURL is the document-storage discovery endpoint.
	DiscoveryURL string
	// StorageHost overrides discovery when non-empty.
	StorageHost string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientLog contains client log settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains the device identity.
	App ClientApp
	// Adapter contains remote endpoints and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Log contains the log destination.
	Log ClientLog
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration. args are the process arguments without the
// program name; the arguments left after the global flags are returned.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, rest, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DeviceDesc: cfg.App.DeviceDesc,
			DeviceID:   cfg.App.DeviceID,
		},
		Adapter: ClientAdapter{
			RegisterURL:    cfg.Adapter.RegisterURL,
			TokenURL:       cfg.Adapter.TokenURL,
			DiscoveryURL:   cfg.Adapter.DiscoveryURL,
			StorageHost:    cfg.Adapter.StorageHost,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UserAgent:      cfg.Adapter.UserAgent,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}
}
