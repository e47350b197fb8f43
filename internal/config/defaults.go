package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultRegisterURL  = "https://my.remarkable.com/token/json/2/device/new"
	DefaultTokenURL     = "https://my.remarkable.com/token/json/2/user/new"
	DefaultDiscoveryURL = "https://service-manager-production-dot-remarkable-production.appspot.com/service/json/1/document-storage?environment=production&group=auth0|5a68dc51cb30df3877a1d7c4&apiVer=2"

	DefaultDeviceDesc     = "desktop-linux"
	DefaultRequestTimeout = 30 * time.Second
	DefaultUserAgent      = "rmcloud"
	DefaultLogLevel       = "info"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DeviceDesc: DefaultDeviceDesc,
		},
		Adapter: Adapter{
			RegisterURL:    DefaultRegisterURL,
			TokenURL:       DefaultTokenURL,
			DiscoveryURL:   DefaultDiscoveryURL,
			RequestTimeout: DefaultRequestTimeout,
			UserAgent:      DefaultUserAgent,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN()},
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// defaultDSN places the state database in the user config directory, or in
// the working directory when there is none.
func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "rmcloud.db"
	}
	return filepath.Join(dir, "rmcloud", "state.db")
}
