// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for rmcloud. It
// aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, an optional JSON or YAML file
// and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings describing this client to the cloud.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote endpoints and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the client log destination.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the identity the client presents when it is paired.
type App struct {
	// DeviceDesc is the device class reported during pairing.
	// Env: APP_DEVICE_DESC
	DeviceDesc string `env:"DEVICE_DESC"`

	// DeviceID is the id reported during pairing. A random one is used
	// when empty.
	// Env: APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`
}

// Adapter holds the remote endpoints.
type Adapter struct {
	// RegisterURL is the device pairing endpoint.
	// Env: ADAPTER_REGISTER_URL
	RegisterURL string `env:"REGISTER_URL"`

	// TokenURL mints user tokens from a device token.
	// Env: ADAPTER_TOKEN_URL
	TokenURL string `env:"TOKEN_URL"`

	// DiscoveryURL is the service-manager endpoint that names the
	// document-storage host.
	// Env: ADAPTER_DISCOVERY_URL
	DiscoveryURL string `env:"DISCOVERY_URL"`

	// StorageHost skips discovery when set.
	// Env: ADAPTER_STORAGE_HOST
	StorageHost string `env:"STORAGE_HOST"`

	// RequestTimeout bounds every outbound request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Storage groups the configuration for local storage.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local state database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds logging settings.
type Log struct {
	// File receives the JSON log. Defaults to the user cache directory.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. For every field the first source that sets it wins:
//  1. Environment variables (a .env file in the working directory is loaded
//     first and never overrides variables that are already set)
//  2. Command-line flags parsed from args
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// It returns the merged config and the arguments left after flag parsing.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults()

	cfg, err := b.build()
	return cfg, b.rest, err
}
