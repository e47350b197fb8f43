package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the global client flags from args and returns the
// remaining arguments, which name the command to run.
//
// Flags:
//
//	-c/-config json or yaml file path with configs
//	-d local state database DSN
//	-storage-host document storage endpoint, skips discovery
//	-register-url device pairing endpoint
//	-token-url user token endpoint
//	-discovery-url service discovery endpoint
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-user-agent user agent sent with every request
//	-device-desc device class reported during pairing
//	-log-file log file path
//	-log-level log level (e.g., "debug")
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var (
		configPath     string
		databaseDSN    string
		storageHost    string
		registerURL    string
		tokenURL       string
		discoveryURL   string
		requestTimeout time.Duration
		userAgent      string
		deviceDesc     string
		logFile        string
		logLevel       string
	)

	fs := flag.NewFlagSet("rmcloud", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&databaseDSN, "d", "", "Local state database DSN")
	fs.StringVar(&storageHost, "storage-host", "", "Document storage endpoint")
	fs.StringVar(&registerURL, "register-url", "", "Device pairing endpoint")
	fs.StringVar(&tokenURL, "token-url", "", "User token endpoint")
	fs.StringVar(&discoveryURL, "discovery-url", "", "Service discovery endpoint")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&userAgent, "user-agent", "", "User agent")
	fs.StringVar(&deviceDesc, "device-desc", "", "Device description used for pairing")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DeviceDesc: deviceDesc,
		},
		Adapter: Adapter{
			RegisterURL:    registerURL,
			TokenURL:       tokenURL,
			DiscoveryURL:   discoveryURL,
			StorageHost:    storageHost,
			RequestTimeout: requestTimeout,
			UserAgent:      userAgent,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: configPath,
	}, fs.Args(), nil
}
