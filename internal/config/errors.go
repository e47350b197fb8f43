package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid. The ozzo-validation field
// errors are wrapped alongside.
var (
	// ErrInvalidAdapterConfigs indicates invalid endpoint settings
	// (for example, a relative URL or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid device identity settings
	// (for example, an unknown device description).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
