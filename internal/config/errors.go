package config

import "errors"

// Validation errors returned by the config views when required configuration
// groups are incomplete or invalid.
var (
	// ErrInvalidProviderConfigs indicates missing identity provider settings
	// (URL, anon key, or service key). The service refuses to start with a
	// half-configured provider client.
	ErrInvalidProviderConfigs = errors.New("invalid identity provider configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// required by the client (for example, an unknown theme name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero session check interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
