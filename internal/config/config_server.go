package config

import (
	"fmt"
	"time"
)

// Defaults applied by the server view when the merged config leaves a
// non-required field unset.
const (
	defaultHTTPAddress    = ":3001"
	defaultRequestTimeout = 10 * time.Second
)

// ServerConfig is the validated configuration view consumed by the server
// binary.
type ServerConfig struct {
	// Provider contains identity provider connection settings.
	Provider Provider
	// Storage contains profile database settings.
	Storage Storage
	// Server contains inbound HTTP settings.
	Server Server
	// Frontend contains the verification-redirect base URL.
	Frontend Frontend
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
//
// A half-configured provider or store is a startup error: the service must
// fail loudly rather than accept requests it cannot serve.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Provider: cfg.Provider,
		Storage:  cfg.Storage,
		Server:   cfg.Server,
		Frontend: cfg.Frontend,
	}
	serverCfg.applyDefaults()

	if err := serverCfg.validate(); err != nil {
		return nil, err
	}

	return serverCfg, nil
}

func (cfg *ServerConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Provider.RequestTimeout == 0 {
		cfg.Provider.RequestTimeout = defaultRequestTimeout
	}
}

func (cfg *ServerConfig) validate() error {
	if cfg.Provider.URL == "" || cfg.Provider.AnonKey == "" {
		return ErrInvalidProviderConfigs
	}

	if cfg.Provider.ServiceKey == "" {
		return ErrInvalidProviderConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
