package config

import (
	"fmt"
	"time"

	"github.com/evolt-dev/evolt/models"
)

// Client-side defaults. The server address matches the port the original
// mobile client was hardwired to.
const (
	defaultClientServerAddress        = "http://localhost:3001"
	defaultClientDBPath               = "evolt-client.db"
	defaultClientRequestTimeout       = 10 * time.Second
	defaultClientSessionCheckInterval = time.Minute
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the auth/profile service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DBPath is the SQLite file holding cached session state.
	DBPath string
}

// ClientApp holds application-level client settings.
type ClientApp struct {
	// DefaultTheme is used until the user persists a preference.
	DefaultTheme models.Theme
	// RevokeOnSignOut asks the service to revoke the provider session on
	// sign-out instead of only clearing local state.
	RevokeOnSignOut bool
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SessionCheckInterval defines how often the session watcher runs.
	SessionCheckInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DefaultTheme:    models.Theme(cfg.Client.DefaultTheme),
			RevokeOnSignOut: cfg.Client.RevokeOnSignOut,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Client.ServerAddress,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Storage: ClientStorage{
			DBPath: cfg.Client.DBPath,
		},
		Workers: ClientWorkers{
			SessionCheckInterval: cfg.Client.SessionCheckInterval,
		},
	}
	clientCfg.applyDefaults()

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultClientServerAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultClientRequestTimeout
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = defaultClientDBPath
	}
	if cfg.Workers.SessionCheckInterval == 0 {
		cfg.Workers.SessionCheckInterval = defaultClientSessionCheckInterval
	}
	if cfg.App.DefaultTheme == "" {
		cfg.App.DefaultTheme = models.ThemeLight
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DBPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SessionCheckInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if !cfg.App.DefaultTheme.Valid() {
		return ErrInvalidAppConfigs
	}

	return nil
}
