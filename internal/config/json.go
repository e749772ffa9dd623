package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Provider struct {
		URL            string   `json:"url"`
		AnonKey        string   `json:"anon_key"`
		ServiceKey     string   `json:"service_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"provider,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Frontend struct {
		BaseURL string `json:"base_url"`
	} `json:"frontend,omitempty"`

	Client struct {
		ServerAddress        string   `json:"server_address"`
		DBPath               string   `json:"db_path"`
		RequestTimeout       Duration `json:"request_timeout"`
		SessionCheckInterval Duration `json:"session_check_interval"`
		DefaultTheme         string   `json:"default_theme"`
		RevokeOnSignOut      bool     `json:"revoke_on_sign_out"`
	} `json:"client,omitempty"`
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
		Provider: Provider{
			URL:            jsonCfg.Provider.URL,
			AnonKey:        jsonCfg.Provider.AnonKey,
			ServiceKey:     jsonCfg.Provider.ServiceKey,
			RequestTimeout: time.Duration(jsonCfg.Provider.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Frontend: Frontend{
			BaseURL: jsonCfg.Frontend.BaseURL,
		},
		Client: Client{
			ServerAddress:        jsonCfg.Client.ServerAddress,
			DBPath:               jsonCfg.Client.DBPath,
			RequestTimeout:       time.Duration(jsonCfg.Client.RequestTimeout),
			SessionCheckInterval: time.Duration(jsonCfg.Client.SessionCheckInterval),
			DefaultTheme:         jsonCfg.Client.DefaultTheme,
			RevokeOnSignOut:      jsonCfg.Client.RevokeOnSignOut,
		},
		JSONFilePath: "",
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
