package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d profile database DSN
//	-provider-url identity provider base URL
//	-provider-anon-key identity provider public API key
//	-provider-service-key identity provider privileged API key
//	-provider-timeout identity provider request timeout (e.g., "10s")
//	-frontend-url frontend base URL for the verification redirect
//	-request-timeout inbound request timeout (e.g., "10s", "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var providerURL string
	var providerAnonKey string
	var providerServiceKey string
	var providerTimeout time.Duration
	var frontendURL string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Profile database DSN")
	flag.StringVar(&providerURL, "provider-url", "", "Identity provider base URL")
	flag.StringVar(&providerAnonKey, "provider-anon-key", "", "Identity provider public API key")
	flag.StringVar(&providerServiceKey, "provider-service-key", "", "Identity provider privileged API key")
	flag.DurationVar(&providerTimeout, "provider-timeout", 0, "Identity provider request timeout (e.g., 10s)")
	flag.StringVar(&frontendURL, "frontend-url", "", "Frontend base URL for verification redirect")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Provider: Provider{
			URL:            providerURL,
			AnonKey:        providerAnonKey,
			ServiceKey:     providerServiceKey,
			RequestTimeout: providerTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Frontend: Frontend{
			BaseURL: frontendURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that
// merging does not clobber values from other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
