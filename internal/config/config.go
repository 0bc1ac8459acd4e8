// Package config loads the TOML configuration for the server and client
// binaries. Both ends default to the same loopback endpoint.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
)

// DefaultEndpoint is the fixed loopback endpoint both ends assume when no
// configuration file overrides it.
const DefaultEndpoint = "127.0.0.1:5000"

type ServerConfig struct {
	ListenAddr  string   `toml:"listen_addr"`
	AdminAddr   string   `toml:"admin_addr"`
	ReportsDir  string   `toml:"reports_dir"`
	CorsOrigins []string `toml:"cors_origins"`
}

type ClientConfig struct {
	ServerAddr string `toml:"server_addr"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		ListenAddr: DefaultEndpoint,
		AdminAddr:  "",
		ReportsDir: ".",
	}
}

func DefaultClientConfig() ClientConfig {
	return ClientConfig{ServerAddr: DefaultEndpoint}
}

// LoadServerConfig reads a server config file. An empty path yields defaults.
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()
	if path != "" {
		if err := loadToml(path, &cfg); err != nil {
			return ServerConfig{}, err
		}
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultEndpoint
	}
	if cfg.ReportsDir == "" {
		cfg.ReportsDir = "."
	}
	if err := ValidateServerConfig(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// LoadClientConfig reads a client config file. An empty path yields defaults.
func LoadClientConfig(path string) (ClientConfig, error) {
	cfg := DefaultClientConfig()
	if path != "" {
		if err := loadToml(path, &cfg); err != nil {
			return ClientConfig{}, err
		}
	}
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = DefaultEndpoint
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateServerConfig(cfg ServerConfig) error {
	var result *multierror.Error
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		result = multierror.Append(result, fmt.Errorf("server config missing listen_addr"))
	}
	if strings.TrimSpace(cfg.ReportsDir) == "" {
		result = multierror.Append(result, fmt.Errorf("server config missing reports_dir"))
	}
	for i, origin := range cfg.CorsOrigins {
		if strings.TrimSpace(origin) == "" {
			result = multierror.Append(result, fmt.Errorf("cors_origins[%d] is empty", i))
		}
	}
	return result.ErrorOrNil()
}
