// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the client needs to reach the service.
type Config struct {
	// Endpoint is the service base URL including the version prefix,
	// e.g. "https://api.lingora.dev/v1".
	Endpoint string `yaml:"endpoint"`

	// ProtocolVersion is the dated protocol revision sent as the "v"
	// query parameter.
	ProtocolVersion string `yaml:"protocol_version"`

	// APIKey is the client access token, sent as a bearer token.
	APIKey string `yaml:"api_key"`

	// Language is the default query language for requests that do not
	// set one.
	Language string `yaml:"language"`

	// Timezone is the default timezone name for requests that do not
	// set one, e.g. "America/New_York".
	Timezone string `yaml:"timezone"`

	// Timeout bounds each HTTP call.
	Timeout time.Duration `yaml:"timeout"`
}

// Load reads configuration from a YAML file. Environment variables
// LINGORA_API_KEY and LINGORA_ENDPOINT override file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the default configuration. The API key is taken from
// LINGORA_API_KEY.
func Default() *Config {
	var cfg Config
	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LINGORA_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("LINGORA_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://api.lingora.dev/v1"
	}
	if cfg.ProtocolVersion == "" {
		cfg.ProtocolVersion = "20170210"
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
}
