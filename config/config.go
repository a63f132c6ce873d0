// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/yaml.v2"

	"github.com/eyovvalupe/pump.fun-Raydium/pebble"
	"github.com/eyovvalupe/pump.fun-Raydium/trace"
)

const (
	MemDB    = "memdb"
	PebbleDB = "pebble"
)

var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrUnknownBackend  = fmt.Errorf("%w: unknown database backend", ErrInvalidConfig)
	ErrMissingDatabase = fmt.Errorf("%w: database path not set", ErrInvalidConfig)
)

type Config struct {
	LogLevel string `yaml:"logLevel"`
	// LogDir enables a rotated JSON log file when set.
	LogDir      string `yaml:"logDir"`
	LogMaxSize  int    `yaml:"logMaxSize"` // megabytes
	LogMaxFiles int    `yaml:"logMaxFiles"`
	LogMaxAge   int    `yaml:"logMaxAge"` // days

	DatabaseBackend string        `yaml:"databaseBackend"`
	DatabasePath    string        `yaml:"databasePath"`
	Pebble          pebble.Config `yaml:"pebble"`

	MetricsNamespace string       `yaml:"metricsNamespace"`
	Trace            trace.Config `yaml:"trace"`

	// GenesisPath is read on every start. An existing database must have
	// been initialized with the same genesis.
	GenesisPath string `yaml:"genesisPath"`
}

func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:         logging.Info.String(),
		LogMaxSize:       8,
		LogMaxFiles:      4,
		LogMaxAge:        7,
		DatabaseBackend:  PebbleDB,
		DatabasePath:     ".curve-cli",
		Pebble:           pebble.NewDefaultConfig(),
		MetricsNamespace: "curvevm",
		Trace:            trace.NewDefaultConfig(),
		GenesisPath:      "genesis.json",
	}
}

// Load parses a YAML config. Fields missing from [b] keep their default
// values; unknown fields are rejected.
func Load(b []byte) (*Config, error) {
	c := NewDefaultConfig()
	if err := yaml.UnmarshalStrict(b, c); err != nil {
		return nil, err
	}
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile loads the config at [path]. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewDefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return Load(b)
}

func (c *Config) Verify() error {
	if _, err := c.GetLogLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.DatabaseBackend {
	case MemDB:
	case PebbleDB:
		if len(c.DatabasePath) == 0 {
			return ErrMissingDatabase
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.DatabaseBackend)
	}
	if c.Trace.Enabled && len(c.Trace.Endpoint) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, trace.ErrMissingEndpoint)
	}
	if c.LogMaxSize <= 0 || c.LogMaxFiles < 0 || c.LogMaxAge < 0 {
		return fmt.Errorf("%w: log rotation limits", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) GetLogLevel() (logging.Level, error) {
	return logging.ToLevel(c.LogLevel)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
