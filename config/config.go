// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads gate settings from a YAML file with environment
// overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/blinklabs-io/gopoh/address"
	"github.com/blinklabs-io/gopoh/store"
	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

const (
	StoreTypeMemory = "memory"
	StoreTypePebble = "pebble"
)

// Environment variables that override file values
const (
	EnvValidator      = "POH_VALIDATOR"
	EnvStoreType      = "POH_STORE_TYPE"
	EnvStorePath      = "POH_STORE_PATH"
	EnvStoreCacheSize = "POH_STORE_CACHE_SIZE"
	EnvLogLevel       = "POH_LOG_LEVEL"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Validator is a hex or TRON base58 address
	Validator string        `yaml:"validator"`
	Store     StoreConfig   `yaml:"store"`
	Logging   LoggingConfig `yaml:"logging"`
}

type StoreConfig struct {
	Type      string `yaml:"type"`
	Path      string `yaml:"path"`
	CacheSize int    `yaml:"cacheSize"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the settings used for anything the file leaves out
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Type:      StoreTypeMemory,
			Path:      "./poh-db",
			CacheSize: store.DefaultCacheSize,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvValidator); ok {
		c.Validator = v
	}
	if v, ok := lookup(EnvStoreType); ok {
		c.Store.Type = v
	}
	if v, ok := lookup(EnvStorePath); ok {
		c.Store.Path = v
	}
	if v, ok := lookup(EnvStoreCacheSize); ok {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvStoreCacheSize, err)
		}
		c.Store.CacheSize = size
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks that every value can be used as given
func (c *Config) Validate() error {
	if _, err := c.ValidatorAddress(); err != nil {
		return err
	}
	switch c.Store.Type {
	case StoreTypeMemory:
	case StoreTypePebble:
		if c.Store.Path == "" {
			return fmt.Errorf("%w: pebble store requires a path", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown store type %q", ErrInvalidConfig, c.Store.Type)
	}
	if c.Store.CacheSize < 0 {
		return fmt.Errorf("%w: negative cache size %d", ErrInvalidConfig, c.Store.CacheSize)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// ValidatorAddress parses the configured validator. An empty value yields the
// zero address, which starts the gate paused.
func (c *Config) ValidatorAddress() (common.Address, error) {
	if c.Validator == "" {
		return common.Address{}, nil
	}
	addr, err := address.Parse(c.Validator)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: validator: %w", ErrInvalidConfig, err)
	}
	return addr, nil
}

func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Logging.Level))); err != nil {
		return level, fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}
	return level, nil
}

// OpenStore opens the configured consumed-proof store
func (c *Config) OpenStore(logger *slog.Logger) (store.Store, error) {
	switch c.Store.Type {
	case StoreTypePebble:
		s, err := store.NewPebbleStore(
			c.Store.Path,
			store.WithCacheSize(c.Store.CacheSize),
			store.WithLogger(logger),
		)
		if err != nil {
			return nil, err
		}
		return s, nil
	case StoreTypeMemory:
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: unknown store type %q", ErrInvalidConfig, c.Store.Type)
	}
}
