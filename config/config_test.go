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

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/blinklabs-io/gopoh/internal/test"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, StoreTypeMemory, cfg.Store.Type)
	addr, err := cfg.ValidatorAddress()
	require.NoError(t, err)
	assert.Equal(t, common.Address{}, addr)
	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
validator: `+test.ValidatorTron+`
store:
  type: pebble
  path: /var/lib/poh
logging:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	addr, err := cfg.ValidatorAddress()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(test.ValidatorAddress), addr)
	assert.Equal(t, StoreTypePebble, cfg.Store.Type)
	assert.Equal(t, "/var/lib/poh", cfg.Store.Path)
	// Left out of the file
	assert.Equal(t, Default().Store.CacheSize, cfg.Store.CacheSize)
	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "validator: "+test.SomeoneAddress+"\n")
	t.Setenv(EnvValidator, test.ValidatorAddress)
	t.Setenv(EnvStoreType, StoreTypePebble)
	t.Setenv(EnvStorePath, "/tmp/poh")
	t.Setenv(EnvStoreCacheSize, "0")
	t.Setenv(EnvLogLevel, "WARN")
	cfg, err := Load(path)
	require.NoError(t, err)
	addr, err := cfg.ValidatorAddress()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(test.ValidatorAddress), addr)
	assert.Equal(t, StoreTypePebble, cfg.Store.Type)
	assert.Equal(t, "/tmp/poh", cfg.Store.Path)
	assert.Zero(t, cfg.Store.CacheSize)
	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestLoadErrors(t *testing.T) {
	testDefs := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "unknown field", content: "validatr: foo\n"},
		{name: "bad yaml", content: "store: [\n"},
		{name: "bad validator", content: "validator: TNotAnAddress\n"},
		{name: "bad store type", content: "store:\n  type: redis\n"},
		{name: "pebble without path", content: "store:\n  type: pebble\n  path: \"\"\n"},
		{name: "negative cache", content: "store:\n  cacheSize: -1\n"},
		{name: "bad log level", content: "logging:\n  level: loud\n"},
		{name: "bad cache env", env: map[string]string{EnvStoreCacheSize: "lots"}},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			for k, v := range testDef.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, testDef.content))
			assert.Error(t, err)
		})
	}
}

func TestValidateWrapsErrInvalidConfig(t *testing.T) {
	cfg := Default()
	cfg.Store.Type = "redis"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	cfg = Default()
	cfg.Validator = "0x1234"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenStore(t *testing.T) {
	cfg := Default()
	s, err := cfg.OpenStore(slog.Default())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	cfg.Store.Type = StoreTypePebble
	cfg.Store.Path = filepath.Join(t.TempDir(), "db")
	s, err = cfg.OpenStore(slog.Default())
	require.NoError(t, err)
	count, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
	require.NoError(t, s.Close())
}
