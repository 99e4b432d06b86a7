package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpinski/eventcal/pkg/eventcal/config"
)

func TestConfig_Accessors(t *testing.T) {
	cfg := config.New(map[string]any{
		"store_path":  "calendar.db",
		"listen_addr": ":8000",
		"verbose":     true,
		"port":        float64(8000), // JSON numbers decode as float64
	})

	assert.Equal(t, "calendar.db", cfg.String(config.KeyStorePath, "default.db"))
	assert.Equal(t, ":8000", cfg.String(config.KeyListenAddr, ""))
	assert.Equal(t, "http://localhost:8000", cfg.String(config.KeyRemoteURL, "http://localhost:8000"))
	assert.True(t, cfg.Bool("verbose", false))
	assert.Equal(t, 8000, cfg.Int("port", 0))
	assert.True(t, cfg.Has("store_path"))
	assert.False(t, cfg.Has("missing"))
}

func TestConfig_TypeMismatchFallsBack(t *testing.T) {
	cfg := config.New(map[string]any{
		"store_path": 42,
		"port":       "eight thousand",
		"fraction":   1.5,
	})
	assert.Equal(t, "fallback", cfg.String("store_path", "fallback"))
	assert.Equal(t, 7, cfg.Int("port", 7))
	assert.Equal(t, 7, cfg.Int("fraction", 7))
}

func TestConfig_NilMap(t *testing.T) {
	cfg := config.New(nil)
	assert.Equal(t, "d", cfg.String("k", "d"))
}

func TestFromFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eventcal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store_path: calendar.db\nlisten_addr: ':9000'\n"), 0o644))

	cfg, err := config.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "calendar.db", cfg.String(config.KeyStorePath, ""))
	assert.Equal(t, ":9000", cfg.String(config.KeyListenAddr, ""))
}

func TestFromFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eventcal.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"remote_url": "http://localhost:8000"}`), 0o644))

	cfg, err := config.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.String(config.KeyRemoteURL, ""))
}

func TestFromFile_UnknownKeyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eventcal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store-path: calendar.db\n"), 0o644))

	_, err := config.FromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"store-path"`)

	_, err = config.FromJSON([]byte(`{"dbpath": "calendar.db"}`))
	assert.Error(t, err)
}

func TestFromFile_Errors(t *testing.T) {
	_, err := config.FromFile("/nonexistent/eventcal.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "eventcal.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))
	_, err = config.FromFile(path)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("::: not yaml"), 0o644))
	_, err = config.FromFile(bad)
	assert.Error(t, err)
}
