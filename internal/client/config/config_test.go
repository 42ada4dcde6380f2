package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"gamesite"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, "http://127.0.0.1:8000", cfg.ServerRootURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("GAMESITE_SERVER_URL", "http://env.example:9000")
	t.Setenv("GAMESITE_REQUEST_TIMEOUT", "30s")

	cfg := LoadConfig()
	assert.Equal(t, "http://env.example:9000", cfg.ServerRootURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JsonOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"server_root_url": "http://json.example:7000", "request_timeout": "15s"}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv("GAMESITE_SERVER_URL", "http://env.example:9000")

	cfg := LoadConfig()
	assert.Equal(t, "http://json.example:7000", cfg.ServerRootURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JsonPartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"server_root_url": "http://json.example:7000"}`), 0o600))

	resetArgs(t, "-config", path)

	cfg := LoadConfig()
	assert.Equal(t, "http://json.example:7000", cfg.ServerRootURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout, "fields absent from the file keep earlier values")
}

func TestLoadConfig_FlagsWinOverEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"server_root_url": "http://json.example:7000"}`), 0o600))

	resetArgs(t, "-c", path, "-a", "http://flag.example:6000", "-t", "20")
	t.Setenv("GAMESITE_SERVER_URL", "http://env.example:9000")

	cfg := LoadConfig()
	assert.Equal(t, "http://flag.example:6000", cfg.ServerRootURL)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	resetArgs(t, "-c", "/nonexistent/conf.json")

	assert.Panics(t, func() { LoadConfig() })
}
