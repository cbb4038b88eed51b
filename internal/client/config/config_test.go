package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.ServerURL)
	assert.Equal(t, "http://localhost:8080/proxy", c.ProxyURL)
	assert.Equal(t, "session.db", c.SessionDBPath)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempFile(t, "cfg.yaml", "server_url: http://file:1\nproxy_url: http://file-proxy\nlog_level: info\n")
	t.Setenv(envServerURL, "http://env:2")

	os.Args = []string{"flowgate", "-c", path, "-l", "debug"}
	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://env:2", cfg.ServerURL, "env overrides file")
	assert.Equal(t, "http://file-proxy", cfg.ProxyURL, "file overrides default")
	assert.Equal(t, "debug", cfg.LogLevel, "flag overrides file")
	assert.Equal(t, "session.db", cfg.SessionDBPath, "default kept")
}

func TestParseEnv(t *testing.T) {
	t.Setenv(envServerURL, "")
	t.Setenv(envProxyURL, "http://proxy.env")

	cfg := &Config{ServerURL: "keep"}
	parseEnv(cfg)

	assert.Equal(t, "keep", cfg.ServerURL)
	assert.Equal(t, "http://proxy.env", cfg.ProxyURL)
}
