package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_LoadFrom_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.OTLP.Enabled)
	assert.Equal(t, "storefront", cfg.OTLP.ServiceName)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func Test_LoadFrom_Layering(t *testing.T) {
	// given
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "config.yaml", "server:\n  port: \"9000\"\n  host: 127.0.0.1\nlog:\n  level: info\n")
	envPath := writeFile(t, dir, ".env", "STOREFRONT_SERVER_PORT=9100\n")
	t.Setenv("OTEL_SERVICE_NAME", "catalog-api")
	t.Setenv("STOREFRONT_LOG_LEVEL", "warn")
	// when
	cfg, err := LoadFrom(yamlPath, envPath)
	// then
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "catalog-api", cfg.OTLP.ServiceName)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func Test_LoadFrom_BareServerVariables(t *testing.T) {
	testCases := []struct {
		name       string
		env        map[string]string
		expectHost string
		expectPort string
	}{
		{
			name:       "bare names are honoured",
			env:        map[string]string{"SERVER_HOST": "10.0.0.5", "SERVER_PORT": "9200"},
			expectHost: "10.0.0.5",
			expectPort: "9200",
		},
		{
			name:       "prefixed names win",
			env:        map[string]string{"SERVER_PORT": "9200", "STOREFRONT_SERVER_PORT": "9300"},
			expectHost: "0.0.0.0",
			expectPort: "9300",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			dir := t.TempDir()
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			// when
			cfg, err := LoadFrom(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "missing.env"))
			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expectHost, cfg.Server.Host)
			assert.Equal(t, tc.expectPort, cfg.Server.Port)
		})
	}
}

func Test_LoadFrom_Invalid(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STOREFRONT_LOG_LEVEL", "loud")

	_, err := LoadFrom(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "missing.env"))

	assert.ErrorContains(t, err, "config validation failed")
}

func Test_envKey(t *testing.T) {
	testCases := map[string]string{
		"STOREFRONT_SERVER_PORT":       "server.port",
		"STOREFRONT_OTLP_SERVICE_NAME": "otlp.service_name",
		"OTEL_EXPORTER_OTLP_ENDPOINT":  "otlp.endpoint",
		"SERVER_PORT":                  "server.port",
		"SERVER_NAME":                  "",
		"HOME":                         "",
	}
	for in, expected := range testCases {
		assert.Equal(t, expected, envKey(in), in)
	}
}
