package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir stands in for testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestInitializeConfigDefaults(t *testing.T) {
	// Run from a temp dir so no developer config file bleeds in.
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "uploads", cfg.Server.UploadDir)
	assert.Equal(t, "input", cfg.Watch.InputDir)
	assert.Equal(t, "output", cfg.Watch.OutputDir)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STMT_LOG_LEVEL", "debug")
	t.Setenv("STMT_LANGUAGE", "pt-BR")
	t.Setenv("STMT_SERVER_PORT", "8080")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "pt-BR", cfg.Language)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestInitializeConfigFireflyCredentialsFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FIREFLY_TOKEN", "token-abc")
	t.Setenv("FIREFLY_SECRET", "secret-xyz")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "token-abc", cfg.Firefly.Token)
	assert.Equal(t, "secret-xyz", cfg.Firefly.Secret)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.CSV.Delimiter = ","
		cfg.Server.Port = 3001
		return cfg
	}

	assert.NoError(t, validateConfig(base()))

	cfg := base()
	cfg.Log.Level = "loud"
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Log.Format = "xml"
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.CSV.Delimiter = ";;"
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Server.Port = 0
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Server.Port = 70000
	assert.Error(t, validateConfig(cfg))
}

func TestConfigureLoggingLevels(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	ConfigureLogging()

	assert.Equal(t, "debug", Logger.GetLevel().String())
}
