package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysPresentFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"auth_api_key": "json-key",
		"recipes_endpoint_url": "https://db.example.com/recipes.json",
		"http_timeout": "25s",
		"backup_bucket": "recipe-backups",
		"backup_region": "eu-west-1"
	}`)
	withArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "json-key", cfg.AuthAPIKey)
	assert.Equal(t, "https://db.example.com/recipes.json", cfg.RecipesEndpointURL)
	assert.Equal(t, 25*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "recipe-backups", cfg.BackupBucket)
	assert.Equal(t, "eu-west-1", cfg.BackupRegion)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "https://identitytoolkit.googleapis.com/v1", cfg.AuthBaseURL)
	assert.Equal(t, "recipekeeper.db", cfg.CacheDBPath)
}

func TestParseJson_NoFileFlagIsNoop(t *testing.T) {
	withArgs(t)

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestParseJson_BrokenFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	withArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(&cfg) })
}

func TestLoadConfig_FlagsWinOverJson(t *testing.T) {
	path := writeConfigFile(t, `{"auth_api_key": "json-key", "log_level": "warn"}`)
	withArgs(t, "-c", path, "-k", "flag-key")

	cfg := LoadConfig()

	assert.Equal(t, "flag-key", cfg.AuthAPIKey)
	assert.Equal(t, "warn", cfg.LogLevel)
}
