// Package config assembles the runtime settings for RecipeKeeper.
// Values are layered: built-in defaults, then an optional JSON file
// (-c/-config), then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings.
type Config struct {
	// AuthBaseURL is the identity provider root, without a trailing slash.
	AuthBaseURL string
	// AuthAPIKey is appended as the "key" query parameter on auth requests.
	AuthAPIKey string
	// RecipesEndpointURL is the remote recipe document, e.g.
	// "https://<project>.firebaseio.com/recipes.json".
	RecipesEndpointURL string
	// CacheDBPath is the local sqlite file holding the session snapshot.
	CacheDBPath string
	// HTTPTimeout bounds every outbound request.
	HTTPTimeout time.Duration
	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// Backup settings; backups stay disabled while BackupBucket is empty.
	BackupEndpoint  string
	BackupBucket    string
	BackupRegion    string
	BackupAccessKey string
	BackupSecretKey string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthBaseURL = "https://identitytoolkit.googleapis.com/v1"
	c.CacheDBPath = "recipekeeper.db"
	c.HTTPTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then the JSON file (if
// given), then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
