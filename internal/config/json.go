package config

import (
	"encoding/json"
	"os"
	"time"

	"recipekeeper/internal/flagx"
	"recipekeeper/internal/timex"
)

// JsonConfig is the DTO for the JSON config file. Durations accept either
// strings like "10s" or integer nanoseconds.
type JsonConfig struct {
	AuthBaseURL        string         `json:"auth_base_url"`
	AuthAPIKey         string         `json:"auth_api_key"`
	RecipesEndpointURL string         `json:"recipes_endpoint_url"`
	CacheDBPath        string         `json:"cache_db_path"`
	HTTPTimeout        timex.Duration `json:"http_timeout"`
	LogLevel           string         `json:"log_level"`

	BackupEndpoint  string `json:"backup_endpoint"`
	BackupBucket    string `json:"backup_bucket"`
	BackupRegion    string `json:"backup_region"`
	BackupAccessKey string `json:"backup_access_key"`
	BackupSecretKey string `json:"backup_secret_key"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Absent file path means no JSON stage. Only fields present in the file
// override the current values. Read or unmarshal errors panic; config is
// resolved once at startup and a broken file should stop the program.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthBaseURL != "" {
		cfg.AuthBaseURL = jc.AuthBaseURL
	}
	if jc.AuthAPIKey != "" {
		cfg.AuthAPIKey = jc.AuthAPIKey
	}
	if jc.RecipesEndpointURL != "" {
		cfg.RecipesEndpointURL = jc.RecipesEndpointURL
	}
	if jc.CacheDBPath != "" {
		cfg.CacheDBPath = jc.CacheDBPath
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}

	if jc.BackupEndpoint != "" {
		cfg.BackupEndpoint = jc.BackupEndpoint
	}
	if jc.BackupBucket != "" {
		cfg.BackupBucket = jc.BackupBucket
	}
	if jc.BackupRegion != "" {
		cfg.BackupRegion = jc.BackupRegion
	}
	if jc.BackupAccessKey != "" {
		cfg.BackupAccessKey = jc.BackupAccessKey
	}
	if jc.BackupSecretKey != "" {
		cfg.BackupSecretKey = jc.BackupSecretKey
	}
}
