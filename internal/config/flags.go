package config

import (
	"flag"
	"os"
	"time"

	"recipekeeper/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   identity provider base URL
//	-k string   identity provider API key
//	-r string   recipe document endpoint URL
//	-d string   cache database path
//	-t int      HTTP timeout in seconds
//	-l string   log level
//
// Arguments are filtered down to the flags this stage owns so other config
// stages can parse their own subsets.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-r", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthBaseURL, "a", cfg.AuthBaseURL, "identity provider base URL")
	fs.StringVar(&cfg.AuthAPIKey, "k", cfg.AuthAPIKey, "identity provider API key")
	fs.StringVar(&cfg.RecipesEndpointURL, "r", cfg.RecipesEndpointURL, "recipe document endpoint URL")
	fs.StringVar(&cfg.CacheDBPath, "d", cfg.CacheDBPath, "cache database path")
	timeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*timeout) * time.Second
}
