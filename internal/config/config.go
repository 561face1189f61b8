// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	APIKey     string      `toml:"api_key"`
	Language   string      `toml:"language"`
	LogLevel   string      `toml:"log_level"`
	IgnoreCase bool        `toml:"ignore_case"`
	Actors     bool        `toml:"actors"`
	Banners    bool        `toml:"banners"`
	Cache      CacheConfig `toml:"cache"`
}

// CacheConfig controls the on-disk HTTP response cache.
type CacheConfig struct {
	Enabled bool          `toml:"enabled"`
	Backend string        `toml:"backend"` // "disk" or "sqlite"
	Dir     string        `toml:"dir"`     // disk backend
	Path    string        `toml:"path"`    // sqlite backend
	TTL     time.Duration `toml:"ttl"`     // sqlite backend, 0 = forever
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "disk"
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable
// values and reports the names it could not resolve. The shell-style
// ${VAR_NAME:-default} form falls back to default when the variable is
// unset or empty.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		expr := match[2 : len(match)-1] // Strip ${ and }
		name, def, hasDefault := strings.Cut(expr, ":-")
		if value, ok := os.LookupEnv(name); ok && (value != "" || !hasDefault) {
			return value
		}
		if hasDefault {
			return def
		}
		missing = append(missing, name)
		return match
	})
	return out, missing
}
