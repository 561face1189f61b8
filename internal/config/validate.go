// internal/config/validate.go
package config

import (
	"fmt"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validCacheBackends = map[string]bool{
	"disk": true, "sqlite": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.APIKey == "" {
		errs = append(errs, "api_key: required")
	}

	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level: must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	if !validCacheBackends[c.Cache.Backend] {
		errs = append(errs, fmt.Sprintf("cache.backend: must be disk or sqlite; got %q", c.Cache.Backend))
	}
	if c.Cache.Backend == "sqlite" && c.Cache.Enabled && c.Cache.Path == "" {
		errs = append(errs, "cache.path: required for the sqlite backend")
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, fmt.Sprintf("cache.ttl: must not be negative, got %s", c.Cache.TTL))
	}

	return errs
}
