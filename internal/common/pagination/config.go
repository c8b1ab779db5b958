// Package pagination converts untrusted page/limit query input into a safe,
// bounded pagination request, and derives display metadata from row counts.
package pagination

import (
	pkgconfig "profeed/pkg/config"
)

// Config bounds the page window applied to feed listings.
// DefaultPage and DefaultLimit fill in omitted query parameters; MaxLimit
// caps how many feeds a single request may ask for.
type Config struct {
	DefaultPage  int
	DefaultLimit int
	MaxLimit     int
}

// DefaultConfig returns the built-in pagination bounds: page 1, 20 feeds
// per page, capped at 100.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

// LoadFromEnv reads pagination bounds from PAGINATION_DEFAULT_PAGE,
// PAGINATION_DEFAULT_LIMIT and PAGINATION_MAX_LIMIT, falling back to
// DefaultConfig values for anything unset or unparseable.
func LoadFromEnv() Config {
	defaults := DefaultConfig()
	return Config{
		DefaultPage:  pkgconfig.GetEnvInt("PAGINATION_DEFAULT_PAGE", defaults.DefaultPage),
		DefaultLimit: pkgconfig.GetEnvInt("PAGINATION_DEFAULT_LIMIT", defaults.DefaultLimit),
		MaxLimit:     pkgconfig.GetEnvInt("PAGINATION_MAX_LIMIT", defaults.MaxLimit),
	}
}
