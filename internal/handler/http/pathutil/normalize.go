// Package pathutil provides URL path helpers for HTTP metrics.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// literalPaths are routes whose final segment looks dynamic but is fixed.
// They must be checked before the wildcard patterns.
var literalPaths = map[string]struct{}{
	"/api/feeds/public": {},
}

// pathPatterns defines the list of patterns for dynamic routes.
// Pre-compiled at initialization so normalization stays cheap on the hot path.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/feeds/[^/]+$`), Template: "/api/feeds/:userId"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths carrying a user ID (e.g. /api/feeds/usr_42)
// collapse to a template (/api/feeds/:userId); static paths pass through
// unchanged.
//
// Examples:
//
//	NormalizePath("/api/feeds/usr_42")     // "/api/feeds/:userId"
//	NormalizePath("/api/feeds/public")     // "/api/feeds/public" (unchanged)
//	NormalizePath("/api/feeds")            // "/api/feeds" (unchanged)
//	NormalizePath("/health")               // "/health" (unchanged)
//	NormalizePath("/api/feeds/usr_42?page=2") // "/api/feeds/:userId"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := literalPaths[path]; ok {
		return path
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
