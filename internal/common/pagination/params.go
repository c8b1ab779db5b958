package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// ParseQuery parses pagination parameters from the HTTP request query string.
//
// Coercion policy:
//   - Missing parameters take their configured defaults.
//   - Non-numeric input ("abc") silently takes the default as well; only
//     values that parse as numbers are range-checked.
//   - Fractional values are truncated, not rounded: "20.7" -> 20, "1.5" -> 1.
//
// Validation (after coercion):
//   - page must be >= 1
//   - limit must be between 1 and config.MaxLimit
//
// Negative or zero values are parseable numbers and therefore fail
// validation; they are never silently replaced with defaults.
func ParseQuery(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, ok := coerceInt(pageStr); ok {
			if page < 1 {
				return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
			}
			params.Page = page
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, ok := coerceInt(limitStr); ok {
			if limit < 1 || limit > config.MaxLimit {
				return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
			}
			params.Limit = limit
		}
	}

	return params, nil
}

// coerceInt parses s as an integer, truncating any fractional part.
// The second return value is false when s is not numeric at all.
func coerceInt(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}
