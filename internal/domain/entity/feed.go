package entity

import (
	"net/url"
	"strings"
	"time"
)

// UnknownSource is stored when a feed URL cannot be parsed into a hostname.
const UnknownSource = "unknown-source"

// Feed is a single content item associated with a user. Feeds owned by the
// configured system user make up the public feed set.
type Feed struct {
	ID        string
	UserID    string
	Source    string
	Title     string
	URL       string
	Content   string
	ImageURL  *string // populated by a downstream enrichment job, never here
	CreatedAt time.Time
}

// DeriveSource extracts the source name from a feed URL: the hostname with
// any leading "www." stripped. Unparseable input (or input with no host)
// falls back to UnknownSource rather than failing ingestion.
//
// Examples:
//   - "https://www.tmz.com/x"      -> "tmz.com"
//   - "https://news.example.co.uk" -> "news.example.co.uk"
//   - "not a url"                  -> "unknown-source"
func DeriveSource(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return UnknownSource
	}
	host := u.Hostname()
	if host == "" {
		return UnknownSource
	}
	return strings.TrimPrefix(host, "www.")
}
