// Command check_feed_links verifies that the URLs stored on feeds still
// resolve. It reads every feed row, issues a GET against each distinct URL,
// and writes a text report plus a JSON report for tooling. URLs that moved
// permanently produce UPDATE statements for manual review.
//
// Usage:
//
//	DATABASE_URL=postgres://... go run scripts/check_feed_links.go
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// LinkDiagnostic is the check result for a single distinct feed URL.
type LinkDiagnostic struct {
	URL          string   `json:"url"`
	Status       string   `json:"status"` // "OK", "HTTP_ERROR", "TIMEOUT", "REDIRECT", "REQUEST_ERROR"
	HTTPCode     int      `json:"http_code"`
	RedirectURL  string   `json:"redirect_url,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
	ResponseTime int64    `json:"response_time_ms"`
	FeedIDs      []string `json:"feed_ids"`
}

type feedLink struct {
	ID  string
	URL string
}

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	links, err := fetchFeedLinks(db)
	if err != nil {
		log.Fatalf("Failed to fetch feed links: %v", err)
	}

	// Group feeds by URL so each distinct URL is checked once.
	byURL := make(map[string][]string)
	order := make([]string, 0)
	for _, link := range links {
		if _, seen := byURL[link.URL]; !seen {
			order = append(order, link.URL)
		}
		byURL[link.URL] = append(byURL[link.URL], link.ID)
	}

	log.Printf("Checking %d distinct URLs across %d feeds...", len(order), len(links))

	diagnostics := make([]LinkDiagnostic, 0, len(order))
	for i, url := range order {
		log.Printf("[%d/%d] %s", i+1, len(order), url)
		diag := checkLink(url, 30*time.Second)
		diag.FeedIDs = byURL[url]
		diagnostics = append(diagnostics, diag)

		// Rate limiting to be nice to servers
		time.Sleep(500 * time.Millisecond)
	}

	generateReport(diagnostics)
	generateJSONReport(diagnostics)
	generateSQLFixes(diagnostics)
}

func fetchFeedLinks(db *sql.DB) ([]feedLink, error) {
	rows, err := db.Query("SELECT id, url FROM feeds ORDER BY url, id")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("Failed to close rows: %v", err)
		}
	}()

	var links []feedLink
	for rows.Next() {
		var l feedLink
		if err := rows.Scan(&l.ID, &l.URL); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func checkLink(url string, timeout time.Duration) LinkDiagnostic {
	diag := LinkDiagnostic{URL: url}

	startTime := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		diag.Status = "REQUEST_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}
	req.Header.Set("User-Agent", "Profeed-LinkCheck/1.0")

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects")
			}
			return nil
		},
	}

	resp, err := client.Do(req)
	diag.ResponseTime = time.Since(startTime).Milliseconds()

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			diag.Status = "TIMEOUT"
			diag.ErrorMessage = fmt.Sprintf("Request timeout after %v", timeout)
		} else {
			diag.Status = "HTTP_ERROR"
			diag.ErrorMessage = err.Error()
		}
		return diag
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Failed to close response body: %v", err)
		}
	}()

	diag.HTTPCode = resp.StatusCode

	if resp.Request.URL.String() != url {
		diag.RedirectURL = resp.Request.URL.String()
		diag.Status = "REDIRECT"
		return diag
	}

	if resp.StatusCode != http.StatusOK {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, resp.Status)
		return diag
	}

	diag.Status = "OK"
	return diag
}

func writef(f *os.File, format string, args ...any) {
	if _, err := fmt.Fprintf(f, format, args...); err != nil {
		log.Printf("Failed to write to report: %v", err)
	}
}

func generateReport(diagnostics []LinkDiagnostic) {
	f, err := os.Create("feed_link_report.txt")
	if err != nil {
		log.Printf("Failed to create report file: %v", err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Failed to close report file: %v", err)
		}
	}()

	statusCount := make(map[string]int)
	var okCount, errorCount int
	for _, d := range diagnostics {
		statusCount[d.Status]++
		if d.Status == "OK" || d.Status == "REDIRECT" {
			okCount++
		} else {
			errorCount++
		}
	}

	writef(f, "Feed Link Report\n")
	writef(f, "Generated: %s\n", time.Now().Format(time.RFC3339))
	writef(f, "Distinct URLs: %d\n\n", len(diagnostics))

	writef(f, "SUMMARY:\n")
	writef(f, "  Working: %d\n", okCount)
	writef(f, "  Broken:  %d\n", errorCount)
	writef(f, "\nSTATUS BREAKDOWN:\n")
	for status, count := range statusCount {
		writef(f, "  %s: %d\n", status, count)
	}
	writef(f, "\n")

	writef(f, "BROKEN LINKS (%d):\n", errorCount)
	for _, d := range diagnostics {
		if d.Status == "OK" || d.Status == "REDIRECT" {
			continue
		}
		writef(f, "URL: %s\n", d.URL)
		writef(f, "  Status: %s | HTTP: %d\n", d.Status, d.HTTPCode)
		writef(f, "  Error: %s\n", d.ErrorMessage)
		writef(f, "  Feeds: %s\n\n", strings.Join(d.FeedIDs, ", "))
	}

	log.Println("Text report generated: feed_link_report.txt")
}

func generateJSONReport(diagnostics []LinkDiagnostic) {
	f, err := os.Create("feed_link_report.json")
	if err != nil {
		log.Printf("Failed to create JSON report: %v", err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Failed to close JSON report file: %v", err)
		}
	}()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(diagnostics); err != nil {
		log.Printf("Failed to write JSON report: %v", err)
		return
	}

	log.Println("JSON report generated: feed_link_report.json")
}

func generateSQLFixes(diagnostics []LinkDiagnostic) {
	f, err := os.Create("feed_link_fixes.sql")
	if err != nil {
		log.Printf("Failed to create SQL fixes file: %v", err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Failed to close SQL fixes file: %v", err)
		}
	}()

	writef(f, "-- Feed URL fixes for moved links (review before applying)\n")
	writef(f, "-- Generated: %s\n\n", time.Now().Format(time.RFC3339))

	for _, d := range diagnostics {
		if d.RedirectURL == "" || d.RedirectURL == d.URL {
			continue
		}
		writef(f, "UPDATE feeds SET url = '%s' WHERE url = '%s';\n",
			strings.ReplaceAll(d.RedirectURL, "'", "''"),
			strings.ReplaceAll(d.URL, "'", "''"))
	}

	log.Println("SQL fixes generated: feed_link_fixes.sql")
}
