package feed_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"profeed/internal/domain/entity"
	"profeed/internal/handler/http/feed"
	"profeed/internal/handler/http/validate"
	"profeed/internal/repository"
)

type ingestEnvelope struct {
	Success bool     `json:"success"`
	Feed    feed.DTO `json:"feed"`
	Error   struct {
		Code    string                   `json:"code"`
		Message string                   `json:"message"`
		Errors  []entity.ValidationError `json:"errors"`
	} `json:"error"`
}

func postIngest(repo *stubFeedRepo, body string) *httptest.ResponseRecorder {
	svc, _, logger := newFixture(repo)
	h := feed.IngestHandler{Svc: svc, Validator: validate.New(), Logger: logger}

	req := httptest.NewRequest(http.MethodPost, "/api/internal/feeds", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeIngest(t *testing.T, rec *httptest.ResponseRecorder) ingestEnvelope {
	t.Helper()
	var env ingestEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return env
}

func TestIngest(t *testing.T) {
	repo := &stubFeedRepo{}

	rec := postIngest(repo, `{
		"title": "Release notes roundup",
		"summary": "A short summary of the story.",
		"category": "news",
		"url": "https://www.tmz.com/2026/01/01/story"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	env := decodeIngest(t, rec)
	if !env.Success {
		t.Error("success = false, want true")
	}
	if env.Feed.Source != "tmz.com" {
		t.Errorf("source = %q, want tmz.com (www. stripped)", env.Feed.Source)
	}
	if env.Feed.UserID != testSystemUser {
		t.Errorf("userId = %q, want the system user", env.Feed.UserID)
	}
	if env.Feed.Content != "A short summary of the story." {
		t.Errorf("content = %q, want the summary text", env.Feed.Content)
	}
	if len(repo.feeds) != 1 {
		t.Fatalf("len(feeds) = %d, want 1", len(repo.feeds))
	}
}

func TestIngestIgnoresSuppliedImageURL(t *testing.T) {
	repo := &stubFeedRepo{}

	rec := postIngest(repo, `{
		"title": "t",
		"summary": "s",
		"category": "news",
		"url": "https://example.com/story",
		"imageFirebaseUrl": "https://cdn.example.com/img.png"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if len(repo.feeds) != 1 {
		t.Fatalf("len(feeds) = %d, want 1", len(repo.feeds))
	}
	if repo.feeds[0].ImageURL != nil {
		t.Errorf("stored ImageURL = %q, want nil until enrichment sets it", *repo.feeds[0].ImageURL)
	}
	if env := decodeIngest(t, rec); env.Feed.ImageFirebaseURL != nil {
		t.Errorf("response imageFirebaseUrl = %q, want null", *env.Feed.ImageFirebaseURL)
	}
}

func TestIngestListsMissingFields(t *testing.T) {
	repo := &stubFeedRepo{}

	rec := postIngest(repo, `{"title": "only a title"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	env := decodeIngest(t, rec)
	if env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", env.Error.Code)
	}
	missing := map[string]bool{}
	for _, v := range env.Error.Errors {
		missing[v.Field] = true
	}
	for _, field := range []string{"summary", "category", "url"} {
		if !missing[field] {
			t.Errorf("missing field %q not listed: %v", field, env.Error.Errors)
		}
	}
	if len(repo.feeds) != 0 {
		t.Error("feed persisted despite validation failure")
	}
}

func TestIngestEchoesOffendingLength(t *testing.T) {
	repo := &stubFeedRepo{}

	rec := postIngest(repo, `{
		"title": "t",
		"summary": "`+strings.Repeat("s", 10007)+`",
		"category": "news",
		"url": "https://example.com"
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	env := decodeIngest(t, rec)
	var found bool
	for _, v := range env.Error.Errors {
		if v.Field == "summary" && strings.Contains(v.Message, "10007") {
			found = true
		}
	}
	if !found {
		t.Errorf("summary violation does not echo the offending length: %v", env.Error.Errors)
	}
}

func TestIngestUnparseableURLFallsBack(t *testing.T) {
	repo := &stubFeedRepo{}

	rec := postIngest(repo, `{
		"title": "t",
		"summary": "s",
		"category": "news",
		"url": "::::not a parseable url"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if env := decodeIngest(t, rec); env.Feed.Source != entity.UnknownSource {
		t.Errorf("source = %q, want %q", env.Feed.Source, entity.UnknownSource)
	}
}

func TestIngestSystemUserMissing(t *testing.T) {
	repo := &stubFeedRepo{createErr: repository.ErrFeedOwnerMissing}

	rec := postIngest(repo, `{
		"title": "t",
		"summary": "s",
		"category": "news",
		"url": "https://example.com"
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	env := decodeIngest(t, rec)
	if env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", env.Error.Code)
	}
	if !strings.Contains(env.Error.Message, "system user") {
		t.Errorf("message = %q, want mention of the system user", env.Error.Message)
	}
}

func TestIngestOtherInsertFailure(t *testing.T) {
	repo := &stubFeedRepo{createErr: errDBDown}

	rec := postIngest(repo, `{
		"title": "t",
		"summary": "s",
		"category": "news",
		"url": "https://example.com"
	}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if env := decodeIngest(t, rec); env.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("code = %q, want INTERNAL_ERROR", env.Error.Code)
	}
}

var errDBDown = errors.New("db down")

func TestIngestRejectsInvalidJSON(t *testing.T) {
	repo := &stubFeedRepo{}

	rec := postIngest(repo, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
