package profile_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"profeed/internal/domain/entity"
	"profeed/internal/handler/http/profile"
)

func getProfile(h profile.GetHandler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGetProfileByUserID(t *testing.T) {
	users, profiles, _, get := newHandlers(t)
	users.users["user-1"] = "+15551230001"
	profiles.data["user-1"] = &entity.Profile{
		UserID:    "user-1",
		Headline:  "Backend Engineer",
		CreatedAt: time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC),
	}

	rec := getProfile(get, "/api/profiles?userId=user-1")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	env := decode(t, rec)
	if !env.Success {
		t.Error("success = false, want true")
	}
	if env.Profile.Headline != "Backend Engineer" {
		t.Errorf("headline = %q, want Backend Engineer", env.Profile.Headline)
	}
}

func TestGetProfileByPhone(t *testing.T) {
	users, profiles, _, get := newHandlers(t)
	users.users["user-1"] = "+15551230001"
	profiles.data["user-1"] = &entity.Profile{UserID: "user-1"}

	rec := getProfile(get, "/api/profiles?phoneNumber=%2B15551230001")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if env := decode(t, rec); env.Profile.UserID != "user-1" {
		t.Errorf("profile.userId = %q, want user-1", env.Profile.UserID)
	}
}

func TestGetProfileBothIdentifiers(t *testing.T) {
	_, _, _, get := newHandlers(t)

	rec := getProfile(get, "/api/profiles?userId=user-1&phoneNumber=%2B15551230001")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env := decode(t, rec); env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", env.Error.Code)
	}
}

func TestGetProfileNoIdentifiers(t *testing.T) {
	_, _, _, get := newHandlers(t)

	rec := getProfile(get, "/api/profiles")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetProfileUserMissing(t *testing.T) {
	_, _, _, get := newHandlers(t)

	rec := getProfile(get, "/api/profiles?userId=ghost")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if env := decode(t, rec); env.Error.Code != "USER_NOT_FOUND" {
		t.Errorf("code = %q, want USER_NOT_FOUND", env.Error.Code)
	}
}

func TestGetProfileProfileMissing(t *testing.T) {
	users, _, _, get := newHandlers(t)
	users.users["user-1"] = "+15551230001"

	rec := getProfile(get, "/api/profiles?userId=user-1")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if env := decode(t, rec); env.Error.Code != "PROFILE_NOT_FOUND" {
		t.Errorf("code = %q, want PROFILE_NOT_FOUND", env.Error.Code)
	}
}

func TestGetProfileIdempotent(t *testing.T) {
	users, profiles, _, get := newHandlers(t)
	users.users["user-1"] = "+15551230001"
	profiles.data["user-1"] = &entity.Profile{
		UserID:   "user-1",
		Headline: "Backend Engineer",
		Skills:   []string{"Go"},
	}

	first := getProfile(get, "/api/profiles?userId=user-1")
	second := getProfile(get, "/api/profiles?userId=user-1")

	if first.Body.String() != second.Body.String() {
		t.Error("repeated fetch with no intervening writes returned different bodies")
	}
}
