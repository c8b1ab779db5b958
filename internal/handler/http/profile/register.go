package profile

import (
	"log/slog"
	"net/http"

	"profeed/internal/handler/http/auth"
	"profeed/internal/handler/http/validate"
	profUC "profeed/internal/usecase/profile"
)

// Register registers the profile HTTP handlers with the given mux.
// Both endpoints require bearer token authentication.
func Register(mux *http.ServeMux, svc *profUC.Service, validator *validate.Validator, token string, logger *slog.Logger) {
	mux.Handle("POST /api/profiles", auth.RequireToken(token, CreateHandler{
		Svc:       svc,
		Validator: validator,
		Logger:    logger,
	}))
	mux.Handle("GET /api/profiles", auth.RequireToken(token, GetHandler{
		Svc:    svc,
		Logger: logger,
	}))
}
