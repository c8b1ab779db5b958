package feed

import (
	"log/slog"
	"net/http"

	"profeed/internal/common/pagination"
	"profeed/internal/handler/http/auth"
	"profeed/internal/handler/http/validate"
	feedUC "profeed/internal/usecase/feed"
)

// Register registers the feed HTTP handlers with the given mux.
// The literal /api/feeds/public segment must be registered alongside the
// {userId} wildcard; the mux prefers the more specific pattern.
// Listing routes are unauthenticated; ingestion requires the bearer token.
func Register(mux *http.ServeMux, svc *feedUC.Service, validator *validate.Validator, paginationCfg pagination.Config, token string, logger *slog.Logger) {
	mux.Handle("GET /api/feeds/public", PublicHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /api/feeds/{userId}", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /api/feeds", AdminHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})

	mux.Handle("POST /api/internal/feeds", auth.RequireToken(token, IngestHandler{
		Svc:       svc,
		Validator: validator,
		Logger:    logger,
	}))
}
