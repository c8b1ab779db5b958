package feed

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"profeed/internal/handler/http/respond"
	"profeed/internal/handler/http/validate"
	"profeed/internal/observability/logging"
	feedUC "profeed/internal/usecase/feed"
)

type IngestHandler struct {
	Svc       *feedUC.Service
	Validator *validate.Validator
	Logger    *slog.Logger
}

// ingestRequest carries the client-supplied fields. The stored image URL is
// not among them; it stays nil until the enrichment job sets it.
type ingestRequest struct {
	Title    string `json:"title" validate:"required,max=500"`
	Summary  string `json:"summary" validate:"required,max=10000"`
	Category string `json:"category" validate:"required"`
	URL      string `json:"url" validate:"required"`
}

// ServeHTTP ingests a platform-generated feed.
// @Summary      Ingest feed
// @Description  Stores a new feed owned by the system user. The source is derived from the URL's hostname.
// @Tags         feeds
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        feed body ingestRequest true "Feed fields"
// @Success      201 {object} ingestResponse
// @Failure      400 {string} string "Validation failed or system user missing"
// @Failure      401 {string} string "Missing or malformed Authorization header"
// @Failure      403 {string} string "Invalid token"
// @Failure      500 {string} string "Internal error"
// @Router       /api/internal/feeds [post]
func (h IngestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeValidationError,
			"request body must be valid JSON")
		return
	}

	if violations := h.Validator.Struct(req); violations != nil {
		logger.Warn("feed ingest rejected",
			slog.Int("violations", len(violations)))
		respond.ValidationFailed(w, violations)
		return
	}

	created, err := h.Svc.Ingest(ctx, feedUC.IngestInput{
		Title:    req.Title,
		Summary:  req.Summary,
		Category: req.Category,
		URL:      req.URL,
	})
	if err != nil {
		if errors.Is(err, feedUC.ErrSystemUserMissing) {
			respond.Error(w, http.StatusBadRequest, respond.CodeValidationError,
				"the configured system user does not exist; feed ingestion is unavailable")
			return
		}
		logger.Error("feed ingest failed", slog.Any("error", err))
		respond.Internal(w, err)
		return
	}

	logger.Info("feed ingested",
		slog.String("feed_id", created.ID),
		slog.String("source", created.Source))
	respond.JSON(w, http.StatusCreated, ingestResponse{Success: true, Feed: toDTO(created)})
}
