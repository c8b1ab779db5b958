package feed

import (
	"log/slog"
	"net/http"
	"time"

	"profeed/internal/common/pagination"
	"profeed/internal/handler/http/respond"
	"profeed/internal/observability/logging"
	feedUC "profeed/internal/usecase/feed"
)

type PublicHandler struct {
	Svc           *feedUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists platform-generated feeds, newest first.
// @Summary      List public feeds
// @Description  Returns one page of platform-generated feeds ordered by timestamp descending.
// @Tags         feeds
// @Produce      json
// @Param        page  query int false "Page number (1-based)" default(1) minimum(1)
// @Param        limit query int false "Items per page" default(20) minimum(1) maximum(100)
// @Success      200 {object} listResponse
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      500 {string} string "Internal error"
// @Router       /api/feeds/public [get]
func (h PublicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQuery(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("validation")
		respond.Error(w, http.StatusBadRequest, respond.CodeValidationError, err.Error())
		return
	}

	result, err := h.Svc.ListPublic(ctx, params)
	if err != nil {
		logger.Error("failed to list public feeds", slog.Any("error", err))
		pagination.RecordError("database")
		respond.Internal(w, err)
		return
	}

	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", time.Since(startTime).Seconds())
	pagination.UpdateTotalCount(result.Pagination.TotalCount)

	respond.JSON(w, http.StatusOK, listResponse{
		Success:    true,
		Feeds:      toDTOs(result.Feeds),
		Pagination: result.Pagination,
	})
}
