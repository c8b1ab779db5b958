package http

import (
	"net/http"

	"profeed/internal/handler/http/respond"
)

// RootHandler serves the service banner at the root path.
type RootHandler struct {
	Service string
	Version string
}

// ServeHTTP returns basic service identification.
// @Summary      Service banner
// @Description  Returns the service name and version.
// @Tags         meta
// @Produce      json
// @Success      200 {object} map[string]any
// @Router       / [get]
func (h RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"service": h.Service,
		"version": h.Version,
		"docs":    "/swagger/",
	})
}
