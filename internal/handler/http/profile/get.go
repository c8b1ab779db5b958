package profile

import (
	"errors"
	"log/slog"
	"net/http"

	"profeed/internal/domain/entity"
	"profeed/internal/handler/http/respond"
	"profeed/internal/observability/logging"
	profUC "profeed/internal/usecase/profile"
)

type GetHandler struct {
	Svc    *profUC.Service
	Logger *slog.Logger
}

// ServeHTTP fetches a profile by user ID or phone number.
// @Summary      Fetch profile
// @Description  Returns the profile identified by exactly one of userId or phoneNumber.
// @Tags         profiles
// @Security     BearerAuth
// @Produce      json
// @Param        userId      query string false "User identifier"
// @Param        phoneNumber query string false "Phone number in international format"
// @Success      200 {object} profileResponse
// @Failure      400 {string} string "Exactly one identifier required"
// @Failure      401 {string} string "Missing or malformed Authorization header"
// @Failure      403 {string} string "Invalid token"
// @Failure      404 {string} string "User or profile not found"
// @Failure      500 {string} string "Internal error"
// @Router       /api/profiles [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	userID := r.URL.Query().Get("userId")
	phone := r.URL.Query().Get("phoneNumber")

	// Exactly one identifier: not both, not neither
	if (userID == "") == (phone == "") {
		respond.Error(w, http.StatusBadRequest, respond.CodeValidationError,
			"exactly one of userId or phoneNumber must be provided")
		return
	}

	var (
		p   *entity.Profile
		err error
	)
	if userID != "" {
		p, err = h.Svc.GetByUserID(ctx, userID)
	} else {
		p, err = h.Svc.GetByPhone(ctx, phone)
	}
	if err != nil {
		switch {
		case errors.Is(err, profUC.ErrUserNotFound):
			respond.Error(w, http.StatusNotFound, respond.CodeUserNotFound,
				"user not found")
		case errors.Is(err, profUC.ErrProfileNotFound):
			respond.Error(w, http.StatusNotFound, respond.CodeProfileNotFound,
				"profile not found")
		default:
			logger.Error("profile fetch failed", slog.Any("error", err))
			respond.Internal(w, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, profileResponse{Success: true, Profile: toDTO(p)})
}
