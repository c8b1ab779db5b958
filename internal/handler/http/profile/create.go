package profile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"profeed/internal/handler/http/respond"
	"profeed/internal/handler/http/validate"
	"profeed/internal/observability/logging"
	profUC "profeed/internal/usecase/profile"
)

type CreateHandler struct {
	Svc       *profUC.Service
	Validator *validate.Validator
	Logger    *slog.Logger
}

type createRequest struct {
	UserID         string   `json:"userId" validate:"required_without=PhoneNumber"`
	PhoneNumber    string   `json:"phoneNumber" validate:"required_without=UserID"`
	Headline       string   `json:"headline" validate:"omitempty,max=200"`
	Summary        string   `json:"summary" validate:"omitempty,max=3000"`
	Skills         []string `json:"skills" validate:"omitempty,max=50,unique,dive,max=100"`
	Certifications []string `json:"certifications" validate:"omitempty,max=30,unique,dive,max=200"`
	Languages      []string `json:"languages" validate:"omitempty,max=20,unique,dive,max=50"`
	Score          float64  `json:"score" validate:"gte=0,lte=100,twodecimals"`
	ShareURL       string   `json:"shareUrl" validate:"omitempty,url,max=500"`
}

// ServeHTTP creates a profile for an existing user.
// @Summary      Create profile
// @Description  Creates a profile for the user identified by userId or phoneNumber. Each user can have at most one profile.
// @Tags         profiles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        profile body createRequest true "Profile fields"
// @Success      201 {object} profileResponse
// @Failure      400 {string} string "Validation failed"
// @Failure      401 {string} string "Missing or malformed Authorization header"
// @Failure      403 {string} string "Invalid token"
// @Failure      404 {string} string "User not found"
// @Failure      409 {string} string "Profile already exists"
// @Failure      500 {string} string "Internal error"
// @Router       /api/profiles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeValidationError,
			"request body must be valid JSON")
		return
	}

	if violations := h.Validator.Struct(req); violations != nil {
		logger.Warn("profile create rejected",
			slog.Int("violations", len(violations)))
		respond.ValidationFailed(w, violations)
		return
	}

	created, err := h.Svc.Create(ctx, profUC.CreateInput{
		UserID:         req.UserID,
		PhoneNumber:    req.PhoneNumber,
		Headline:       req.Headline,
		Summary:        req.Summary,
		Skills:         req.Skills,
		Certifications: req.Certifications,
		Languages:      req.Languages,
		Score:          req.Score,
		ShareURL:       req.ShareURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, profUC.ErrUserNotFound):
			respond.Error(w, http.StatusNotFound, respond.CodeUserNotFound,
				"user not found")
		case errors.Is(err, profUC.ErrDuplicateProfile):
			respond.Error(w, http.StatusConflict, respond.CodeDuplicate,
				"profile already exists for this user")
		default:
			logger.Error("profile create failed", slog.Any("error", err))
			respond.Internal(w, err)
		}
		return
	}

	logger.Info("profile created", slog.String("user_id", created.UserID))
	respond.JSON(w, http.StatusCreated, profileResponse{Success: true, Profile: toDTO(created)})
}
