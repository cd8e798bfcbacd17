package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/postpal/postpal-server/internal/logger"
	"github.com/postpal/postpal-server/internal/middlewares"
	"github.com/postpal/postpal-server/internal/services"
)

// ScoreReader defines the interface that the score service must implement for reads.
type ScoreReader interface {
	GetScore(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ScoreWriter defines the interface that the score service must implement for updates.
type ScoreWriter interface {
	UpdateScore(ctx context.Context, userID uuid.UUID, score int64) (int64, error)
}

// ScoreResponse represents the user's current score
// swagger:model ScoreResponse
type ScoreResponse struct {
	// Score
	// default: 0
	Score int64 `json:"score"`
}

// UpdateScoreRequest represents the JSON body for a score update
// swagger:model UpdateScoreRequest
type UpdateScoreRequest struct {
	// New score value
	// required: true
	// default: 42
	Score *float64 `json:"score"`
}

// NewGetScoreHandler returns an HTTP handler for fetching the user's score.
// @Summary Get score
// @Description Returns the authenticated user's current score
// @Tags score
// @Produce json
// @Success 200 {object} handlers.ScoreResponse "Current score"
// @Failure 401 {object} middlewares.AuthErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MessageResponse "User not found"
// @Router /score [get]
// @Security BearerAuth
func NewGetScoreHandler(svc ScoreReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MessageResponse{Message: "no token provided"})
			return
		}

		score, err := svc.GetScore(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{Message: "User not found"})
			default:
				logger.Log.Errorw("failed to get score", "userID", userID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{Message: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ScoreResponse{Score: score})
	}
}

// NewUpdateScoreHandler returns an HTTP handler for updating the user's score.
// @Summary Update score
// @Description Sets the authenticated user's score and returns the stored value
// @Tags score
// @Accept json
// @Produce json
// @Param request body handlers.UpdateScoreRequest true "Score update request"
// @Success 200 {object} handlers.ScoreResponse "Stored score"
// @Failure 400 {object} handlers.MessageResponse "Score must be a number"
// @Failure 401 {object} middlewares.AuthErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MessageResponse "User not found"
// @Router /score [post]
// @Security BearerAuth
func NewUpdateScoreHandler(svc ScoreWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MessageResponse{Message: "no token provided"})
			return
		}

		var req UpdateScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Score == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Score must be a number"})
			return
		}

		stored, err := svc.UpdateScore(r.Context(), userID, int64(*req.Score))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{Message: "User not found"})
			default:
				logger.Log.Errorw("failed to update score", "userID", userID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{Message: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ScoreResponse{Score: stored})
	}
}
