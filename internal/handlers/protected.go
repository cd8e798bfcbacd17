package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/postpal/postpal-server/internal/middlewares"
)

// ProtectedResourceResponse represents the demo protected payload
// swagger:model ProtectedResourceResponse
type ProtectedResourceResponse struct {
	// Message
	// default: You have accessed a protected resource
	Message string `json:"message"`

	// Authenticated user id
	UserID string `json:"user_id"`
}

// NewProtectedResourceHandler returns an HTTP handler that echoes the
// authenticated identity. It exists to exercise the auth middleware.
// @Summary Access a protected resource
// @Description Returns the authenticated user id resolved from the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.ProtectedResourceResponse "Authenticated"
// @Failure 401 {object} middlewares.AuthErrorResponse "Missing, malformed, invalid or expired token"
// @Router /protected-resource [get]
// @Security BearerAuth
func NewProtectedResourceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MessageResponse{Message: "no token provided"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProtectedResourceResponse{
			Message: "You have accessed a protected resource",
			UserID:  userID.String(),
		})
	}
}
