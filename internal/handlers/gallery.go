package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/postpal/postpal-server/internal/logger"
	"github.com/postpal/postpal-server/internal/middlewares"
	"github.com/postpal/postpal-server/internal/models"
)

// GalleryReader defines the interface that the gallery service must implement for listing.
type GalleryReader interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.ImageDB, error)
}

// GalleryImage describes one image in the gallery response
// swagger:model GalleryImage
type GalleryImage struct {
	// Image id
	ID string `json:"id"`

	// Title
	Title string `json:"title"`

	// Base64-encoded image bytes
	Data string `json:"data"`

	// MIME type
	// default: image/png
	ContentType string `json:"content_type"`

	// Upload timestamp
	CreatedAt time.Time `json:"created_at"`
}

// GalleryResponse represents the gallery listing, newest first
// swagger:model GalleryResponse
type GalleryResponse struct {
	// Images, newest first
	Images []GalleryImage `json:"images"`
}

// NewGalleryHandler returns an HTTP handler listing the user's images.
// @Summary List gallery
// @Description Returns the authenticated user's images, newest first
// @Tags gallery
// @Produce json
// @Success 200 {object} handlers.GalleryResponse "Images"
// @Failure 401 {object} middlewares.AuthErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /gallery [get]
// @Security BearerAuth
func NewGalleryHandler(svc GalleryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MessageResponse{Message: "no token provided"})
			return
		}

		images, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list gallery", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Internal server error"})
			return
		}

		resp := GalleryResponse{Images: make([]GalleryImage, 0, len(images))}
		for _, img := range images {
			resp.Images = append(resp.Images, GalleryImage{
				ID:          img.ImageID.String(),
				Title:       img.Title,
				Data:        base64.StdEncoding.EncodeToString(img.Data),
				ContentType: img.ContentType,
				CreatedAt:   img.CreatedAt,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
