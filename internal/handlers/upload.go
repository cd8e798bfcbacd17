package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/postpal/postpal-server/internal/logger"
	"github.com/postpal/postpal-server/internal/middlewares"
	"github.com/postpal/postpal-server/internal/models"
	"github.com/postpal/postpal-server/internal/services"
)

// Uploader defines the interface that the gallery service must implement for uploads.
type Uploader interface {
	Upload(ctx context.Context, userID uuid.UUID, title, dataURI string) (*models.ImageDB, error)
}

// UploadRequest represents the JSON body for an image upload
// swagger:model UploadRequest
type UploadRequest struct {
	// Optional display title
	// default: Untitled
	Title string `json:"title"`

	// Image as a base64 data URI
	// required: true
	// default: data:image/png;base64,iVBORw0KGgo=
	Image string `json:"image"`
}

// UploadedImage describes the stored image in the upload response
// swagger:model UploadedImage
type UploadedImage struct {
	// Image id
	ID string `json:"id"`

	// Title
	// default: Untitled
	Title string `json:"title"`
}

// UploadResponse represents a successful upload response
// swagger:model UploadResponse
type UploadResponse struct {
	// Message
	// default: Image uploaded successfully
	Message string `json:"message"`

	// Stored image
	Image UploadedImage `json:"image"`
}

// NewUploadHandler returns an HTTP handler for uploading an image.
// @Summary Upload an image
// @Description Stores a base64 data-URI image for the authenticated user. Decoded payloads over 5MB are rejected.
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body handlers.UploadRequest true "Upload request"
// @Success 201 {object} handlers.UploadResponse "Image uploaded"
// @Failure 400 {object} handlers.MessageResponse "Missing, malformed or oversized image"
// @Failure 401 {object} middlewares.AuthErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /upload [post]
// @Security BearerAuth
func NewUploadHandler(svc Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MessageResponse{Message: "no token provided"})
			return
		}

		var req UploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Image data is required"})
			return
		}

		if req.Image == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Image data is required"})
			return
		}

		image, err := svc.Upload(r.Context(), userID, req.Title, req.Image)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidImageData):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MessageResponse{Message: "Invalid image data"})
			case errors.Is(err, services.ErrImageTooLarge):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MessageResponse{Message: "Image size exceeds 5MB limit"})
			default:
				logger.Log.Errorw("failed to upload image", "userID", userID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{Message: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UploadResponse{
			Message: "Image uploaded successfully",
			Image: UploadedImage{
				ID:    image.ImageID.String(),
				Title: image.Title,
			},
		})
	}
}
