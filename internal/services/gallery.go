package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/postpal/postpal-server/internal/logger"
	"github.com/postpal/postpal-server/internal/models"
)

// MaxImageBytes is the decoded-size limit for uploaded images.
const MaxImageBytes = 5 * 1024 * 1024

var (
	ErrInvalidImageData = errors.New("invalid image data")
	ErrImageTooLarge    = errors.New("image size exceeds 5MB limit")
)

// ImageSaver persists uploaded images.
type ImageSaver interface {
	Save(ctx context.Context, userID uuid.UUID, title string, data []byte, contentType string) (uuid.UUID, error)
}

// ImageLister reads a user's images.
type ImageLister interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ImageDB, error)
}

// GalleryService handles image upload and listing.
type GalleryService struct {
	reader ImageLister
	writer ImageSaver
	events EventWriter
}

// NewGalleryService creates a new GalleryService instance.
func NewGalleryService(reader ImageLister, writer ImageSaver, events EventWriter) *GalleryService {
	return &GalleryService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

// parseDataURI splits a "data:<mime>;base64,<payload>" string into its
// content type and base64 payload.
func parseDataURI(uri string) (contentType, payload string, err error) {
	header, payload, found := strings.Cut(uri, ",")
	if !found {
		return "", "", ErrInvalidImageData
	}

	if !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return "", "", ErrInvalidImageData
	}

	contentType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	if contentType == "" {
		return "", "", ErrInvalidImageData
	}

	return contentType, payload, nil
}

// Upload decodes a data-URI image, enforces the size limit, and stores
// it for the user. An empty title defaults to "Untitled".
func (svc *GalleryService) Upload(ctx context.Context, userID uuid.UUID, title, dataURI string) (*models.ImageDB, error) {
	contentType, payload, err := parseDataURI(dataURI)
	if err != nil {
		return nil, err
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		logger.Log.Errorw("failed to decode image payload", "userID", userID, "err", err)
		return nil, ErrInvalidImageData
	}

	if len(decoded) > MaxImageBytes {
		return nil, ErrImageTooLarge
	}

	if title == "" {
		title = "Untitled"
	}

	imageID, err := svc.writer.Save(ctx, userID, title, decoded, contentType)
	if err != nil {
		logger.Log.Errorw("failed to save image", "userID", userID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, userID, OpImageUploaded)

	return &models.ImageDB{
		ImageID:     imageID,
		UserID:      userID,
		Title:       title,
		Data:        decoded,
		ContentType: contentType,
	}, nil
}

// List returns the user's images, newest first.
func (svc *GalleryService) List(ctx context.Context, userID uuid.UUID) ([]models.ImageDB, error) {
	images, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list images", "userID", userID, "err", err)
		return nil, err
	}
	return images, nil
}
