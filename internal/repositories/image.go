package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/postpal/postpal-server/internal/logger"
	"github.com/postpal/postpal-server/internal/models"
)

// ImageWriteRepository handles image write operations
type ImageWriteRepository struct {
	db *sqlx.DB
}

func NewImageWriteRepository(db *sqlx.DB) *ImageWriteRepository {
	return &ImageWriteRepository{db: db}
}

// Save stores an uploaded image and returns its generated id.
func (r *ImageWriteRepository) Save(ctx context.Context, userID uuid.UUID, title string, data []byte, contentType string) (uuid.UUID, error) {
	const query = `
		INSERT INTO images (image_id, user_id, title, data, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	imageID := uuid.New()
	_, err := r.db.ExecContext(ctx, query, imageID, userID, title, data, contentType)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{imageID, userID, title, contentType},
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return imageID, nil
}

// ImageReadRepository handles image read operations
type ImageReadRepository struct {
	db *sqlx.DB
}

func NewImageReadRepository(db *sqlx.DB) *ImageReadRepository {
	return &ImageReadRepository{db: db}
}

// ListByUserID returns all images owned by the user, newest first.
func (r *ImageReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ImageDB, error) {
	const query = `
		SELECT image_id, user_id, title, data, content_type, created_at
		FROM images
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var images []models.ImageDB
	err := r.db.SelectContext(ctx, &images, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(images),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return images, nil
}
