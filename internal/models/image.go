package models

import (
	"time"

	"github.com/google/uuid"
)

// ImageDB represents an uploaded image record in the database
type ImageDB struct {
	ImageID     uuid.UUID `json:"id" db:"image_id"`               // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`           // Owning user
	Title       string    `json:"title" db:"title"`               // Display title
	Data        []byte    `json:"-" db:"data"`                    // Raw decoded image bytes
	ContentType string    `json:"content_type" db:"content_type"` // MIME type from the data URI
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Upload timestamp
}
