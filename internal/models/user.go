package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`                 // Primary key
	Username     string    `json:"username" db:"username"`          // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`            // Hashed password
	Score        int64     `json:"score" db:"score"`                // Current score, defaults to 0
	CreatedAt    time.Time `json:"created_at" db:"created_at"`      // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`      // Last update timestamp
}
