package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/postpal/postpal-server/internal/logger"
	"github.com/postpal/postpal-server/internal/models"
)

var (
	// ErrUserNotFound is returned when an authenticated user's row is
	// gone from the store.
	ErrUserNotFound = errors.New("user not found")
)

// UserGetter reads a user record by id.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ScoreUpdater persists a new score value.
type ScoreUpdater interface {
	UpdateScore(ctx context.Context, userID uuid.UUID, score int64) (int64, bool, error)
}

// ScoreCache caches scores between reads.
type ScoreCache interface {
	GetScore(ctx context.Context, userID uuid.UUID) (int64, error)
	SetScore(ctx context.Context, userID uuid.UUID, score int64) error
}

// ScoreService handles score reads and updates with a read-through cache.
type ScoreService struct {
	reader UserGetter
	writer ScoreUpdater
	cache  ScoreCache
	events EventWriter
}

// NewScoreService creates a new ScoreService instance.
func NewScoreService(reader UserGetter, writer ScoreUpdater, cache ScoreCache, events EventWriter) *ScoreService {
	return &ScoreService{
		reader: reader,
		writer: writer,
		cache:  cache,
		events: events,
	}
}

// GetScore returns the user's current score. Cache failures fall back
// to the database and never fail the read.
func (svc *ScoreService) GetScore(ctx context.Context, userID uuid.UUID) (int64, error) {
	if svc.cache != nil {
		if score, err := svc.cache.GetScore(ctx, userID); err == nil {
			return score, nil
		}
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.SetScore(ctx, userID, user.Score); err != nil {
			logger.Log.Errorw("failed to cache score", "userID", userID, "err", err)
		}
	}

	return user.Score, nil
}

// UpdateScore sets the user's score and returns the stored value.
func (svc *ScoreService) UpdateScore(ctx context.Context, userID uuid.UUID, score int64) (int64, error) {
	stored, found, err := svc.writer.UpdateScore(ctx, userID, score)
	if err != nil {
		logger.Log.Errorw("failed to update score", "userID", userID, "score", score, "err", err)
		return 0, err
	}
	if !found {
		return 0, ErrUserNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.SetScore(ctx, userID, stored); err != nil {
			logger.Log.Errorw("failed to cache score", "userID", userID, "err", err)
		}
	}

	publishEvent(ctx, svc.events, userID, OpScoreUpdated)
	return stored, nil
}
