package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/postpal/postpal-server/internal/logger"
)

// ScoreCacheRepository provides cached user scores using Redis
type ScoreCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached scores
}

// NewScoreCacheRepository creates a new repository instance with the given TTL
func NewScoreCacheRepository(client *redis.Client, expiration time.Duration) *ScoreCacheRepository {
	return &ScoreCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func scoreKey(userID uuid.UUID) string {
	return fmt.Sprintf("score:%s", userID)
}

// GetScore fetches a cached score for the user. A cache miss is
// returned as an error.
func (r *ScoreCacheRepository) GetScore(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := scoreKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache read",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return 0, fmt.Errorf("score not found in cache for user %s", userID)
		}
		return 0, err
	}

	score, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Infow("cache read",
			"key", key,
			"value", val,
			"error", err,
		)
		return 0, err
	}

	logger.Log.Infow("cache read",
		"key", key,
		"result", score,
	)

	return score, nil
}

// SetScore caches the score for a user with the configured expiration
func (r *ScoreCacheRepository) SetScore(ctx context.Context, userID uuid.UUID, score int64) error {
	key := scoreKey(userID)
	err := r.client.Set(ctx, key, strconv.FormatInt(score, 10), r.exp).Err()

	logger.Log.Infow("cache write",
		"key", key,
		"score", score,
		"error", err,
	)

	return err
}
