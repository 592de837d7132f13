package tokenstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/chatsync/internal/pkg/constants"
	"github.com/piresc/chatsync/internal/pkg/models"
)

// RedisRepository persists session tokens in a Redis hash
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository creates a repository; ttl 0 keeps tokens forever
func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, ttl: ttl}
}

func sessionKey(session string) string {
	return fmt.Sprintf(constants.KeySessionTokens, session)
}

// Save stores the token pair of session
func (r *RedisRepository) Save(ctx context.Context, session string, creds models.Credentials) error {
	key := sessionKey(session)

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key,
		constants.FieldAccessToken, creds.AccessToken,
		constants.FieldRefreshToken, creds.RefreshToken,
	)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session tokens: %w", err)
	}
	return nil
}

// Load returns the stored token pair, empty credentials when none is stored
func (r *RedisRepository) Load(ctx context.Context, session string) (models.Credentials, error) {
	values, err := r.client.HGetAll(ctx, sessionKey(session)).Result()
	if err != nil {
		return models.Credentials{}, fmt.Errorf("failed to load session tokens: %w", err)
	}
	return models.Credentials{
		AccessToken:  values[constants.FieldAccessToken],
		RefreshToken: values[constants.FieldRefreshToken],
	}, nil
}

// Delete removes the stored token pair
func (r *RedisRepository) Delete(ctx context.Context, session string) error {
	if err := r.client.Del(ctx, sessionKey(session)).Err(); err != nil {
		return fmt.Errorf("failed to delete session tokens: %w", err)
	}
	return nil
}
