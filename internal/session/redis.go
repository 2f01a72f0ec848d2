package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"voice-task-uploader/internal/model"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in Redis so multiple instances can share them.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed session store with the given TTL.
func NewRedis(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Create mints a new session for the username.
func (s *RedisStore) Create(ctx context.Context, username, languageKey string) (model.Session, error) {
	sess := newSession(username, languageKey, s.ttl)
	if err := s.write(ctx, sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

// Get returns the session for the given id.
func (s *RedisStore) Get(ctx context.Context, id string) (model.Session, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Session{}, ErrNotFound
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("session: failed to read from redis: %w", err)
	}

	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return model.Session{}, fmt.Errorf("session: failed to decode session: %w", err)
	}
	if sess.Expired() {
		return model.Session{}, ErrNotFound
	}

	return sess, nil
}

// Save persists an updated session, keeping the remaining TTL.
func (s *RedisStore) Save(ctx context.Context, sess model.Session) error {
	exists, err := s.client.Exists(ctx, redisKeyPrefix+sess.ID).Result()
	if err != nil {
		return fmt.Errorf("session: failed to check session in redis: %w", err)
	}
	if exists == 0 {
		return ErrNotFound
	}
	return s.write(ctx, sess)
}

// Delete removes the session.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("session: failed to delete from redis: %w", err)
	}
	return nil
}

func (s *RedisStore) write(ctx context.Context, sess model.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: failed to encode session: %w", err)
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		ttl = s.ttl
	}

	if err := s.client.Set(ctx, redisKeyPrefix+sess.ID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("session: failed to write to redis: %w", err)
	}
	return nil
}

var _ IStore = (*RedisStore)(nil)
