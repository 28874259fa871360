package quote

import (
	"context"
	"encoding/json"
	"time"

	"tidybook/models"

	"github.com/go-redis/redis/v8"
)

const quoteSessionPrefix = "quote:session:"

// SessionStore persists in-flight quote sessions. The production store is
// Redis-backed; tests substitute an in-memory fake.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.QuoteSession, error)
	Set(ctx context.Context, session *models.QuoteSession) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore stores sessions as JSON under a TTL so abandoned wizards
// expire on their own.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	key := quoteSessionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.QuoteSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, session *models.QuoteSession) error {
	key := quoteSessionPrefix + session.SessionID
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	key := quoteSessionPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
