// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "oscode:session:"

// RedisStore is a session Store backed by Redis. Keys carry a TTL equal to
// the session remainder so Redis drops them without an explicit sweep.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, token string) (Session, bool) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Error("session get failed", "error", err)
		}
		return Session{}, false
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		slog.Error("session decode failed", "error", err)
		s.Delete(ctx, token)
		return Session{}, false
	}
	if sess.Expired(time.Now()) {
		s.Delete(ctx, token)
		return Session{}, false
	}
	return sess, true
}

// Put implements Store.
func (s *RedisStore) Put(ctx context.Context, token string, sess Session) {
	raw, err := json.Marshal(sess)
	if err != nil {
		slog.Error("session encode failed", "error", err)
		return
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return
	}
	if err := s.client.Set(ctx, redisKeyPrefix+token, raw, ttl).Err(); err != nil {
		slog.Error("session put failed", "error", err)
	}
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, token string) {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		slog.Error("session delete failed", "error", err)
	}
}

// PurgeExpired implements Store. Redis expires keys by TTL, so there is
// nothing to sweep.
func (s *RedisStore) PurgeExpired(context.Context) int {
	return 0
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
