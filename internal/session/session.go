// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session stores admin session state keyed by opaque tokens.
// Sessions live only for the process lifetime unless the Redis backend is
// configured.
package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oscode/platform-go/internal/config"
)

// Session holds the server-side state for an authenticated admin.
type Session struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session's absolute expiry has passed.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store abstracts session CRUD so that sessions can live in-memory (default)
// or in an external Redis cache.
type Store interface {
	// Get retrieves a session by token. It fails closed: a missing or
	// expired session reports absent, and expired entries are removed on
	// observation.
	Get(ctx context.Context, token string) (Session, bool)
	// Put creates or replaces the session for the given token.
	Put(ctx context.Context, token string, sess Session)
	// Delete removes a session by token. Deleting an absent token is a no-op.
	Delete(ctx context.Context, token string)
	// PurgeExpired removes all expired sessions and returns how many were
	// dropped. Backends with native TTL expiry may report zero.
	PurgeExpired(ctx context.Context) int
}

// New creates a session Store based on configuration: Redis when REDIS_URL
// is set, otherwise an in-process map.
func New(cfg *config.Config) (Store, error) {
	if !cfg.UseRedisSessions() {
		return NewMemoryStore(), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	return NewRedisStore(redis.NewClient(opts)), nil
}
