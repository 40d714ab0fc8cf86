// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a thread-safe in-memory session Store. Sessions are lost on
// server restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Session
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]Session),
	}
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.data[token]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if sess.Expired(time.Now()) {
		s.Delete(ctx, token)
		return Session{}, false
	}
	return sess, true
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, token string, sess Session) {
	s.mu.Lock()
	s.data[token] = sess
	s.mu.Unlock()
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, token string) {
	s.mu.Lock()
	delete(s.data, token)
	s.mu.Unlock()
}

// PurgeExpired implements Store.
func (s *MemoryStore) PurgeExpired(_ context.Context) int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int
	for token, sess := range s.data {
		if sess.Expired(now) {
			delete(s.data, token)
			purged++
		}
	}
	return purged
}

// Len reports the number of stored sessions, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
