// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth validates admin credentials and manages session tokens.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/oscode/platform-go/internal/session"
)

// SessionTTL is the absolute lifetime of a session from issuance.
const SessionTTL = time.Hour

const tokenBytes = 32

var (
	// ErrInvalidCredentials is returned by Login for any unknown
	// username/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned by Authorize for a missing, invalid, or
	// expired session token.
	ErrUnauthorized = errors.New("unauthorized")
)

// Gate checks credentials against a static table and issues session tokens.
// Credentials are compared as plaintext equality: that matches the deployed
// behavior and is a documented hardening gap, not an invitation to hash here.
type Gate struct {
	credentials map[string]string
	sessions    session.Store
}

// NewGate creates a Gate over the given credential table and session store.
func NewGate(credentials map[string]string, sessions session.Store) *Gate {
	return &Gate{
		credentials: credentials,
		sessions:    sessions,
	}
}

// Login validates the credential pair and mints a session with a 1-hour
// absolute expiry. Concurrent logins by the same username produce
// independent, simultaneously valid sessions.
func (g *Gate) Login(ctx context.Context, username, password string) (string, error) {
	expected, ok := g.credentials[username]
	if !ok || subtle.ConstantTimeCompare([]byte(expected), []byte(password)) != 1 {
		return "", ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("minting session token: %w", err)
	}

	g.sessions.Put(ctx, token, session.Session{
		Username:  username,
		ExpiresAt: time.Now().Add(SessionTTL),
	})
	return token, nil
}

// Logout removes the session. It always succeeds, including for tokens that
// were never issued.
func (g *Gate) Logout(ctx context.Context, token string) {
	g.sessions.Delete(ctx, token)
}

// Authorize resolves a token to its username. Any state other than a live
// session reads as unauthorized; success has no side effects.
func (g *Gate) Authorize(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	sess, ok := g.sessions.Get(ctx, token)
	if !ok {
		return "", ErrUnauthorized
	}
	return sess.Username, nil
}

// newToken returns a URL-safe random token.
func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
