// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication and
// request context handling.
package middleware

import (
	"context"
	"net/http"

	"github.com/oscode/platform-go/internal/auth"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyUsername carries the authenticated admin's username.
const ContextKeyUsername ContextKey = "username"

// SessionParam is the request parameter carrying the session token. The
// frontend sends it as a query or form parameter, not a cookie or header.
const SessionParam = "session_id"

// RequireSession creates middleware that authorizes every request through
// the auth gate before any store access. It is the single guard for the
// admin route group; handlers read the caller via Username.
func RequireSession(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, err := gate.Authorize(r.Context(), SessionToken(r))
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"code":"unauthorized","message":"Invalid or expired session"}}`))
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUsername, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionToken extracts the session token from the query string or, for
// form and multipart bodies, the parsed form.
func SessionToken(r *http.Request) string {
	if token := r.URL.Query().Get(SessionParam); token != "" {
		return token
	}
	// FormValue parses multipart bodies as needed; FormFile in later
	// handlers still sees the parsed form.
	return r.FormValue(SessionParam)
}

// Username retrieves the authenticated admin's username from the request
// context. Returns empty outside the guarded route group.
func Username(r *http.Request) string {
	username, _ := r.Context().Value(ContextKeyUsername).(string)
	return username
}
