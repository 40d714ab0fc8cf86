// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/oscode/platform-go/internal/auth"
	"github.com/oscode/platform-go/internal/middleware"
)

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}

	token, err := h.gate.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			WriteUnauthorized(w, "Invalid credentials")
			return
		}
		WriteInternalError(w, err.Error())
		return
	}

	slog.Info("admin login", "username", req.Username)
	WriteJSON(w, http.StatusOK, map[string]string{
		"session_id": token,
		"username":   req.Username,
		"message":    "Login successful",
	})
}

// Logout handles POST /api/admin/logout. Idempotent: succeeds whether or
// not the token names a live session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.gate.Logout(r.Context(), middleware.SessionToken(r))
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

// Verify handles GET /api/admin/verify. The route guard has already
// resolved the session; an invalid token never reaches here.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"username": middleware.Username(r),
		"valid":    true,
	})
}
