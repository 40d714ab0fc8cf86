// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ServeUpload serves uploaded images from the uploads root.
func (h *Handler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	path, ok := resolveUnder(h.uploadsDir, name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

// ServeFrontend serves the built single-page application. The requested
// file is served when it exists; every other path falls back to the SPA
// entry document so client-side routing works on reload.
func (h *Handler) ServeFrontend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	if path, ok := resolveUnder(h.frontendDir, r.URL.Path); ok {
		http.ServeFile(w, r, path)
		return
	}

	index := filepath.Join(h.frontendDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.Error(w, "Frontend build not found", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, index)
}

// resolveUnder resolves name inside root and reports whether it names an
// existing regular file. Path traversal outside root is rejected.
func resolveUnder(root, name string) (string, bool) {
	clean := filepath.Clean("/" + strings.TrimPrefix(name, "/"))
	path := filepath.Join(root, clean)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
