// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/oscode/platform-go/internal/middleware"
)

// MaxUploadSize caps in-memory multipart parsing.
const MaxUploadSize = 10 << 20 // 10 MB

// UploadImage handles POST /api/admin/upload-image. The declared media type
// must be an image; the payload itself is written verbatim under the
// uploads root (no content sniffing, by contract).
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		WriteBadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteBadRequest(w, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		WriteBadRequest(w, "File must be an image")
		return
	}

	// Random name plus the original extension; collisions are treated as
	// impossible by construction.
	filename := uuid.New().String() + filepath.Ext(header.Filename)

	if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	dst, err := os.Create(filepath.Join(h.uploadsDir, filename))
	if err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, file); err != nil {
		WriteInternalError(w, err.Error())
		return
	}

	slog.Info("image uploaded",
		"filename", filename,
		"size", header.Size,
		"uploaded_by", middleware.Username(r))
	WriteJSON(w, http.StatusOK, map[string]string{"image_url": "/uploads/" + filename})
}
