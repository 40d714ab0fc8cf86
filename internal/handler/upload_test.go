package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oscode/platform-go/internal/auth"
	"github.com/oscode/platform-go/internal/session"
	"github.com/oscode/platform-go/internal/store"
)

func TestUploadImage(t *testing.T) {
	docs := store.NewMemory()
	gate := auth.NewGate(map[string]string{"admin": "oscode2024"}, session.NewMemoryStore())
	uploads := t.TempDir()
	h := New(docs, gate, uploads, t.TempDir())
	router := h.Routes()

	token, err := gate.Login(context.Background(), "admin", "oscode2024")
	require.NoError(t, err)

	payload := []byte("\x89PNG fake image bytes")
	body, contentType := multipartUpload(t, "avatar.png", "image/png", token, payload)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assertStatus(t, rec, http.StatusOK)

	var resp map[string]string
	decode(t, rec, &resp)
	require.True(t, strings.HasPrefix(resp["image_url"], "/uploads/"), resp["image_url"])
	assert.True(t, strings.HasSuffix(resp["image_url"], ".png"), "original extension is kept")

	// The payload is written verbatim under the uploads root.
	name := strings.TrimPrefix(resp["image_url"], "/uploads/")
	written, err := os.ReadFile(filepath.Join(uploads, name))
	require.NoError(t, err)
	assert.Equal(t, payload, written)

	// And is served back on the public uploads path.
	req = httptest.NewRequest(http.MethodGet, resp["image_url"], nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, payload, rec.Body.Bytes())
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartUpload(t, "notes.txt", "text/plain", env.token, []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assertStatus(t, rec, http.StatusBadRequest)
}

func TestUploadImageRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartUpload(t, "avatar.png", "image/png", "bogus", []byte("img"))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assertStatus(t, rec, http.StatusUnauthorized)
}

func TestUploadImageGeneratesUniqueNames(t *testing.T) {
	env := newTestEnv(t)
	seen := map[string]bool{}

	for i := 0; i < 3; i++ {
		body, contentType := multipartUpload(t, "same.png", "image/png", env.token, []byte("img"))
		req := httptest.NewRequest(http.MethodPost, "/api/admin/upload-image", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		assertStatus(t, rec, http.StatusOK)

		var resp map[string]string
		decode(t, rec, &resp)
		assert.False(t, seen[resp["image_url"]], "repeated uploads get fresh names")
		seen[resp["image_url"]] = true
	}
}
