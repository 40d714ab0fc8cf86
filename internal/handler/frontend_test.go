package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oscode/platform-go/internal/auth"
	"github.com/oscode/platform-go/internal/session"
	"github.com/oscode/platform-go/internal/store"
)

func frontendEnv(t *testing.T) (http.Handler, string) {
	t.Helper()

	frontend := t.TempDir()
	gate := auth.NewGate(map[string]string{"admin": "oscode2024"}, session.NewMemoryStore())
	h := New(store.NewMemory(), gate, t.TempDir(), frontend)
	return h.Routes(), frontend
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestServeFrontendFile(t *testing.T) {
	router, frontend := frontendEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(frontend, "app.js"), []byte("console.log(1)"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(frontend, "index.html"), []byte("<html>spa</html>"), 0o644))

	rec := get(t, router, "/app.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())
}

func TestServeFrontendSPAFallback(t *testing.T) {
	router, frontend := frontendEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(frontend, "index.html"), []byte("<html>spa</html>"), 0o644))

	// Client-side routes fall back to the entry document.
	for _, path := range []string{"/admin", "/events/123", "/deep/nested/route"} {
		rec := get(t, router, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "<html>spa</html>", rec.Body.String(), path)
	}
}

func TestServeFrontendMissingBuild(t *testing.T) {
	router, _ := frontendEnv(t)

	rec := get(t, router, "/anything")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeUploadUnknownFile(t *testing.T) {
	router, _ := frontendEnv(t)

	rec := get(t, router, "/uploads/nope.png")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeUploadRejectsTraversal(t *testing.T) {
	router, frontend := frontendEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(frontend, "secret.txt"), []byte("x"), 0o644))

	rec := get(t, router, "/uploads/../secret.txt")
	assert.NotEqual(t, http.StatusOK, rec.Code)
}
