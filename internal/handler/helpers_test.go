package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/oscode/platform-go/internal/auth"
	"github.com/oscode/platform-go/internal/model"
	"github.com/oscode/platform-go/internal/session"
	"github.com/oscode/platform-go/internal/store"
)

type testEnv struct {
	router chi.Router
	docs   *store.MemoryStore
	gate   *auth.Gate
	token  string
}

// newTestEnv builds a handler over in-memory backends with one admin logged
// in.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	docs := store.NewMemory()
	gate := auth.NewGate(map[string]string{"admin": "oscode2024"}, session.NewMemoryStore())
	h := New(docs, gate, t.TempDir(), t.TempDir())

	token, err := gate.Login(context.Background(), "admin", "oscode2024")
	require.NoError(t, err)

	return &testEnv{
		router: h.Routes(),
		docs:   docs,
		gate:   gate,
		token:  token,
	}
}

// do performs a JSON request against the router and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a recorder body into dest.
func decode(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

// seedEvent inserts an event directly into the store.
func (e *testEnv) seedEvent(t *testing.T, id, title string, active bool, createdAt time.Time) {
	t.Helper()
	_, err := e.docs.Insert(context.Background(), model.CollectionEvents, model.Event{
		ID: id, Title: title, Date: "2026-04-01", Time: "18:00", Venue: "Lab",
		EventType: model.DefaultEventType, IsActive: active, CreatedAt: createdAt,
	})
	require.NoError(t, err)
}

// multipartUpload builds a multipart body with a file part and session_id
// field.
func multipartUpload(t *testing.T, fieldFilename, contentType, sessionID string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+fieldFilename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)

	require.NoError(t, mw.WriteField("session_id", sessionID))
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
