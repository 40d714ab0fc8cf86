package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oscode/platform-go/internal/session"
)

func testGate() (*Gate, *session.MemoryStore) {
	sessions := session.NewMemoryStore()
	gate := NewGate(map[string]string{
		"admin":     "oscode2024",
		"president": "oscode2024",
	}, sessions)
	return gate, sessions
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	gate, _ := testGate()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid admin", "admin", "oscode2024", nil},
		{"valid president", "president", "oscode2024", nil},
		{"wrong password", "admin", "wrong", ErrInvalidCredentials},
		{"unknown username", "treasurer", "oscode2024", ErrInvalidCredentials},
		{"empty credentials", "", "", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := gate.Login(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			username, err := gate.Authorize(ctx, token)
			require.NoError(t, err)
			assert.Equal(t, tt.username, username)
		})
	}
}

func TestAuthorizeRejectsUnknownToken(t *testing.T) {
	ctx := context.Background()
	gate, _ := testGate()

	_, err := gate.Authorize(ctx, "never-issued")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = gate.Authorize(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthorizeRejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	gate, sessions := testGate()

	sessions.Put(ctx, "stale", session.Session{
		Username:  "admin",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	_, err := gate.Authorize(ctx, "stale")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, sessions.Len(), "expired session must be purged on detection")

	// A dead token is never revivable.
	_, err = gate.Authorize(ctx, "stale")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	ctx := context.Background()
	gate, _ := testGate()

	token, err := gate.Login(ctx, "admin", "oscode2024")
	require.NoError(t, err)

	gate.Logout(ctx, token)
	_, err = gate.Authorize(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Logout is idempotent.
	gate.Logout(ctx, token)
}

func TestConcurrentLoginsCoexist(t *testing.T) {
	ctx := context.Background()
	gate, _ := testGate()

	t1, err := gate.Login(ctx, "admin", "oscode2024")
	require.NoError(t, err)
	t2, err := gate.Login(ctx, "admin", "oscode2024")
	require.NoError(t, err)
	require.NotEqual(t, t1, t2)

	for _, token := range []string{t1, t2} {
		username, err := gate.Authorize(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "admin", username)
	}

	// Revoking one leaves the other valid.
	gate.Logout(ctx, t1)
	_, err = gate.Authorize(ctx, t1)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = gate.Authorize(ctx, t2)
	assert.NoError(t, err)
}
