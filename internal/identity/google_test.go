package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleVerifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sub":"g-123","email":"g@example.com","name":"Grace"}`))
	}))
	defer srv.Close()

	v := NewGoogleVerifier()
	v.userInfoURL = srv.URL

	got, err := v.Verify(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, Identity{UID: "g-123", Email: "g@example.com", Name: "Grace"}, got)

	_, err = v.Verify(context.Background(), "bad-token")
	assert.True(t, errors.Is(err, ErrInvalidToken), "got %v", err)

	_, err = v.Verify(context.Background(), "")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
