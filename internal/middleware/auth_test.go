package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lucky_slots/internal/model"
	"lucky_slots/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuth_ValidToken(t *testing.T) {
	secret := []byte("test-secret")
	a := NewAuth(secret, zap.NewNop())

	tokenStr, err := token.GenerateAccessToken(&model.User{ID: 42}, secret, time.Minute)
	require.NoError(t, err)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		id, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, 42, id)
	})

	r := httptest.NewRequest(http.MethodGet, "/account", nil)
	r.Header.Set("Authorization", "Bearer "+tokenStr)
	w := httptest.NewRecorder()

	a.Middleware(next).ServeHTTP(w, r)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_Rejected(t *testing.T) {
	secret := []byte("test-secret")
	a := NewAuth(secret, zap.NewNop())

	expired, err := token.GenerateAccessToken(&model.User{ID: 1}, secret, -time.Minute)
	require.NoError(t, err)
	foreign, err := token.GenerateAccessToken(&model.User{ID: 1}, []byte("other"), time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "no bearer prefix", header: foreign},
		{name: "empty token", header: "Bearer "},
		{name: "expired", header: "Bearer " + expired},
		{name: "wrong secret", header: "Bearer " + foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatalf("next handler should not be called")
			})

			r := httptest.NewRequest(http.MethodGet, "/account", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			a.Middleware(next).ServeHTTP(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestLogger_PassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	Logger(zap.NewNop())(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}
