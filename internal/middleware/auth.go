// Package middleware содержит HTTP middleware сервиса
package middleware

import (
	"context"
	"net/http"
	"strings"

	"lucky_slots/pkg/token"

	"go.uber.org/zap"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth проверяет access токен из заголовка Authorization и кладёт ID пользователя в контекст
type Auth struct {
	secretKey []byte
	logger    *zap.Logger
}

func NewAuth(secretKey []byte, logger *zap.Logger) *Auth {
	return &Auth{
		secretKey: secretKey,
		logger:    logger,
	}
}

func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		claims, err := token.VerifyToken(tokenStr, a.secretKey)
		if err != nil {
			a.logger.Debug("access token rejected", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		userID, err := token.UserID(claims)
		if err != nil {
			a.logger.Warn("access token without user", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID кладёт ID пользователя в контекст
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext достаёт ID пользователя, положенный Auth
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}
