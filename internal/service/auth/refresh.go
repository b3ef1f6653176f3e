package auth

import (
	"context"
	"errors"
	"fmt"

	"lucky_slots/internal/model"
	"lucky_slots/internal/repository"
	"lucky_slots/pkg/token"

	"go.uber.org/zap"
)

// Refresh выпускает новый access токен по сессии и refresh токену
func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (string, error) {
	// Получение сессии с хэшем refresh токена
	session, err := s.authRepo.GetSession(ctx, data.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", fmt.Errorf("refresh: %w", err)
	}

	if session.Expired(s.now()) {
		return "", ErrInvalidRefreshToken
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if !token.VerifyRefreshToken(data.RefreshToken, session.RefreshToken) {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err := token.GenerateAccessToken(
		&model.User{ID: session.UserID},
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return "", fmt.Errorf("refresh: %w", err)
	}

	return accessToken, nil
}

// Logout закрывает сессию
func (s *serv) Logout(ctx context.Context, sessionID string) error {
	err := s.authRepo.DeleteSession(ctx, sessionID)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// PurgeExpiredSessions удаляет истёкшие сессии
func (s *serv) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.authRepo.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	if n > 0 {
		s.logger.Info("expired sessions purged", zap.Int64("count", n))
	}
	return n, nil
}
