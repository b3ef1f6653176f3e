package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lucky_slots/internal/model"
	"lucky_slots/internal/repository"
	"lucky_slots/pkg/pass"
	"lucky_slots/pkg/token"
)

// Login проверяет телефон и пароль и открывает новую сессию
func (s *serv) Login(ctx context.Context, phone, password string) (*model.AuthData, error) {
	// Получение пользователя из бд по телефону
	user, err := s.userRepo.GetUserByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	// Верификация пароля
	if !pass.Check(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	data, err := s.openSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return data, nil
}

// openSession создаёт сессию с refresh токеном и выпускает access токен
func (s *serv) openSession(ctx context.Context, user *model.User) (*model.AuthData, error) {
	sessionID := generateSessionID()

	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	err = s.authRepo.CreateSession(ctx, &model.Session{
		ID:           sessionID,
		UserID:       user.ID,
		RefreshToken: token.HashRefreshToken(refreshToken),
		ExpiresAt:    s.now().Add(s.jwtConfig.RefreshTokenDuration()),
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
