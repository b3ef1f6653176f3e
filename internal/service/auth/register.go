package auth

import (
	"context"
	"fmt"
	"strings"

	"lucky_slots/internal/model"
	"lucky_slots/pkg/pass"

	"go.uber.org/zap"
)

// Register создаёт пользователя с приветственным бонусом и сразу открывает сессию
func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Phone = strings.TrimSpace(user.Phone)
	if user.Name == "" || user.Phone == "" || user.Password == "" {
		return nil, ErrInvalidRegistration
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.Hash(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash
	user.Account = model.NewAccount(s.welcomeBonus)

	var data *model.AuthData

	// Пользователь и сессия создаются в одной транзакции
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		data, err = s.openSession(ctx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.logger.Info("user registered", zap.Int("user_id", user.ID))

	return data, nil
}
