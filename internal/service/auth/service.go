package auth

import (
	"errors"
	"time"

	"lucky_slots/internal/config"
	"lucky_slots/internal/repository"
	"lucky_slots/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidRegistration - пустое имя, телефон или пароль
	ErrInvalidRegistration = errors.New("name, phone and password are required")
	// ErrInvalidCredentials - неверный телефон или пароль
	ErrInvalidCredentials = errors.New("invalid phone or password")
	// ErrInvalidRefreshToken - сессия не найдена, истекла или токен не подходит
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

type serv struct {
	txManager    trm.Manager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	jwtConfig    config.JWTConfig
	welcomeBonus int
	logger       *zap.Logger
	now          func() time.Time
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	welcomeBonus int,
	logger *zap.Logger,
) service.AuthService {
	return &serv{
		txManager:    txManager,
		userRepo:     userRepo,
		authRepo:     authRepo,
		jwtConfig:    jwtConfig,
		welcomeBonus: welcomeBonus,
		logger:       logger,
		now:          time.Now,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
