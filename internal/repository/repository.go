package repository

import (
	"context"
	"errors"
	"time"

	"lucky_slots/internal/model"
)

var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByPhone(ctx context.Context, phone string) (*model.User, error)

	GetAccount(ctx context.Context, id int) (model.Account, error)
	GetAccountForUpdate(ctx context.Context, id int) (model.Account, error)
	UpdateAccount(ctx context.Context, id int, acc model.Account) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type SpinRepository interface {
	CreateSpin(ctx context.Context, rec *model.SpinRecord) (int64, error)
	ListSpins(ctx context.Context, userID int, limit int) ([]model.SpinRecord, error)
}

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *model.Transaction) (int64, error)
	ListTransactions(ctx context.Context, userID int, limit int) ([]model.Transaction, error)
}

// StatsRepository - статистика казино по сыгранным спинам
type StatsRepository interface {
	Record(rec model.SpinRecord)
	Stats() model.HouseStats
}
