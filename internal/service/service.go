package service

import (
	"context"

	"lucky_slots/internal/model"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, phone, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

type GameService interface {
	Rules() model.GameRules
	Spin(ctx context.Context, userID, stake int) (*model.SpinResult, error)
	History(ctx context.Context, userID, limit int) ([]model.SpinRecord, error)
	Stats() model.HouseStats
}

type AccountService interface {
	Account(ctx context.Context, userID int) (*model.AccountOverview, error)
	TopUp(ctx context.Context, userID, amount int) (*model.TopUpResult, error)
	Withdraw(ctx context.Context, userID, amount int) (*model.AccountOverview, error)
	Transactions(ctx context.Context, userID, limit int) ([]model.Transaction, error)
}
