package game

import (
	"context"
	"fmt"

	"lucky_slots/internal/model"
	"lucky_slots/internal/session"

	"go.uber.org/zap"
)

// Account возвращает счёт пользователя и доступные быстрые суммы вывода
func (s *serv) Account(ctx context.Context, userID int) (*model.AccountOverview, error) {
	acc, err := s.userRepo.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return s.overview(acc), nil
}

// TopUp зачисляет пополнение. Само списание у платёжного шлюза происходит вне сервиса,
// клиенту возвращается адрес шлюза
func (s *serv) TopUp(ctx context.Context, userID, amount int) (*model.TopUpResult, error) {
	var acc model.Account
	err := s.inSession(ctx, userID, func(ctx context.Context, sess *session.Session) error {
		var err error
		acc, err = sess.TopUp(ctx, amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("top-up", zap.Int("user_id", userID), zap.Int("amount", amount), zap.Int("balance", acc.Balance))

	return &model.TopUpResult{
		Account:     acc,
		RedirectURL: s.gameCfg.PaymentURL(),
	}, nil
}

// Withdraw списывает сумму вывода с баланса
func (s *serv) Withdraw(ctx context.Context, userID, amount int) (*model.AccountOverview, error) {
	var acc model.Account
	err := s.inSession(ctx, userID, func(ctx context.Context, sess *session.Session) error {
		var err error
		acc, err = sess.Withdraw(ctx, amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("withdrawal", zap.Int("user_id", userID), zap.Int("amount", amount), zap.Int("balance", acc.Balance))

	return s.overview(acc), nil
}

// Transactions возвращает последние пополнения и выводы пользователя
func (s *serv) Transactions(ctx context.Context, userID, limit int) ([]model.Transaction, error) {
	txs, err := s.txRepo.ListTransactions(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("transactions: %w", err)
	}
	return txs, nil
}

func (s *serv) overview(acc model.Account) *model.AccountOverview {
	return &model.AccountOverview{
		Account:         acc,
		WithdrawOptions: s.limits.WithdrawOptions(acc.Balance),
	}
}
