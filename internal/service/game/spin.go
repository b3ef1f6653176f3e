package game

import (
	"context"
	"errors"
	"fmt"

	"lucky_slots/internal/lock"
	"lucky_slots/internal/model"
	"lucky_slots/internal/session"

	"go.uber.org/zap"
)

// Spin делает спин от имени пользователя.
// Пока идёт предыдущий спин этого пользователя, возвращает session.ErrSpinInProgress
func (s *serv) Spin(ctx context.Context, userID, stake int) (*model.SpinResult, error) {
	unlock, err := s.locker.TryLock(ctx, lock.SpinKey(userID))
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return nil, session.ErrSpinInProgress
		}
		return nil, fmt.Errorf("acquire spin lock: %w", err)
	}
	defer unlock()

	var res model.SpinResult
	err = s.inSession(ctx, userID, func(ctx context.Context, sess *session.Session) error {
		res, err = sess.Spin(ctx, stake)
		return err
	})
	if err != nil {
		return nil, err
	}

	// Статистику обновляем только после коммита
	s.statsRepo.Record(model.SpinRecord{
		UserID:           userID,
		Stake:            res.Stake,
		Reels:            res.Reels,
		Payout:           res.Payout,
		FreeSpin:         res.ConsumedFreeSpin,
		AwardedFreeSpins: res.AwardedFreeSpins,
		BalanceAfter:     res.Account.Balance,
	})

	s.logger.Debug("spin",
		zap.Int("user_id", userID),
		zap.Int("stake", res.Stake),
		zap.Int("payout", res.Payout),
		zap.Bool("free_spin", res.ConsumedFreeSpin),
		zap.Int("balance", res.Account.Balance),
	)

	return &res, nil
}

// History возвращает последние спины пользователя
func (s *serv) History(ctx context.Context, userID, limit int) ([]model.SpinRecord, error) {
	spins, err := s.spinRepo.ListSpins(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("spin history: %w", err)
	}
	return spins, nil
}
