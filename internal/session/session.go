// Package session - контроллер игровой сессии одного счёта.
// Сессия владеет состоянием счёта, прогоняет через движок спины и через ledger
// пополнения и выводы. Новое состояние применяется только после того,
// как его принял Store
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"lucky_slots/internal/ledger"
	"lucky_slots/internal/model"
	"lucky_slots/internal/wager"
)

// ErrSpinInProgress - предыдущий спин ещё применяется
var ErrSpinInProgress = errors.New("spin already in progress")

// Store сохраняет новое состояние счёта вместе с записью об операции.
// Ошибка означает, что состояние не принято
type Store interface {
	SaveSpin(ctx context.Context, acc model.Account, rec model.SpinRecord) error
	SaveTransaction(ctx context.Context, acc model.Account, tx model.Transaction) error
}

// Option настраивает сессию
type Option func(*Session)

// WithStore подключает сохранение состояния
func WithStore(store Store) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithClock подменяет часы, которыми помечаются записи
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

type Session struct {
	userID int
	engine *wager.Engine
	limits ledger.Limits
	store  Store
	now    func() time.Time

	spinning atomic.Bool

	mtx     sync.Mutex
	account model.Account
}

// New создаёт сессию над счётом пользователя
func New(userID int, acc model.Account, engine *wager.Engine, limits ledger.Limits, opts ...Option) *Session {
	s := &Session{
		userID:  userID,
		engine:  engine,
		limits:  limits,
		now:     time.Now,
		account: acc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Account возвращает текущее состояние счёта
func (s *Session) Account() model.Account {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.account
}

// Spin делает спин со ставкой stake.
// Пока предыдущий спин не применён, новый отклоняется с ErrSpinInProgress
func (s *Session) Spin(ctx context.Context, stake int) (model.SpinResult, error) {
	if !s.spinning.CompareAndSwap(false, true) {
		return model.SpinResult{}, ErrSpinInProgress
	}
	defer s.spinning.Store(false)

	s.mtx.Lock()
	defer s.mtx.Unlock()

	outcome, delta, err := s.engine.EvaluateSpin(s.account, stake)
	if err != nil {
		return model.SpinResult{}, err
	}

	next := delta.Apply(s.account)
	if !next.Valid() {
		return model.SpinResult{}, fmt.Errorf("spin produced invalid account state %+v", next)
	}

	if s.store != nil {
		rec := model.SpinRecord{
			UserID:           s.userID,
			Stake:            delta.Stake,
			Reels:            outcome.Reels,
			Payout:           outcome.Payout,
			FreeSpin:         outcome.ConsumedFreeSpin,
			AwardedFreeSpins: delta.GrantedFreeSpins,
			BalanceAfter:     next.Balance,
			CreatedAt:        s.now(),
		}
		if err = s.store.SaveSpin(ctx, next, rec); err != nil {
			return model.SpinResult{}, fmt.Errorf("save spin: %w", err)
		}
	}

	s.account = next

	return model.SpinResult{
		Outcome:          outcome,
		Stake:            delta.Stake,
		AwardedFreeSpins: delta.GrantedFreeSpins,
		Account:          next,
	}, nil
}

// TopUp пополняет баланс
func (s *Session) TopUp(ctx context.Context, amount int) (model.Account, error) {
	return s.transfer(ctx, model.TransactionTopUp, amount, s.limits.ApplyTopUp)
}

// Withdraw выводит средства с баланса
func (s *Session) Withdraw(ctx context.Context, amount int) (model.Account, error) {
	return s.transfer(ctx, model.TransactionWithdrawal, amount, s.limits.ApplyWithdrawal)
}

func (s *Session) transfer(
	ctx context.Context,
	kind model.TransactionKind,
	amount int,
	apply func(model.Account, int) (model.Account, error),
) (model.Account, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	next, err := apply(s.account, amount)
	if err != nil {
		return s.account, err
	}

	if s.store != nil {
		tx := model.Transaction{
			UserID:       s.userID,
			Kind:         kind,
			Amount:       amount,
			BalanceAfter: next.Balance,
			CreatedAt:    s.now(),
		}
		if err = s.store.SaveTransaction(ctx, next, tx); err != nil {
			return s.account, fmt.Errorf("save %s: %w", kind, err)
		}
	}

	s.account = next
	return next, nil
}
