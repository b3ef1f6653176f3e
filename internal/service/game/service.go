package game

import (
	"context"
	"time"

	"lucky_slots/internal/config"
	"lucky_slots/internal/ledger"
	"lucky_slots/internal/lock"
	"lucky_slots/internal/model"
	"lucky_slots/internal/repository"
	"lucky_slots/internal/service"
	"lucky_slots/internal/session"
	"lucky_slots/internal/wager"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	spinRepo  repository.SpinRepository
	txRepo    repository.TransactionRepository
	statsRepo repository.StatsRepository
	locker    lock.Locker
	engine    *wager.Engine
	gameCfg   config.GameConfig
	limits    ledger.Limits
	logger    *zap.Logger
	now       func() time.Time
}

// Deps - зависимости игрового сервиса
type Deps struct {
	TxManager trm.Manager
	UserRepo  repository.UserRepository
	SpinRepo  repository.SpinRepository
	TxRepo    repository.TransactionRepository
	StatsRepo repository.StatsRepository
	Locker    lock.Locker
	Source    wager.Source
	GameCfg   config.GameConfig
	Logger    *zap.Logger
}

func newServ(deps Deps) *serv {
	return &serv{
		txManager: deps.TxManager,
		userRepo:  deps.UserRepo,
		spinRepo:  deps.SpinRepo,
		txRepo:    deps.TxRepo,
		statsRepo: deps.StatsRepo,
		locker:    deps.Locker,
		engine:    wager.NewEngine(deps.GameCfg.Rules(), deps.Source),
		gameCfg:   deps.GameCfg,
		limits:    deps.GameCfg.Limits(),
		logger:    deps.Logger,
		now:       time.Now,
	}
}

// NewGameService создаёт сервис спинов, истории и статистики
func NewGameService(deps Deps) service.GameService {
	return newServ(deps)
}

// NewAccountService создаёт сервис пополнений и выводов над теми же счетами
func NewAccountService(deps Deps) service.AccountService {
	return newServ(deps)
}

// inSession открывает транзакцию, блокирует строку счёта и запускает fn над сессией этого счёта.
// Всё, что сессия сохраняет через Store, коммитится вместе
func (s *serv) inSession(ctx context.Context, userID int, fn func(ctx context.Context, sess *session.Session) error) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		acc, err := s.userRepo.GetAccountForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		sess := session.New(userID, acc, s.engine, s.limits,
			session.WithStore(&txStore{
				userID:   userID,
				userRepo: s.userRepo,
				spinRepo: s.spinRepo,
				txRepo:   s.txRepo,
			}),
			session.WithClock(s.now),
		)

		return fn(txCtx, sess)
	})
}

func (s *serv) Rules() model.GameRules {
	rules := s.gameCfg.Rules()
	return model.GameRules{
		Currency:             s.gameCfg.Currency(),
		Symbols:              rules.Symbols,
		Stakes:               rules.Stakes,
		Jackpots:             rules.Jackpots,
		PairPayout:           rules.PairPayout,
		BonusFreeSpins:       rules.BonusFreeSpins,
		MinTopUp:             s.limits.MinTopUp,
		MinWithdrawal:        s.limits.MinWithdrawal,
		TopUpQuickAmounts:    s.limits.TopUpQuickAmounts,
		WithdrawQuickAmounts: s.limits.WithdrawQuickAmounts,
		RevealDelay:          s.gameCfg.RevealDelay(),
	}
}

func (s *serv) Stats() model.HouseStats {
	return s.statsRepo.Stats()
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return min(limit, MaxHistoryLimit)
}
