package stats_repo

import (
	"sync"

	"lucky_slots/internal/model"
	repoModel "lucky_slots/internal/repository/stats_repo/model"

	"github.com/shopspring/decimal"
)

const rtpPrecision = 2

var hundred = decimal.NewFromInt(100)

// StateRepo - статистика казино в памяти процесса
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.CasinoState
}

// NewStatsRepository создаёт репозиторий с окном последних windowSize спинов
func NewStatsRepository(windowSize int) *StateRepo {
	if windowSize <= 0 {
		windowSize = 1
	}
	return &StateRepo{
		state: repoModel.CasinoState{
			JackpotsByType: make(map[string]int),
			SpinWindow:     make([]repoModel.SpinResult, 0, windowSize),
			WindowSize:     windowSize,
		},
	}
}

// Record обновляет статистику после спина
func (r *StateRepo) Record(rec model.SpinRecord) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	if rec.FreeSpin {
		r.state.FreeSpins++
	}
	r.state.TotalStaked += int64(rec.Stake)
	r.state.TotalPaid += int64(rec.Payout)

	if rec.Payout > r.state.BiggestPayout {
		r.state.BiggestPayout = rec.Payout
	}
	if rec.Reels[0] == rec.Reels[1] && rec.Reels[1] == rec.Reels[2] {
		r.state.JackpotsByType[string(rec.Reels[0])]++
	}

	// Добавляем спин в окно
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Stake:  rec.Stake,
		Payout: rec.Payout,
	})
	r.state.WindowStake += int64(rec.Stake)
	r.state.WindowPaid += int64(rec.Payout)

	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		oldest := r.state.SpinWindow[0]
		r.state.SpinWindow = r.state.SpinWindow[1:]
		r.state.WindowStake -= int64(oldest.Stake)
		r.state.WindowPaid -= int64(oldest.Payout)
	}
}

// Stats возвращает снимок статистики
func (r *StateRepo) Stats() model.HouseStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	jackpots := make(map[model.Symbol]int, len(r.state.JackpotsByType))
	for sym, n := range r.state.JackpotsByType {
		jackpots[model.Symbol(sym)] = n
	}

	return model.HouseStats{
		TotalSpins:     r.state.TotalSpins,
		FreeSpins:      r.state.FreeSpins,
		TotalStaked:    r.state.TotalStaked,
		TotalPaid:      r.state.TotalPaid,
		RTP:            rtp(r.state.TotalPaid, r.state.TotalStaked),
		WindowRTP:      rtp(r.state.WindowPaid, r.state.WindowStake),
		WindowSize:     len(r.state.SpinWindow),
		BiggestPayout:  r.state.BiggestPayout,
		JackpotsByType: jackpots,
	}
}

// rtp = paid / staked * 100. Без ставок RTP равен нулю
func rtp(paid, staked int64) decimal.Decimal {
	if staked == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(paid).
		Mul(hundred).
		DivRound(decimal.NewFromInt(staked), rtpPrecision)
}
