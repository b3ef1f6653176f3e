package converter

import (
	"time"

	dto "lucky_slots/internal/api/dto/game"
	"lucky_slots/internal/model"

	"github.com/samber/lo"
)

func ToSpinResponse(res *model.SpinResult, revealDelay time.Duration) dto.SpinResponse {
	return dto.SpinResponse{
		Reels:            toSymbols(res.Reels[:]),
		Payout:           res.Payout,
		Stake:            res.Stake,
		ConsumedFreeSpin: res.ConsumedFreeSpin,
		AwardedFreeSpins: res.AwardedFreeSpins,
		Account:          toGameAccount(res.Account),
		RevealAfterMs:    revealDelay.Milliseconds(),
	}
}

func ToRulesResponse(r model.GameRules) dto.RulesResponse {
	return dto.RulesResponse{
		Currency:             r.Currency,
		Symbols:              toSymbols(r.Symbols),
		Stakes:               r.Stakes,
		Jackpots:             lo.MapKeys(r.Jackpots, func(_ int, s model.Symbol) string { return string(s) }),
		PairPayout:           r.PairPayout,
		BonusFreeSpins:       r.BonusFreeSpins,
		MinTopUp:             r.MinTopUp,
		MinWithdrawal:        r.MinWithdrawal,
		TopUpQuickAmounts:    r.TopUpQuickAmounts,
		WithdrawQuickAmounts: r.WithdrawQuickAmounts,
		RevealAfterMs:        r.RevealDelay.Milliseconds(),
	}
}

func ToHistoryResponse(spins []model.SpinRecord) []dto.HistoryItem {
	return lo.Map(spins, func(s model.SpinRecord, _ int) dto.HistoryItem {
		return dto.HistoryItem{
			ID:               s.ID,
			Stake:            s.Stake,
			Reels:            toSymbols(s.Reels[:]),
			Payout:           s.Payout,
			FreeSpin:         s.FreeSpin,
			AwardedFreeSpins: s.AwardedFreeSpins,
			BalanceAfter:     s.BalanceAfter,
			CreatedAt:        s.CreatedAt,
		}
	})
}

func ToStatsResponse(st model.HouseStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalSpins:     st.TotalSpins,
		FreeSpins:      st.FreeSpins,
		TotalStaked:    st.TotalStaked,
		TotalPaid:      st.TotalPaid,
		RTP:            st.RTP.StringFixed(2),
		WindowRTP:      st.WindowRTP.StringFixed(2),
		WindowSize:     st.WindowSize,
		BiggestPayout:  st.BiggestPayout,
		JackpotsByType: lo.MapKeys(st.JackpotsByType, func(_ int, s model.Symbol) string { return string(s) }),
	}
}

func toGameAccount(acc model.Account) dto.AccountResponse {
	return dto.AccountResponse{
		Balance:       acc.Balance,
		FreeSpins:     acc.FreeSpins,
		TotalWinnings: acc.TotalWinnings,
	}
}

func toSymbols(symbols []model.Symbol) []string {
	return lo.Map(symbols, func(s model.Symbol, _ int) string {
		return string(s)
	})
}
