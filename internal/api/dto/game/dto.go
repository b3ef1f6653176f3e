package game

import "time"

type SpinRequest struct {
	Stake int `json:"stake"` // Ставка из допустимого набора
}

type AccountResponse struct {
	Balance       int `json:"balance"`        // Баланс после операции
	FreeSpins     int `json:"free_spins"`     // Остаток фриспинов
	TotalWinnings int `json:"total_winnings"` // Сумма всех выигрышей
}

type SpinResponse struct {
	Reels            []string        `json:"reels"`              // Символы слева направо
	Payout           int             `json:"payout"`             // Выплата
	Stake            int             `json:"stake"`              // Списано с баланса
	ConsumedFreeSpin bool            `json:"consumed_free_spin"` // Спин оплачен фриспином
	AwardedFreeSpins int             `json:"awarded_free_spins"` // Начислено фриспинов этим спином
	Account          AccountResponse `json:"account"`            // Счёт после спина
	RevealAfterMs    int64           `json:"reveal_after_ms"`    // Через сколько показывать результат
}

type RulesResponse struct {
	Currency             string         `json:"currency"`
	Symbols              []string       `json:"symbols"`
	Stakes               []int          `json:"stakes"`
	Jackpots             map[string]int `json:"jackpots"`
	PairPayout           int            `json:"pair_payout"`
	BonusFreeSpins       int            `json:"bonus_free_spins"`
	MinTopUp             int            `json:"min_top_up"`
	MinWithdrawal        int            `json:"min_withdrawal"`
	TopUpQuickAmounts    []int          `json:"top_up_quick_amounts"`
	WithdrawQuickAmounts []int          `json:"withdrawal_quick_amounts"`
	RevealAfterMs        int64          `json:"reveal_after_ms"`
}

type HistoryItem struct {
	ID               int64     `json:"id"`
	Stake            int       `json:"stake"`
	Reels            []string  `json:"reels"`
	Payout           int       `json:"payout"`
	FreeSpin         bool      `json:"free_spin"`
	AwardedFreeSpins int       `json:"awarded_free_spins"`
	BalanceAfter     int       `json:"balance_after"`
	CreatedAt        time.Time `json:"created_at"`
}

type StatsResponse struct {
	TotalSpins     int            `json:"total_spins"`
	FreeSpins      int            `json:"free_spins"`
	TotalStaked    int64          `json:"total_staked"`
	TotalPaid      int64          `json:"total_paid"`
	RTP            string         `json:"rtp"`        // Процент, строкой без потери точности
	WindowRTP      string         `json:"window_rtp"` // RTP по окну последних спинов
	WindowSize     int            `json:"window_size"`
	BiggestPayout  int            `json:"biggest_payout"`
	JackpotsByType map[string]int `json:"jackpots_by_type"`
}
