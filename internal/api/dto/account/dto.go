package account

import "time"

type AmountRequest struct {
	Amount int `json:"amount"` // Сумма в KSH
}

type AccountResponse struct {
	Balance                int   `json:"balance"`
	FreeSpins              int   `json:"free_spins"`
	TotalWinnings          int   `json:"total_winnings"`
	WithdrawalQuickAmounts []int `json:"withdrawal_quick_amounts"` // Суммы вывода, доступные при текущем балансе
}

type TopUpResponse struct {
	Balance       int    `json:"balance"`
	FreeSpins     int    `json:"free_spins"`
	TotalWinnings int    `json:"total_winnings"`
	RedirectURL   string `json:"redirect_url"` // Страница платёжного шлюза
}

type TransactionItem struct {
	ID           int64     `json:"id"`
	Kind         string    `json:"kind"`
	Amount       int       `json:"amount"`
	BalanceAfter int       `json:"balance_after"`
	CreatedAt    time.Time `json:"created_at"`
}
