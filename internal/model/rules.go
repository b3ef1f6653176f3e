package model

import "time"

// GameRules - правила слота в том виде, в каком их видит клиент
type GameRules struct {
	Currency             string
	Symbols              []Symbol
	Stakes               []int
	Jackpots             map[Symbol]int
	PairPayout           int
	BonusFreeSpins       int
	MinTopUp             int
	MinWithdrawal        int
	TopUpQuickAmounts    []int
	WithdrawQuickAmounts []int
	RevealDelay          time.Duration
}
