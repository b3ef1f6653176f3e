package model

import "time"

// Symbol - символ на барабане
type Symbol string

const (
	Cherry  Symbol = "cherry"
	Lemon   Symbol = "lemon"
	Orange  Symbol = "orange"
	Bell    Symbol = "bell"
	Star    Symbol = "star"
	Diamond Symbol = "diamond"
	Seven   Symbol = "seven"
)

// ReelCount - количество барабанов
const ReelCount = 3

// Reels - символы, выпавшие на барабанах слева направо
type Reels [ReelCount]Symbol

// Outcome - результат розыгрыша одного спина
type Outcome struct {
	Reels            Reels
	Payout           int  // Выплата, зависит только от Reels
	ConsumedFreeSpin bool // Спин оплачен фриспином, а не балансом
}

// SpinResult - то, что получает клиент после применения спина к счёту
type SpinResult struct {
	Outcome
	Stake            int     // Списано с баланса (0 для фриспина)
	AwardedFreeSpins int     // Начислено фриспинов этим спином
	Account          Account // Состояние счёта после спина
}

// SpinRecord - запись истории спинов
type SpinRecord struct {
	ID               int64
	UserID           int
	Stake            int
	Reels            Reels
	Payout           int
	FreeSpin         bool
	AwardedFreeSpins int
	BalanceAfter     int
	CreatedAt        time.Time
}
