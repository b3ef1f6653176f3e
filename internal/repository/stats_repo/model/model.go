package model

// CasinoState - накопленное состояние казино
type CasinoState struct {
	TotalSpins  int   // Сколько всего спинов сделано
	FreeSpins   int   // Сколько из них фриспинов
	TotalStaked int64 // Сумма всех списанных ставок
	TotalPaid   int64 // Сумма всех выплат

	BiggestPayout  int            // Крупнейшая выплата за спин
	JackpotsByType map[string]int // Количество джекпотов по символу

	SpinWindow  []SpinResult // Окно последних спинов для анализа
	WindowSize  int          // Размер окна
	WindowStake int64        // Сумма ставок в окне
	WindowPaid  int64        // Сумма выплат в окне
}

// SpinResult - спин в окне
type SpinResult struct {
	Stake  int
	Payout int
}
