package model

import "github.com/shopspring/decimal"

// HouseStats - сводная статистика казино по всем спинам процесса
type HouseStats struct {
	TotalSpins     int
	FreeSpins      int
	TotalStaked    int64
	TotalPaid      int64
	RTP            decimal.Decimal // Текущий RTP в процентах
	WindowRTP      decimal.Decimal // RTP в окне последних спинов
	WindowSize     int
	BiggestPayout  int
	JackpotsByType map[Symbol]int
}
