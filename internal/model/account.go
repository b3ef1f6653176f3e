package model

// Account - игровой счёт пользователя в рамках сессии.
// Все суммы в целых единицах валюты (KSH)
type Account struct {
	Balance       int // Баланс, не может быть отрицательным
	TotalWinnings int // Сумма всех выигрышей, только растёт
	FreeSpins     int // Остаток бесплатных спинов
}

// NewAccount создаёт счёт нового пользователя с приветственным бонусом
func NewAccount(welcomeBonus int) Account {
	return Account{Balance: welcomeBonus}
}

// Valid проверяет инварианты счёта
func (a Account) Valid() bool {
	return a.Balance >= 0 && a.TotalWinnings >= 0 && a.FreeSpins >= 0
}

// AccountOverview - счёт вместе с доступными быстрыми суммами вывода
type AccountOverview struct {
	Account
	WithdrawOptions []int
}
