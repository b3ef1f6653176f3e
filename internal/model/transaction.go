package model

import "time"

// TransactionKind - тип движения средств вне игры
type TransactionKind string

const (
	TransactionTopUp      TransactionKind = "top_up"
	TransactionWithdrawal TransactionKind = "withdrawal"
)

// Transaction - пополнение или вывод средств
type Transaction struct {
	ID           int64
	UserID       int
	Kind         TransactionKind
	Amount       int
	BalanceAfter int
	CreatedAt    time.Time
}

// TopUpResult - результат пополнения вместе с адресом платёжного шлюза
type TopUpResult struct {
	Account     Account
	RedirectURL string
}
