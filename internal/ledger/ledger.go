// Package ledger - операции пополнения и вывода средств со счёта
package ledger

import (
	"errors"
	"fmt"

	"lucky_slots/internal/model"

	"github.com/samber/lo"
)

var (
	// ErrInvalidAmount - сумма меньше минимальной для операции
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBalance - на балансе меньше, чем запрошено к выводу
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Limits - ограничения на суммы операций
type Limits struct {
	MinTopUp             int
	MinWithdrawal        int
	TopUpQuickAmounts    []int
	WithdrawQuickAmounts []int
}

// DefaultLimits возвращает ограничения оригинальных диалогов пополнения и вывода
func DefaultLimits() Limits {
	return Limits{
		MinTopUp:             100,
		MinWithdrawal:        599,
		TopUpQuickAmounts:    []int{100, 500, 1000, 2000, 5000},
		WithdrawQuickAmounts: []int{599, 1000, 2000, 5000},
	}
}

// Validate проверяет согласованность лимитов
func (l Limits) Validate() error {
	if l.MinTopUp <= 0 {
		return fmt.Errorf("min top-up must be positive, got %d", l.MinTopUp)
	}
	if l.MinWithdrawal <= 0 {
		return fmt.Errorf("min withdrawal must be positive, got %d", l.MinWithdrawal)
	}
	if _, ok := lo.Find(l.TopUpQuickAmounts, func(v int) bool { return v < l.MinTopUp }); ok {
		return fmt.Errorf("top-up quick amounts below minimum %d", l.MinTopUp)
	}
	if _, ok := lo.Find(l.WithdrawQuickAmounts, func(v int) bool { return v < l.MinWithdrawal }); ok {
		return fmt.Errorf("withdrawal quick amounts below minimum %d", l.MinWithdrawal)
	}
	return nil
}

// WithdrawOptions возвращает быстрые суммы вывода, доступные при текущем балансе
func (l Limits) WithdrawOptions(balance int) []int {
	return lo.Filter(l.WithdrawQuickAmounts, func(v int, _ int) bool {
		return v <= balance
	})
}

// ApplyTopUp пополняет баланс. Верхней границы нет
func (l Limits) ApplyTopUp(acc model.Account, amount int) (model.Account, error) {
	if amount < l.MinTopUp {
		return acc, fmt.Errorf("%w: top-up %d is below minimum %d", ErrInvalidAmount, amount, l.MinTopUp)
	}

	acc.Balance += amount
	return acc, nil
}

// ApplyWithdrawal списывает сумму с баланса.
// Минимальная сумма проверяется раньше баланса
func (l Limits) ApplyWithdrawal(acc model.Account, amount int) (model.Account, error) {
	if amount < l.MinWithdrawal {
		return acc, fmt.Errorf("%w: withdrawal %d is below minimum %d", ErrInvalidAmount, amount, l.MinWithdrawal)
	}
	if amount > acc.Balance {
		return acc, fmt.Errorf("%w: balance %d, requested %d", ErrInsufficientBalance, acc.Balance, amount)
	}

	acc.Balance -= amount
	return acc, nil
}

// ApplyTopUp пополняет баланс по стандартным лимитам
func ApplyTopUp(acc model.Account, amount int) (model.Account, error) {
	return DefaultLimits().ApplyTopUp(acc, amount)
}

// ApplyWithdrawal списывает сумму по стандартным лимитам
func ApplyWithdrawal(acc model.Account, amount int) (model.Account, error) {
	return DefaultLimits().ApplyWithdrawal(acc, amount)
}
