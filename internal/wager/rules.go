// Package wager содержит правила слота и расчёт спина.
// Пакет не хранит состояние счёта и не делает ввода-вывода:
// на вход счёт и ставка, на выход результат и дельта для применения.
package wager

import (
	"errors"
	"fmt"
	"slices"

	"lucky_slots/internal/model"

	"github.com/samber/lo"
)

// ErrInvalidRules - правила слота не прошли проверку
var ErrInvalidRules = errors.New("invalid slot rules")

const (
	// Выплата за два одинаковых символа
	defaultPairPayout = 10
	// Фриспины за проигрышный платный спин
	defaultBonusFreeSpins = 3
)

// Rules - правила слота: алфавит, допустимые ставки и таблица выплат
type Rules struct {
	Symbols        []model.Symbol       // Алфавит барабана, все символы равновероятны
	Stakes         []int                // Допустимые ставки по возрастанию
	Jackpots       map[model.Symbol]int // Выплата за три одинаковых символа
	PairPayout     int                  // Выплата за ровно два одинаковых символа
	BonusFreeSpins int                  // Сколько фриспинов даём за проигрышный платный спин
}

// DefaultRules возвращает правила оригинального слота
func DefaultRules() Rules {
	return Rules{
		Symbols: []model.Symbol{
			model.Cherry, model.Lemon, model.Orange, model.Bell,
			model.Star, model.Diamond, model.Seven,
		},
		Stakes: []int{10, 25, 50, 100, 200, 500},
		Jackpots: map[model.Symbol]int{
			model.Diamond: 500,
			model.Seven:   300,
			model.Star:    200,
			model.Bell:    150,
			model.Orange:  100,
			model.Lemon:   75,
			model.Cherry:  50,
		},
		PairPayout:     defaultPairPayout,
		BonusFreeSpins: defaultBonusFreeSpins,
	}
}

// Validate проверяет, что правила согласованы между собой
func (r Rules) Validate() error {
	if len(r.Symbols) < 2 {
		return fmt.Errorf("%w: need at least 2 symbols, got %d", ErrInvalidRules, len(r.Symbols))
	}
	if len(lo.Uniq(r.Symbols)) != len(r.Symbols) {
		return fmt.Errorf("%w: duplicate symbols", ErrInvalidRules)
	}
	for _, sym := range r.Symbols {
		payout, ok := r.Jackpots[sym]
		if !ok {
			return fmt.Errorf("%w: no jackpot for symbol %q", ErrInvalidRules, sym)
		}
		if payout <= 0 {
			return fmt.Errorf("%w: jackpot for %q must be positive", ErrInvalidRules, sym)
		}
	}
	if len(r.Jackpots) != len(r.Symbols) {
		return fmt.Errorf("%w: jackpot table has symbols outside the alphabet", ErrInvalidRules)
	}
	if len(r.Stakes) == 0 {
		return fmt.Errorf("%w: empty stake set", ErrInvalidRules)
	}
	if !slices.IsSorted(r.Stakes) || len(lo.Uniq(r.Stakes)) != len(r.Stakes) {
		return fmt.Errorf("%w: stakes must be strictly ascending", ErrInvalidRules)
	}
	if r.Stakes[0] <= 0 {
		return fmt.Errorf("%w: stakes must be positive", ErrInvalidRules)
	}
	if r.PairPayout < 0 {
		return fmt.Errorf("%w: negative pair payout", ErrInvalidRules)
	}
	if r.BonusFreeSpins < 0 {
		return fmt.Errorf("%w: negative bonus free spins", ErrInvalidRules)
	}
	return nil
}

// IsStake проверяет, что ставка входит в допустимый набор
func (r Rules) IsStake(stake int) bool {
	return lo.Contains(r.Stakes, stake)
}

// Payout считает выплату за комбинацию.
// Тройка проверяется раньше пары, так как три одинаковых символа тоже дают пару
func (r Rules) Payout(reels model.Reels) int {
	a, b, c := reels[0], reels[1], reels[2]

	if a == b && b == c {
		return r.Jackpots[a]
	}

	if a == b || b == c || a == c {
		return r.PairPayout
	}

	return 0
}
