package wager

import (
	"errors"
	"fmt"

	"lucky_slots/internal/model"
)

var (
	// ErrInvalidStake - ставка не входит в допустимый набор
	ErrInvalidStake = errors.New("stake is not allowed")
	// ErrInsufficientFunds - нет фриспинов и баланса не хватает на ставку
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Delta - изменение счёта по итогам спина
type Delta struct {
	Stake            int  // Списывается с баланса, 0 для фриспина
	Payout           int  // Начисляется на баланс и в сумму выигрышей
	ConsumedFreeSpin bool // Спин оплачен фриспином
	GrantedFreeSpins int  // Если > 0, счётчик фриспинов устанавливается в это значение
}

// Apply применяет дельту к счёту и возвращает новое состояние
func (d Delta) Apply(acc model.Account) model.Account {
	acc.Balance = acc.Balance - d.Stake + d.Payout
	if d.Payout > 0 {
		acc.TotalWinnings += d.Payout
	}

	switch {
	case d.GrantedFreeSpins > 0:
		acc.FreeSpins = d.GrantedFreeSpins
	case d.ConsumedFreeSpin:
		acc.FreeSpins--
	}

	return acc
}

// Engine разыгрывает спины по правилам слота
type Engine struct {
	rules Rules
	src   Source
}

// NewEngine создаёт движок. Правила должны быть проверены через Rules.Validate
func NewEngine(rules Rules, src Source) *Engine {
	if src == nil {
		src = NewRandSource()
	}
	return &Engine{
		rules: rules,
		src:   src,
	}
}

// Rules возвращает правила движка
func (e *Engine) Rules() Rules {
	return e.rules
}

// EvaluateSpin проверяет, можно ли сделать спин, разыгрывает барабаны и считает дельту.
// Счёт не изменяется, дельту применяет вызывающий
func (e *Engine) EvaluateSpin(acc model.Account, stake int) (model.Outcome, Delta, error) {
	if !e.rules.IsStake(stake) {
		return model.Outcome{}, Delta{}, fmt.Errorf("%w: %d", ErrInvalidStake, stake)
	}

	// Фриспин имеет приоритет над балансом
	freeSpin := acc.FreeSpins > 0
	if !freeSpin && acc.Balance < stake {
		return model.Outcome{}, Delta{}, fmt.Errorf("%w: balance %d, stake %d", ErrInsufficientFunds, acc.Balance, stake)
	}

	reels := e.draw()
	payout := e.rules.Payout(reels)

	delta := Delta{
		Payout:           payout,
		ConsumedFreeSpin: freeSpin,
	}
	if !freeSpin {
		delta.Stake = stake
		// Проигрышный фриспин новых фриспинов не даёт
		if payout == 0 {
			delta.GrantedFreeSpins = e.rules.BonusFreeSpins
		}
	}

	return model.Outcome{
		Reels:            reels,
		Payout:           payout,
		ConsumedFreeSpin: freeSpin,
	}, delta, nil
}

// draw независимо выбирает символ для каждого барабана
func (e *Engine) draw() model.Reels {
	var reels model.Reels
	for i := range reels {
		reels[i] = e.rules.Symbols[e.src.IntN(len(e.rules.Symbols))]
	}
	return reels
}
