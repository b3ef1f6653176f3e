package wager

import (
	"math/rand/v2"
	"slices"
	"sync"

	"lucky_slots/internal/model"
)

// Source - источник случайности для розыгрыша барабанов.
// IntN возвращает число из [0, n)
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

// NewRandSource возвращает источник на глобальном генераторе math/rand/v2
func NewRandSource() Source {
	return globalSource{}
}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

type seededSource struct {
	mtx sync.Mutex
	rnd *rand.Rand
}

// NewSeededSource возвращает воспроизводимый источник с фиксированным сидом
func NewSeededSource(seed uint64) Source {
	return &seededSource{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *seededSource) IntN(n int) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.rnd.IntN(n)
}

// ScriptedSource выдаёт заранее заданную последовательность значений.
// Используется для детерминированных сценариев: каждое значение берётся по модулю n,
// после окончания последовательность начинается сначала
type ScriptedSource struct {
	mtx    sync.Mutex
	values []int
	pos    int
	calls  int
}

// NewScriptedSource создаёт источник с заданной последовательностью
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: values}
}

// ScriptReels собирает последовательность так, чтобы спины выпали ровно в заданном порядке
func ScriptReels(symbols []model.Symbol, spins ...model.Reels) *ScriptedSource {
	values := make([]int, 0, len(spins)*model.ReelCount)
	for _, spin := range spins {
		for _, sym := range spin {
			values = append(values, slices.Index(symbols, sym))
		}
	}
	return NewScriptedSource(values...)
}

func (s *ScriptedSource) IntN(n int) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls возвращает количество обращений к источнику
func (s *ScriptedSource) Calls() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.calls
}
