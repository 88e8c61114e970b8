package rng

import (
	"math/rand/v2"
	"sync"
)

// Source источник случайных чисел для генерации спина.
// Не криптографический.
type Source interface {
	// IntN возвращает число в диапазоне [0, n)
	IntN(n int) int
	// Float64 возвращает число в диапазоне [0.0, 1.0)
	Float64() float64
}

type globalSource struct{}

// New Источник на глобальном генераторе math/rand/v2.
// Безопасен для конкурентного использования.
func New() Source {
	return globalSource{}
}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

type seededSource struct {
	mtx sync.Mutex
	r   *rand.Rand
}

// NewSeeded Детерминированный источник на PCG.
// Одинаковый seed дает одинаковую последовательность.
func NewSeeded(seed uint64) Source {
	return &seededSource{
		r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *seededSource) IntN(n int) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.IntN(n)
}

func (s *seededSource) Float64() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.Float64()
}
