package spin

import (
	"context"
	"math"
	"slot_backend/internal/model"

	"go.uber.org/zap"
)

const (
	// Оцениваемая строка (средняя)
	payRow = 1
	// Сколько первых ячеек строки должны совпасть
	matchCount = 3
	// Ставка по умолчанию
	defaultBet = 1
)

// Spin выполняет спин и обновляет статистику
func (s *serv) Spin(ctx context.Context, spinReq model.Spin) model.SpinResult {
	bet := NormalizeBet(spinReq.Bet, s.cfg.WinMultiplier())

	// КЛЮЧЕВОЙ ВЫЗОВ
	res := s.SpinOnce(bet)

	if s.statsRepo != nil {
		s.statsRepo.UpdateState(bet, res)
	}
	if s.recorder != nil {
		s.recorder.ObserveSpin(bet, res)
	}

	s.log.Debug("spin",
		zap.Float64("bet", bet),
		zap.Float64("win", res.Win),
		zap.Int("free_spins", res.Bonus.FreeSpins),
		zap.Float64("multiplier", res.Bonus.Multiplier),
	)

	return res
}

// Stats возвращает копию текущей статистики
func (s *serv) Stats(ctx context.Context) model.Stats {
	if s.statsRepo == nil {
		return model.Stats{}
	}
	return s.statsRepo.State()
}

// SpinOnce выполняет один спин без побочных эффектов.
// Ставка должна быть уже нормализована.
func (s *serv) SpinOnce(bet float64) model.SpinResult {
	// Генерация игрового поля
	grid := s.GenerateGrid()

	// Выигрыш только по средней строке
	win := EvaluateGrid(grid, bet, s.cfg.WinMultiplier())

	// Бонусы разыгрываются независимо от поля
	bonus := s.RollBonus()

	return model.SpinResult{
		Grid:  grid,
		Win:   win,
		Bonus: bonus,
	}
}

// GenerateGrid генерирует поле 3x5, каждая ячейка равновероятно из Symbols() категорий
func (s *serv) GenerateGrid() model.Grid {
	var grid model.Grid
	symbols := s.cfg.Symbols()
	for r := 0; r < model.Rows; r++ {
		for c := 0; c < model.Cols; c++ {
			grid[r][c] = s.src.IntN(symbols)
		}
	}
	return grid
}

// RollBonus два независимых броска: фриспины и множитель
func (s *serv) RollBonus() model.Bonus {
	bonus := model.Bonus{
		FreeSpins:  0,
		Multiplier: 1,
	}
	if s.src.Float64() < s.cfg.FreeSpinsChance() {
		bonus.FreeSpins = s.cfg.FreeSpinsAward()
	}
	if s.src.Float64() < s.cfg.MultiplierChance() {
		bonus.Multiplier = s.cfg.MultiplierValue()
	}
	return bonus
}

// EvaluateGrid Если первые три ячейки средней строки равны - выигрыш bet*winMultiplier.
// Остальные строки, колонки и диагонали не учитываются.
func EvaluateGrid(grid model.Grid, bet, winMultiplier float64) float64 {
	row := grid[payRow]
	for c := 1; c < matchCount; c++ {
		if row[c] != row[0] {
			return 0
		}
	}
	return bet * winMultiplier
}

// NormalizeBet Ставка <= 0, NaN, бесконечность или такая, что выигрыш
// bet*winMultiplier не помещается в float64, превращается в 1
func NormalizeBet(bet, winMultiplier float64) float64 {
	if !isFinite(bet) || bet <= 0 || !isFinite(bet*winMultiplier) {
		return defaultBet
	}
	return bet
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
