package spin_stats_repo

import (
	"math"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	repoModel "slot_backend/internal/repository/spin_stats_repo/model"
	"sync"
)

const defaultWindowSize = 500

// Реализация репозитория для хранения статистики спинов в памяти процесса
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.SpinState
}

var _ repository.SpinStatsRepository = (*StateRepo)(nil)

// NewSpinStatsRepository Конструктор репозитория с пустым состоянием
func NewSpinStatsRepository(windowSize int) *StateRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StateRepo{
		state: repoModel.SpinState{
			SpinWindow: make([]repoModel.SpinRecord, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// UpdateState Обновление статистики после спина
func (r *StateRepo) UpdateState(bet float64, res model.SpinResult) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalBet = saturatingAdd(r.state.TotalBet, bet)
	r.state.TotalWin = saturatingAdd(r.state.TotalWin, res.Win)
	r.state.CurrentRTP = rtp(r.state.TotalWin, r.state.TotalBet)

	if res.Win > 0 {
		r.state.WinningSpins++
	}
	if res.Bonus.FreeSpins > 0 {
		r.state.FreeSpinTriggers++
	}
	if res.Bonus.Multiplier > 1 {
		r.state.MultiplierTriggers++
	}

	// Добавляем спин в окно
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinRecord{
		Bet: saturatingAdd(0, bet),
		Win: saturatingAdd(0, res.Win),
	})

	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	// Пересчитываем RTP в окне
	var windowBet, windowWin float64
	for _, spin := range r.state.SpinWindow {
		windowBet = saturatingAdd(windowBet, spin.Bet)
		windowWin = saturatingAdd(windowWin, spin.Win)
	}
	r.state.WindowRTP = rtp(windowWin, windowBet)
}

// saturatingAdd Суммы не уходят в Inf/NaN: переполнение упирается в MaxFloat64,
// нечисловые и отрицательные слагаемые не учитываются
func saturatingAdd(total, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return total
	}
	sum := total + v
	if math.IsInf(sum, 0) {
		return math.MaxFloat64
	}
	return sum
}

// rtp win/bet*100, 0 если ставок нет или результат не конечен
func rtp(win, bet float64) float64 {
	if bet <= 0 {
		return 0
	}
	v := win / bet * 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// State Возвращает снимок статистики
func (r *StateRepo) State() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return model.Stats{
		TotalSpins:         r.state.TotalSpins,
		TotalBet:           r.state.TotalBet,
		TotalWin:           r.state.TotalWin,
		RTP:                r.state.CurrentRTP,
		WinningSpins:       r.state.WinningSpins,
		FreeSpinTriggers:   r.state.FreeSpinTriggers,
		MultiplierTriggers: r.state.MultiplierTriggers,
		WindowRTP:          r.state.WindowRTP,
		WindowSize:         len(r.state.SpinWindow),
	}
}
