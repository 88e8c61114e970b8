package model

// Состояние статистики слота
type SpinState struct {
	TotalSpins int     // Сколько всего спинов сделано
	TotalBet   float64 // Сумма всех ставок
	TotalWin   float64 // Сумма всех выигрышей

	CurrentRTP float64 // Текущий RTP = (TotalWin/TotalBet)*100

	WinningSpins       int // Спины с ненулевым выигрышем
	FreeSpinTriggers   int // Сколько раз выпали фриспины
	MultiplierTriggers int // Сколько раз выпал множитель

	SpinWindow []SpinRecord // Окно последних спинов для анализа
	WindowRTP  float64      // RTP в окне последних спинов
	WindowSize int          // Размер окна
}

// Результат спина для окна
type SpinRecord struct {
	Bet float64
	Win float64
}
