package model

// Stats Сводная статистика спинов с момента запуска процесса
type Stats struct {
	TotalSpins         int
	TotalBet           float64
	TotalWin           float64
	RTP                float64 // TotalWin/TotalBet*100
	WinningSpins       int
	FreeSpinTriggers   int
	MultiplierTriggers int
	WindowRTP          float64 // RTP в окне последних спинов
	WindowSize         int
}
