package spin

type SpinRequest struct {
	Bet Bet `json:"bet"` // Размер ставки, при отсутствии или <= 0 - 1
}

type SpinResponse struct {
	Result [3][5]int `json:"result"` // Поле 3x5, ID символов 0..5
	Win    float64   `json:"win"`    // Выигрыш: 0 или bet*5
	Bonus  Bonus     `json:"bonus"`
}

type Bonus struct {
	FreeSpins  int     `json:"freeSpins"`  // 0 или 5
	Multiplier float64 `json:"multiplier"` // 1 или 2
}

type StatsResponse struct {
	TotalSpins         int     `json:"totalSpins"`
	TotalBet           float64 `json:"totalBet"`
	TotalWin           float64 `json:"totalWin"`
	RTP                float64 `json:"rtp"`
	WinningSpins       int     `json:"winningSpins"`
	FreeSpinTriggers   int     `json:"freeSpinTriggers"`
	MultiplierTriggers int     `json:"multiplierTriggers"`
	WindowRTP          float64 `json:"windowRtp"`
	WindowSize         int     `json:"windowSize"`
}
