package model

const (
	// Rows строки поля
	Rows = 3
	// Cols колонки поля
	Cols = 5
)

// Grid Игровое поле 3x5, в ячейках ID символов
type Grid [Rows][Cols]int

type Spin struct {
	Bet float64
}

type Bonus struct {
	FreeSpins  int
	Multiplier float64
}

type SpinResult struct {
	Grid  Grid
	Win   float64
	Bonus Bonus
}
