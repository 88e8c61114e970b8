package spin

import (
	"context"
	"math"
	"slot_backend/internal/config/env"
	"slot_backend/internal/model"
	"slot_backend/internal/repository/spin_stats_repo"
	"slot_backend/pkg/rng"
	"sync"
	"testing"
)

// scriptedSource отдает заранее заданные значения по кругу
type scriptedSource struct {
	ints   []int
	floats []float64
	i, f   int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.ints[s.i%len(s.ints)] % n
	s.i++
	return v
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[s.f%len(s.floats)]
	s.f++
	return v
}

// gridDraws строит 15 значений для поля с заданной средней строкой
func gridDraws(middle [5]int) []int {
	draws := make([]int, 0, model.Rows*model.Cols)
	draws = append(draws, 0, 1, 2, 3, 4)
	draws = append(draws, middle[:]...)
	draws = append(draws, 5, 4, 3, 2, 1)
	return draws
}

type countingRecorder struct {
	mtx   sync.Mutex
	spins int
	bets  float64
}

func (c *countingRecorder) ObserveSpin(bet float64, _ model.SpinResult) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.spins++
	c.bets += bet
}

func newTestServ(src rng.Source) *serv {
	return &serv{
		cfg: env.DefaultSpinConfig(),
		src: src,
	}
}

func TestSpinOnceMiddleRowMatchPays(t *testing.T) {
	s := newTestServ(&scriptedSource{
		ints:   gridDraws([5]int{2, 2, 2, 0, 5}),
		floats: []float64{0.99},
	})

	res := s.SpinOnce(3)

	if res.Win != 15 {
		t.Errorf("Win = %v, want 15", res.Win)
	}
	if res.Grid[1] != [5]int{2, 2, 2, 0, 5} {
		t.Errorf("middle row = %v", res.Grid[1])
	}
}

func TestSpinOnceMiddleRowMismatchPaysNothing(t *testing.T) {
	for _, bet := range []float64{1, 3, 100} {
		s := newTestServ(&scriptedSource{
			ints:   gridDraws([5]int{1, 2, 1, 1, 1}),
			floats: []float64{0.99},
		})
		if res := s.SpinOnce(bet); res.Win != 0 {
			t.Errorf("bet %v: Win = %v, want 0", bet, res.Win)
		}
	}
}

func TestOnlyFirstThreeCellsOfMiddleRowCount(t *testing.T) {
	tests := []struct {
		name string
		grid model.Grid
		want float64
	}{
		{
			name: "top row match ignored",
			grid: model.Grid{{3, 3, 3, 3, 3}, {0, 1, 2, 3, 4}, {0, 0, 0, 0, 0}},
			want: 0,
		},
		{
			name: "last three of middle row ignored",
			grid: model.Grid{{0, 1, 2, 3, 4}, {0, 1, 4, 4, 4}, {0, 1, 2, 3, 4}},
			want: 0,
		},
		{
			name: "column match ignored",
			grid: model.Grid{{5, 0, 1, 2, 3}, {5, 1, 2, 3, 4}, {5, 2, 3, 4, 0}},
			want: 0,
		},
		{
			name: "first three match, tail differs",
			grid: model.Grid{{0, 1, 2, 3, 4}, {4, 4, 4, 1, 2}, {0, 1, 2, 3, 4}},
			want: 10,
		},
		{
			name: "whole middle row matches",
			grid: model.Grid{{0, 1, 2, 3, 4}, {0, 0, 0, 0, 0}, {0, 1, 2, 3, 4}},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateGrid(tt.grid, 2, 5); got != tt.want {
				t.Errorf("EvaluateGrid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeBet(t *testing.T) {
	tests := []struct {
		bet  float64
		want float64
	}{
		{bet: 2.5, want: 2.5},
		{bet: 1, want: 1},
		{bet: 0, want: 1},
		{bet: -4, want: 1},
		{bet: math.NaN(), want: 1},
		{bet: math.Inf(1), want: 1},
		{bet: math.Inf(-1), want: 1},
		{bet: 1e300, want: 1e300},
		{bet: 1e308, want: 1},
		{bet: math.MaxFloat64, want: 1},
	}

	for _, tt := range tests {
		if got := NormalizeBet(tt.bet, 5); got != tt.want {
			t.Errorf("NormalizeBet(%v) = %v, want %v", tt.bet, got, tt.want)
		}
	}
}

func TestSpinNormalizesInvalidBet(t *testing.T) {
	for _, bet := range []float64{0, -1, -100, math.NaN()} {
		src := &scriptedSource{
			ints:   gridDraws([5]int{4, 4, 4, 1, 2}),
			floats: []float64{0.99},
		}
		svc := NewSpinService(env.DefaultSpinConfig(), src, nil, nil, nil)

		res := svc.Spin(context.Background(), model.Spin{Bet: bet})
		if res.Win != 5 {
			t.Errorf("bet %v: Win = %v, want 5 (normalized bet 1)", bet, res.Win)
		}
	}
}

func TestSpinHugeWinningBetStaysFinite(t *testing.T) {
	repo := spin_stats_repo.NewSpinStatsRepository(10)
	src := &scriptedSource{
		ints:   gridDraws([5]int{2, 2, 2, 0, 1}),
		floats: []float64{0.99},
	}
	svc := NewSpinService(env.DefaultSpinConfig(), src, repo, nil, nil)

	res := svc.Spin(context.Background(), model.Spin{Bet: 1e308})
	if res.Win != 5 {
		t.Errorf("Win = %v, want 5 (bet normalized to 1)", res.Win)
	}

	st := svc.Stats(context.Background())
	if st.TotalBet != 1 || st.TotalWin != 5 {
		t.Errorf("stats = %+v, want TotalBet 1 and TotalWin 5", st)
	}
}

func TestRollBonus(t *testing.T) {
	tests := []struct {
		name   string
		floats []float64
		want   model.Bonus
	}{
		{name: "none", floats: []float64{0.5, 0.5}, want: model.Bonus{FreeSpins: 0, Multiplier: 1}},
		{name: "free spins only", floats: []float64{0.05, 0.5}, want: model.Bonus{FreeSpins: 5, Multiplier: 1}},
		{name: "multiplier only", floats: []float64{0.5, 0.01}, want: model.Bonus{FreeSpins: 0, Multiplier: 2}},
		{name: "both", floats: []float64{0.0, 0.0}, want: model.Bonus{FreeSpins: 5, Multiplier: 2}},
		{name: "boundaries are exclusive", floats: []float64{0.10, 0.05}, want: model.Bonus{FreeSpins: 0, Multiplier: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServ(&scriptedSource{ints: []int{0}, floats: tt.floats})
			if got := s.RollBonus(); got != tt.want {
				t.Errorf("RollBonus() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpinInvariants(t *testing.T) {
	s := newTestServ(rng.NewSeeded(2024))

	for i := 0; i < 5000; i++ {
		bet := float64(i%7 + 1)
		res := s.SpinOnce(bet)

		for r := 0; r < model.Rows; r++ {
			for c := 0; c < model.Cols; c++ {
				if v := res.Grid[r][c]; v < 0 || v >= 6 {
					t.Fatalf("spin %d: cell [%d][%d] = %d out of [0,6)", i, r, c, v)
				}
			}
		}
		if res.Win != 0 && res.Win != bet*5 {
			t.Fatalf("spin %d: Win = %v, want 0 or %v", i, res.Win, bet*5)
		}
		if res.Bonus.FreeSpins != 0 && res.Bonus.FreeSpins != 5 {
			t.Fatalf("spin %d: FreeSpins = %d", i, res.Bonus.FreeSpins)
		}
		if res.Bonus.Multiplier != 1 && res.Bonus.Multiplier != 2 {
			t.Fatalf("spin %d: Multiplier = %v", i, res.Bonus.Multiplier)
		}
	}
}

func TestBonusFrequencies(t *testing.T) {
	const trials = 20000
	s := newTestServ(rng.NewSeeded(7))

	var freeSpins, multiplied, wins int
	for i := 0; i < trials; i++ {
		res := s.SpinOnce(1)
		if res.Bonus.FreeSpins == 5 {
			freeSpins++
		}
		if res.Bonus.Multiplier == 2 {
			multiplied++
		}
		if res.Win > 0 {
			wins++
		}
	}

	check := func(name string, got int, want, tolerance float64) {
		freq := float64(got) / trials
		if math.Abs(freq-want) > tolerance {
			t.Errorf("%s frequency = %.4f, want %.2f ± %.3f", name, freq, want, tolerance)
		}
	}
	check("free spins", freeSpins, 0.10, 0.015)
	check("multiplier", multiplied, 0.05, 0.01)
	// 6 * (1/6)^3 = 1/36
	check("win", wins, 1.0/36, 0.01)
}

func TestSeededSpinsAreReproducible(t *testing.T) {
	a := newTestServ(rng.NewSeeded(11))
	b := newTestServ(rng.NewSeeded(11))

	for i := 0; i < 500; i++ {
		if ra, rb := a.SpinOnce(2), b.SpinOnce(2); ra != rb {
			t.Fatalf("spin %d differs: %+v vs %+v", i, ra, rb)
		}
	}
}

func TestSpinRecordsStatsAndMetrics(t *testing.T) {
	repo := spin_stats_repo.NewSpinStatsRepository(100)
	rec := &countingRecorder{}
	svc := NewSpinService(env.DefaultSpinConfig(), rng.NewSeeded(3), repo, rec, nil)

	ctx := context.Background()
	svc.Spin(ctx, model.Spin{Bet: 2})
	svc.Spin(ctx, model.Spin{Bet: 0})

	st := svc.Stats(ctx)
	if st.TotalSpins != 2 {
		t.Errorf("TotalSpins = %d, want 2", st.TotalSpins)
	}
	if st.TotalBet != 3 {
		t.Errorf("TotalBet = %v, want 3", st.TotalBet)
	}
	if rec.spins != 2 || rec.bets != 3 {
		t.Errorf("recorder saw %d spins, %v bet; want 2, 3", rec.spins, rec.bets)
	}
}

func TestStatsWithoutRepository(t *testing.T) {
	svc := NewSpinService(env.DefaultSpinConfig(), rng.New(), nil, nil, nil)
	if st := svc.Stats(context.Background()); st.TotalSpins != 0 {
		t.Errorf("expected empty stats, got %+v", st)
	}
}

func TestConcurrentSpins(t *testing.T) {
	repo := spin_stats_repo.NewSpinStatsRepository(50)
	svc := NewSpinService(env.DefaultSpinConfig(), rng.New(), repo, nil, nil)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				res := svc.Spin(context.Background(), model.Spin{Bet: 1})
				if res.Win != 0 && res.Win != 5 {
					t.Errorf("Win = %v", res.Win)
					return
				}
			}
		}()
	}
	wg.Wait()

	if st := svc.Stats(context.Background()); st.TotalSpins != 2000 {
		t.Errorf("TotalSpins = %d, want 2000", st.TotalSpins)
	}
}
