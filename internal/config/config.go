package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type SpinConfig interface {
	// Symbols количество категорий символов на поле
	Symbols() int
	// WinMultiplier кратность выигрыша к ставке
	WinMultiplier() float64
	FreeSpinsChance() float64
	FreeSpinsAward() int
	MultiplierChance() float64
	MultiplierValue() float64
	// StatsWindow размер окна последних спинов для статистики
	StatsWindow() int
}

type RNGConfig interface {
	// Seed возвращает seed и признак, задан ли он
	Seed() (uint64, bool)
}

type HTTPConfig interface {
	Address() string
	ShutdownTimeout() time.Duration
}

type StaticConfig interface {
	Dir() string
}

type CacheConfig interface {
	URL() string
	Enabled() bool
}

type LogConfig interface {
	Level() string
	App() string
	Dir() string
	File() bool
}
