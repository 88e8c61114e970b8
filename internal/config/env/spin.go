package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slot_backend/internal/config"

	"gopkg.in/yaml.v3"
)

const (
	defaultSymbols          = 6
	defaultWinMultiplier    = 5
	defaultFreeSpinsChance  = 0.10
	defaultFreeSpinsAward   = 5
	defaultMultiplierChance = 0.05
	defaultMultiplierValue  = 2
	defaultStatsWindow      = 500
)

// Структура секции spin в config.yaml
type spinFile struct {
	Spin struct {
		Symbols       *int     `yaml:"symbols"`
		WinMultiplier *float64 `yaml:"win_multiplier"`
		FreeSpins     struct {
			Chance *float64 `yaml:"chance"`
			Award  *int     `yaml:"award"`
		} `yaml:"free_spins"`
		Multiplier struct {
			Chance *float64 `yaml:"chance"`
			Value  *float64 `yaml:"value"`
		} `yaml:"multiplier"`
		StatsWindow *int `yaml:"stats_window"`
	} `yaml:"spin"`
}

type spinConfig struct {
	symbols          int
	winMultiplier    float64
	freeSpinsChance  float64
	freeSpinsAward   int
	multiplierChance float64
	multiplierValue  float64
	statsWindow      int
}

// DefaultSpinConfig Параметры игры по умолчанию: 6 символов, x5, 10% на 5 фриспинов, 5% на x2
func DefaultSpinConfig() config.SpinConfig {
	return defaultSpinConfig()
}

func defaultSpinConfig() *spinConfig {
	return &spinConfig{
		symbols:          defaultSymbols,
		winMultiplier:    defaultWinMultiplier,
		freeSpinsChance:  defaultFreeSpinsChance,
		freeSpinsAward:   defaultFreeSpinsAward,
		multiplierChance: defaultMultiplierChance,
		multiplierValue:  defaultMultiplierValue,
		statsWindow:      defaultStatsWindow,
	}
}

// NewSpinConfigFromYAML Читает секцию spin из YAML файла.
// Отсутствующий файл или поле - значения по умолчанию.
func NewSpinConfigFromYAML(path string) (config.SpinConfig, error) {
	cfg := defaultSpinConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read spin config: %w", err)
	}

	var file spinFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse spin config: %w", err)
	}

	s := file.Spin
	if s.Symbols != nil {
		cfg.symbols = *s.Symbols
	}
	if s.WinMultiplier != nil {
		cfg.winMultiplier = *s.WinMultiplier
	}
	if s.FreeSpins.Chance != nil {
		cfg.freeSpinsChance = *s.FreeSpins.Chance
	}
	if s.FreeSpins.Award != nil {
		cfg.freeSpinsAward = *s.FreeSpins.Award
	}
	if s.Multiplier.Chance != nil {
		cfg.multiplierChance = *s.Multiplier.Chance
	}
	if s.Multiplier.Value != nil {
		cfg.multiplierValue = *s.Multiplier.Value
	}
	if s.StatsWindow != nil {
		cfg.statsWindow = *s.StatsWindow
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *spinConfig) validate() error {
	if cfg.symbols <= 0 {
		return errors.New("spin.symbols must be positive")
	}
	if cfg.winMultiplier < 0 {
		return errors.New("spin.win_multiplier must not be negative")
	}
	if cfg.freeSpinsChance < 0 || cfg.freeSpinsChance > 1 {
		return fmt.Errorf("spin.free_spins.chance %v out of [0, 1]", cfg.freeSpinsChance)
	}
	if cfg.freeSpinsAward < 0 {
		return errors.New("spin.free_spins.award must not be negative")
	}
	if cfg.multiplierChance < 0 || cfg.multiplierChance > 1 {
		return fmt.Errorf("spin.multiplier.chance %v out of [0, 1]", cfg.multiplierChance)
	}
	if cfg.multiplierValue <= 0 {
		return errors.New("spin.multiplier.value must be positive")
	}
	if cfg.statsWindow <= 0 {
		return errors.New("spin.stats_window must be positive")
	}
	return nil
}

func (cfg *spinConfig) Symbols() int              { return cfg.symbols }
func (cfg *spinConfig) WinMultiplier() float64    { return cfg.winMultiplier }
func (cfg *spinConfig) FreeSpinsChance() float64  { return cfg.freeSpinsChance }
func (cfg *spinConfig) FreeSpinsAward() int       { return cfg.freeSpinsAward }
func (cfg *spinConfig) MultiplierChance() float64 { return cfg.multiplierChance }
func (cfg *spinConfig) MultiplierValue() float64  { return cfg.multiplierValue }
func (cfg *spinConfig) StatsWindow() int          { return cfg.statsWindow }
