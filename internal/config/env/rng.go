package env

import (
	"fmt"
	"os"
	"slot_backend/internal/config"
	"strconv"
)

const (
	rngSeedEnvName = "RNG_SEED"
)

type rngConfig struct {
	seed    uint64
	hasSeed bool
}

func NewRNGConfig() (config.RNGConfig, error) {
	raw := os.Getenv(rngSeedEnvName)
	if len(raw) == 0 {
		return &rngConfig{}, nil
	}

	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid rng seed: %w", err)
	}
	return &rngConfig{seed: seed, hasSeed: true}, nil
}

func (cfg *rngConfig) Seed() (uint64, bool) {
	return cfg.seed, cfg.hasSeed
}
