package spin

import (
	"slot_backend/internal/config"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"
	"slot_backend/pkg/rng"

	"go.uber.org/zap"
)

// Recorder получает каждый сыгранный спин (метрики)
type Recorder interface {
	ObserveSpin(bet float64, res model.SpinResult)
}

type serv struct {
	cfg       config.SpinConfig
	src       rng.Source
	statsRepo repository.SpinStatsRepository
	recorder  Recorder
	log       *zap.Logger
}

// NewSpinService Создать слот 3x5 с одной линией
func NewSpinService(
	cfg config.SpinConfig,
	src rng.Source,
	statsRepo repository.SpinStatsRepository,
	recorder Recorder,
	log *zap.Logger,
) service.SpinService {
	if log == nil {
		log = zap.NewNop()
	}
	return &serv{
		cfg:       cfg,
		src:       src,
		statsRepo: statsRepo,
		recorder:  recorder,
		log:       log,
	}
}
