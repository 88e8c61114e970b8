package repository

import (
	"slot_backend/internal/model"
)

type SpinStatsRepository interface {
	UpdateState(bet float64, res model.SpinResult)
	State() model.Stats
}
