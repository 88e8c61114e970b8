package service

import (
	"context"
	"slot_backend/internal/model"
)

type SpinService interface {
	Spin(ctx context.Context, spinReq model.Spin) model.SpinResult
	Stats(ctx context.Context) model.Stats
}
