package converter

import (
	"slot_backend/internal/api/dto/spin"
	"slot_backend/internal/model"
)

func ToSpin(req spin.SpinRequest) model.Spin {
	return model.Spin{
		Bet: req.Bet.Value,
	}
}

func ToSpinResponse(res model.SpinResult) spin.SpinResponse {
	return spin.SpinResponse{
		Result: res.Grid,
		Win:    res.Win,
		Bonus: spin.Bonus{
			FreeSpins:  res.Bonus.FreeSpins,
			Multiplier: res.Bonus.Multiplier,
		},
	}
}

func ToStatsResponse(st model.Stats) spin.StatsResponse {
	return spin.StatsResponse{
		TotalSpins:         st.TotalSpins,
		TotalBet:           st.TotalBet,
		TotalWin:           st.TotalWin,
		RTP:                st.RTP,
		WinningSpins:       st.WinningSpins,
		FreeSpinTriggers:   st.FreeSpinTriggers,
		MultiplierTriggers: st.MultiplierTriggers,
		WindowRTP:          st.WindowRTP,
		WindowSize:         st.WindowSize,
	}
}
