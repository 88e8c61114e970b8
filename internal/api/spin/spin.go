package spin

import (
	"net/http"
	dto "slot_backend/internal/api/dto/spin"
	"slot_backend/internal/converter"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.SpinService
	Log  *zap.Logger
}

type Handler struct {
	serv service.SpinService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, log: log}
}

// Spin Один спин. Ставка из тела {"bet": n} или из query ?bet=n
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		h.log.Debug("invalid spin request", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// query используется, только если в теле нет ключа bet
	if !payload.Bet.Set {
		if q := r.URL.Query().Get("bet"); q != "" {
			payload.Bet = dto.ParseBet(q)
		}
	}

	result := h.serv.Spin(r.Context(), converter.ToSpin(payload))

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(result))
}

// Stats Статистика спинов с момента запуска
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats(r.Context())))
}
