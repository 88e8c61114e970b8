package health

import (
	"context"
	"net/http"
	"slot_backend/pkg/resp"
	"time"
)

const pingTimeout = 500 * time.Millisecond

// Pinger проверка внешней зависимости (кэш)
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	cache Pinger
}

// NewHandler cache может быть nil, если кэш не настроен
func NewHandler(cache Pinger) *Handler {
	return &Handler{cache: cache}
}

// Health Всегда 200. Недоступный кэш только отражается в ответе.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{"status": "ok"}

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.cache.Ping(ctx); err != nil {
			body["cache"] = "unavailable"
		} else {
			body["cache"] = "ok"
		}
	}

	resp.WriteJSONResponse(w, http.StatusOK, body)
}
