package resp

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// WriteJSONResponse Пишет ответ в формате JSON с указанным статусом.
// Статус отправляется только после успешного кодирования, иначе 500.
func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		zap.L().Error("failed to encode json response", zap.Int("status", status), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}
