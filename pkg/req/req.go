package req

import (
	"encoding/json"
	"errors"
	"io"
)

// Decode Декодирует JSON тело запроса в T.
// Пустое тело не ошибка: возвращается нулевое значение T.
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	if body == nil {
		return payload, nil
	}
	defer body.Close()

	err := json.NewDecoder(body).Decode(&payload)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return payload, nil
		}
		return payload, err
	}
	return payload, nil
}
