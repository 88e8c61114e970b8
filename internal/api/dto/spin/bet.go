package spin

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Bet Ставка из запроса. Принимает число или числовую строку,
// любое другое значение декодируется в 0 без ошибки.
// Set отмечает, что ключ bet присутствовал (в том числе как null).
type Bet struct {
	Value float64
	Set   bool
}

func (b *Bet) UnmarshalJSON(data []byte) error {
	*b = Bet{Set: true}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		b.Value = ParseBet(s).Value
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		v, err := strconv.ParseFloat(string(data), 64)
		if err == nil {
			b.Value = v
		}
	}
	return nil
}

// ParseBet Разбирает ставку из строки (тело или query), нечисловое - 0
func ParseBet(s string) Bet {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Bet{Set: true}
	}
	return Bet{Value: v, Set: true}
}
