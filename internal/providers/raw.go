package providers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexNumber decodes price fields whether the upstream emits them as a JSON
// number or a quoted decimal string (the mock catalogs do both depending on
// how a record was seeded).
type FlexNumber float64

// UnmarshalJSON accepts both number and string encodings. Values that do
// not parse to a finite number are rejected so a broken upstream record
// fails the request instead of silently pricing an item at zero.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return fmt.Errorf("price is null")
	}
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("cannot decode %s as price", raw)
		}
		raw = strings.TrimSpace(unquoted)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("cannot decode %q as price", raw)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("price %q is not finite", raw)
	}
	*n = FlexNumber(value)
	return nil
}

// brazilianRaw mirrors the brazilian provider's JSON shape. A handful of
// legacy records carry "name" instead of "nome"; both are captured and the
// normalizer picks.
type brazilianRaw struct {
	ID        string      `json:"id"`
	Nome      string      `json:"nome"`
	Name      string      `json:"name"`
	Preco     *FlexNumber `json:"preco"`
	Imagem    string      `json:"imagem"`
	Descricao string      `json:"descricao"`
}

// europeanRaw mirrors the european provider's JSON shape.
type europeanRaw struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       *FlexNumber `json:"price"`
	Gallery     []string    `json:"gallery"`
	Description string      `json:"description"`
}
