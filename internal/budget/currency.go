package budget

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/travelglobal/planner/internal/domain"
)

// BaseCurrency is the code every table amount is expressed in.
const BaseCurrency = "USD"

// Currency is a display currency with a fixed rate from USD.
type Currency struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}

var currencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", Rate: 1},
	"EUR": {Code: "EUR", Symbol: "€", Rate: 0.92},
	"GBP": {Code: "GBP", Symbol: "£", Rate: 0.79},
	"JPY": {Code: "JPY", Symbol: "¥", Rate: 149.5},
}

// CurrencyCodes lists the supported codes in display order.
var CurrencyCodes = []string{"USD", "EUR", "GBP", "JPY"}

// LookupCurrency resolves a currency code, case-insensitively.
// An empty code selects BaseCurrency.
func LookupCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = BaseCurrency
	}
	c, ok := currencies[code]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, code)
	}
	return c, nil
}

// Convert returns round(amount * rate), rounding halves away from zero.
func (c Currency) Convert(amount int) int {
	return int(math.Round(float64(amount) * c.Rate))
}

// Format renders amount (in base currency) as e.g. "€1,234".
func (c Currency) Format(amount int) string {
	return c.Symbol + groupThousands(c.Convert(amount))
}

func groupThousands(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
