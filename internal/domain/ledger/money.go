package ledger

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyPrefix is prepended to every formatted ledger amount.
const CurrencyPrefix = "₹ "

// MoneyPlaces is the number of fraction digits stored for every amount.
const MoneyPlaces = 2

// Amount is a monetary value. It decodes leniently from JSON numbers and
// numeric strings; anything it cannot read becomes zero.
type Amount struct {
	decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{decimal.Zero}

var (
	hundred      = decimal.NewFromInt(100)
	axisHeadroom = decimal.RequireFromString("1.1")
)

// NewAmount wraps a decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d}
}

// AmountFromInt returns an amount of whole rupees.
func AmountFromInt(v int64) Amount {
	return Amount{decimal.NewFromInt(v)}
}

// AmountFromFloat returns an amount from a float, treating NaN and Inf as zero.
func AmountFromFloat(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Zero
	}
	return Amount{decimal.NewFromFloat(v)}
}

// ParseAmount parses s, returning zero for blank or malformed input.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero
	}
	return Amount{d}
}

// ToAmount coerces v to an amount. Missing, non-numeric and NaN values are zero.
func ToAmount(v any) Amount {
	switch x := v.(type) {
	case nil:
		return Zero
	case Amount:
		return x
	case *Amount:
		if x == nil {
			return Zero
		}
		return *x
	case decimal.Decimal:
		return Amount{x}
	case float64:
		return AmountFromFloat(x)
	case float32:
		return AmountFromFloat(float64(x))
	case int:
		return AmountFromInt(int64(x))
	case int8:
		return AmountFromInt(int64(x))
	case int16:
		return AmountFromInt(int64(x))
	case int32:
		return AmountFromInt(int64(x))
	case int64:
		return AmountFromInt(x)
	case uint:
		return Amount{decimal.NewFromUint64(uint64(x))}
	case uint8:
		return AmountFromInt(int64(x))
	case uint16:
		return AmountFromInt(int64(x))
	case uint32:
		return AmountFromInt(int64(x))
	case uint64:
		return Amount{decimal.NewFromUint64(x)}
	case json.Number:
		return ParseAmount(x.String())
	case string:
		return ParseAmount(x)
	default:
		return Zero
	}
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{a.Decimal.Sub(b.Decimal)}
}

// RoundMoney rounds half away from zero to MoneyPlaces.
func (a Amount) RoundMoney() Amount {
	return Amount{a.Decimal.Round(MoneyPlaces)}
}

// Eq reports whether a and b hold the same value regardless of scale.
func (a Amount) Eq(b Amount) bool {
	return a.Decimal.Equal(b.Decimal)
}

// Positive reports whether a > 0.
func (a Amount) Positive() bool {
	return a.Decimal.IsPositive()
}

// MarshalJSON writes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts numbers, numeric strings and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Zero
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			*a = Zero
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}
	*a = ParseAmount(string(data))
	return nil
}

// Float returns the amount as a float for charting.
func (a Amount) Float() float64 {
	f, _ := a.Decimal.Float64()
	return f
}

// FormatMoney renders v as "₹ " followed by the Indian-grouped amount with two
// fraction digits, e.g. "₹ 12,34,567.50".
func FormatMoney(v any) string {
	a := ToAmount(v)
	fixed := a.Decimal.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	if sign != "" && strings.Trim(whole+frac, "0") == "" {
		sign = ""
	}
	return CurrencyPrefix + sign + groupIndian(whole) + "." + frac
}

// FormatCount renders v as an Indian-grouped whole number with no prefix.
func FormatCount(v any) string {
	a := ToAmount(v)
	fixed := a.Decimal.StringFixed(0)
	if strings.HasPrefix(fixed, "-") {
		if fixed == "-0" {
			return "0"
		}
		return "-" + groupIndian(fixed[1:])
	}
	return groupIndian(fixed)
}

// CompactAmount abbreviates v for chart axes using crore, lakh and thousand
// units with one decimal place.
func CompactAmount(v any) string {
	a := ToAmount(v)
	switch {
	case a.Decimal.GreaterThanOrEqual(decimal.NewFromInt(10_000_000)):
		return a.Decimal.Div(decimal.NewFromInt(10_000_000)).StringFixed(1) + " Cr"
	case a.Decimal.GreaterThanOrEqual(decimal.NewFromInt(100_000)):
		return a.Decimal.Div(decimal.NewFromInt(100_000)).StringFixed(1) + " L"
	case a.Decimal.GreaterThanOrEqual(decimal.NewFromInt(1_000)):
		return a.Decimal.Div(decimal.NewFromInt(1_000)).StringFixed(1) + " K"
	default:
		return a.Decimal.String()
	}
}

// groupIndian inserts separators in the 3-2-2 pattern: the last three digits
// form one group, every group before that has two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}
