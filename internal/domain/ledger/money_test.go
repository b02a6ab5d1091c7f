package ledger

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAmount(t *testing.T, want string, got Amount) {
	t.Helper()
	assert.Truef(t, got.Eq(ParseAmount(want)), "want %s, got %s", want, got.String())
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"zero", 0, "₹ 0.00"},
		{"NaN", math.NaN(), "₹ 0.00"},
		{"infinity", math.Inf(1), "₹ 0.00"},
		{"nil", nil, "₹ 0.00"},
		{"garbage string", "abc", "₹ 0.00"},
		{"unsupported type", struct{}{}, "₹ 0.00"},
		{"lakh grouping", 1234567.5, "₹ 12,34,567.50"},
		{"crore grouping", int64(123456789), "₹ 12,34,56,789.00"},
		{"one lakh", 100000, "₹ 1,00,000.00"},
		{"thousand", "1000", "₹ 1,000.00"},
		{"below thousand", 999, "₹ 999.00"},
		{"rounds to paise", 999.999, "₹ 1,000.00"},
		{"negative", -500, "₹ -500.00"},
		{"negative grouped", -123456.7, "₹ -1,23,456.70"},
		{"tiny negative rounds to zero", -0.001, "₹ 0.00"},
		{"amount", AmountFromInt(2500), "₹ 2,500.00"},
		{"decimal", decimal.RequireFromString("10.5"), "₹ 10.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.in))
		})
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "0", FormatCount(math.NaN()))
	assert.Equal(t, "12,34,567", FormatCount(1234567))
	assert.Equal(t, "13", FormatCount(12.6))
	assert.Equal(t, "-1,000", FormatCount(-1000))
}

func TestCompactAmount(t *testing.T) {
	assert.Equal(t, "2.5 Cr", CompactAmount(25_000_000))
	assert.Equal(t, "1.0 Cr", CompactAmount(10_000_000))
	assert.Equal(t, "1.5 L", CompactAmount(150_000))
	assert.Equal(t, "1.5 K", CompactAmount(1_500))
	assert.Equal(t, "500", CompactAmount(500))
	assert.Equal(t, "0", CompactAmount(nil))
}

func TestToAmount(t *testing.T) {
	assertAmount(t, "200", ToAmount("200"))
	assertAmount(t, "200", ToAmount(" 200 "))
	assertAmount(t, "0", ToAmount(""))
	assertAmount(t, "12.5", ToAmount(json.Number("12.5")))
	assertAmount(t, "7", ToAmount(int32(7)))
	assertAmount(t, "-8", ToAmount(int8(-8)))
	assertAmount(t, "16", ToAmount(int16(16)))
	assertAmount(t, "255", ToAmount(uint8(255)))
	assertAmount(t, "65535", ToAmount(uint16(65535)))
	assertAmount(t, "18446744073709551615", ToAmount(uint64(18446744073709551615)))
	assertAmount(t, "42", ToAmount(uint(42)))
	assertAmount(t, "0", ToAmount((*Amount)(nil)))

	a := AmountFromInt(3)
	assertAmount(t, "3", ToAmount(&a))
}

func TestAmount_JSON(t *testing.T) {
	var payload struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
		D Amount `json:"d"`
		E Amount `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a":"200","b":1000.5,"c":"abc","d":null,"e":{"x":1}}`), &payload)
	require.NoError(t, err)

	assertAmount(t, "200", payload.A)
	assertAmount(t, "1000.5", payload.B)
	assertAmount(t, "0", payload.C)
	assertAmount(t, "0", payload.D)
	assertAmount(t, "0", payload.E)

	out, err := json.Marshal(map[string]Amount{"total": AmountFromInt(1000)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":1000}`, string(out))
}

func TestAmount_Arithmetic(t *testing.T) {
	a := ParseAmount("100.25")
	b := ParseAmount("0.75")

	assertAmount(t, "101", a.Add(b))
	assertAmount(t, "99.5", a.Sub(b))
	assert.True(t, a.Positive())
	assert.False(t, Zero.Positive())
	assert.InDelta(t, 100.25, a.Float(), 1e-9)
}
