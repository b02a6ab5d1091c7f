package ledger

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// DayOfMonth is a day number that may arrive as a JSON string or number.
type DayOfMonth string

func (d *DayOfMonth) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DayOfMonth(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}
	*d = DayOfMonth(data)
	return nil
}

// DailyTotal is one row of the payment trend as stored: the day of month,
// abbreviated month name and the amount paid that day.
type DailyTotal struct {
	Day   DayOfMonth `json:"day"`
	Month string     `json:"month"`
	Price Amount     `json:"price"`
}

// NewDailyTotal builds the row for t's calendar day.
func NewDailyTotal(t time.Time, price Amount) DailyTotal {
	return DailyTotal{
		Day:   DayOfMonth(t.Format("2")),
		Month: t.Format("Jan"),
		Price: price,
	}
}

// ChartPoint is a chart-ready point.
type ChartPoint struct {
	Label  string `json:"label"`
	Amount Amount `json:"amount"`
}

// Summarize turns the stored series into chart points labelled
// "<2-digit day> <month>". Order and length are preserved.
func Summarize(series []DailyTotal) []ChartPoint {
	points := make([]ChartPoint, len(series))
	for i, d := range series {
		points[i] = ChartPoint{
			Label:  padDay(string(d.Day)) + " " + d.Month,
			Amount: d.Price,
		}
	}
	return points
}

// MaxAmount is the largest point amount, or zero for an empty series.
func MaxAmount(points []ChartPoint) Amount {
	if len(points) == 0 {
		return Zero
	}
	max := points[0].Amount
	for _, p := range points[1:] {
		if p.Amount.GreaterThan(max.Decimal) {
			max = p.Amount
		}
	}
	return max
}

// AxisCeiling pads the maximum by ten percent and rounds up so the tallest
// bar never touches the top of the chart.
func AxisCeiling(max Amount) Amount {
	return NewAmount(max.Decimal.Mul(axisHeadroom).Ceil())
}

// Stats are the headline figures across all vendors.
type Stats struct {
	TotalPaymentCount int64  `json:"totalPaymentCount"`
	TotalPayments     Amount `json:"totalPayments"`
	TotalBilled       Amount `json:"totalBilled"`
}

// TotalPayable is billed minus paid across the whole book.
func TotalPayable(s Stats) Amount {
	return s.TotalBilled.Sub(s.TotalPayments)
}

func padDay(day string) string {
	day = strings.TrimSpace(day)
	if len(day) < 2 {
		return strings.Repeat("0", 2-len(day)) + day
	}
	return day
}
