package service

import (
	"context"
	"time"

	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/sangkips/vendor-ledger-api/internal/domain/repository"
	"go.uber.org/zap"
)

// TrendWindow is how far back the payment trend reaches.
const TrendWindow = 30 * 24 * time.Hour

// AnalyticsService computes the dashboard figures.
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	location      *time.Location
	now           func() time.Time
	logger        *zap.Logger
}

// NewAnalyticsService creates a new analytics service. Payment days are
// bucketed in loc.
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, loc *time.Location, logger *zap.Logger) *AnalyticsService {
	if loc == nil {
		loc = time.Local
	}
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		location:      loc,
		now:           time.Now,
		logger:        logger.Named("analytics"),
	}
}

// StatsView is the headline stats with the payable figure and display strings.
type StatsView struct {
	ledger.Stats
	TotalPayable ledger.Amount  `json:"totalPayable"`
	Formatted    FormattedStats `json:"formatted"`
}

// FormattedStats holds the stats as shown on the dashboard cards.
type FormattedStats struct {
	TotalPaymentCount string `json:"totalPaymentCount"`
	TotalPayments     string `json:"totalPayments"`
	TotalBilled       string `json:"totalBilled"`
	TotalPayable      string `json:"totalPayable"`
}

// GetStats returns counts and sums across every vendor.
func (s *AnalyticsService) GetStats(ctx context.Context) (*StatsView, error) {
	stats, err := s.analyticsRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	payable := ledger.TotalPayable(*stats)
	return &StatsView{
		Stats:        *stats,
		TotalPayable: payable,
		Formatted: FormattedStats{
			TotalPaymentCount: ledger.FormatCount(stats.TotalPaymentCount),
			TotalPayments:     ledger.FormatMoney(stats.TotalPayments),
			TotalBilled:       ledger.FormatMoney(stats.TotalBilled),
			TotalPayable:      ledger.FormatMoney(payable),
		},
	}, nil
}

// Summary is the 30-day payment trend, as stored rows and as chart input.
type Summary struct {
	Last30DaysPayments []ledger.DailyTotal `json:"last30DaysPayments"`
	Points             []ledger.ChartPoint `json:"points"`
	MaxAmount          ledger.Amount       `json:"maxAmount"`
	AxisMax            ledger.Amount       `json:"axisMax"`
	AxisMaxLabel       string              `json:"axisMaxLabel"`
}

// GetSummary totals payments per calendar day over the trend window. Only
// days with at least one payment appear, oldest first.
func (s *AnalyticsService) GetSummary(ctx context.Context) (*Summary, error) {
	payments, err := s.analyticsRepo.GetPaymentsSince(ctx, s.now().Add(-TrendWindow))
	if err != nil {
		return nil, err
	}

	series := DailyTotals(payments, s.location)
	points := ledger.Summarize(series)
	peak := ledger.MaxAmount(points)
	axis := ledger.AxisCeiling(peak)

	return &Summary{
		Last30DaysPayments: series,
		Points:             points,
		MaxAmount:          peak,
		AxisMax:            axis,
		AxisMaxLabel:       ledger.CompactAmount(axis),
	}, nil
}

// DailyTotals groups payments by their calendar day in loc, summing totals.
// Input must be oldest first; output keeps that order.
func DailyTotals(payments []repository.PaymentPoint, loc *time.Location) []ledger.DailyTotal {
	series := make([]ledger.DailyTotal, 0)
	var last string
	for _, p := range payments {
		t := p.CreatedAt.In(loc)
		day := t.Format("2006-01-02")
		if day == last {
			i := len(series) - 1
			series[i].Price = series[i].Price.Add(p.Total)
			continue
		}
		series = append(series, ledger.NewDailyTotal(t, p.Total))
		last = day
	}
	return series
}
