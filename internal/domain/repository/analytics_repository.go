package repository

import (
	"context"
	"time"

	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
)

// PaymentPoint is a payment reduced to what the trend chart needs.
type PaymentPoint struct {
	CreatedAt time.Time
	Total     ledger.Amount
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetStats returns the payment count, total paid and total billed across all vendors
	GetStats(ctx context.Context) (*ledger.Stats, error)

	// GetPaymentsSince returns every payment made at or after since, oldest first
	GetPaymentsSince(ctx context.Context, since time.Time) ([]PaymentPoint, error)
}
