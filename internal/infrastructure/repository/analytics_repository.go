package repository

import (
	"context"
	"time"

	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	domainRepo "github.com/sangkips/vendor-ledger-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetStats(ctx context.Context) (*ledger.Stats, error) {
	var row struct {
		PaymentCount  int64
		TotalPayments ledger.Amount
		TotalBilled   ledger.Amount
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM payments WHERE deleted_at IS NULL) AS payment_count,
			(SELECT COALESCE(SUM(total), 0) FROM payments WHERE deleted_at IS NULL) AS total_payments,
			(SELECT COALESCE(SUM(amount), 0) FROM bills WHERE deleted_at IS NULL) AS total_billed
	`).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &ledger.Stats{
		TotalPaymentCount: row.PaymentCount,
		TotalPayments:     row.TotalPayments,
		TotalBilled:       row.TotalBilled,
	}, nil
}

func (r *analyticsRepository) GetPaymentsSince(ctx context.Context, since time.Time) ([]domainRepo.PaymentPoint, error) {
	var points []domainRepo.PaymentPoint
	err := r.db.WithContext(ctx).
		Model(&entity.Payment{}).
		Select("created_at", "total").
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Scan(&points).Error
	return points, err
}
