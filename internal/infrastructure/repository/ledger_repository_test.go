package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNow() time.Time {
	return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
}

func TestBillRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBillRepository(db)
	ctx := context.Background()

	vendor := seedVendor(t, db, "Acme Builders", "BBBPA2222B")
	a := seedProject(t, db, vendor.ID, "Tower A")
	b := seedProject(t, db, vendor.ID, "Tower B")
	first := seedBill(t, db, a.ID, 1000)
	seedBill(t, db, a.ID, 250)
	seedBill(t, db, b.ID, 75)

	t.Run("lists by project", func(t *testing.T) {
		bills, err := repo.ListByProject(ctx, a.ID)
		require.NoError(t, err)
		assert.Len(t, bills, 2)
	})

	t.Run("lists by several projects", func(t *testing.T) {
		bills, err := repo.ListByProjects(ctx, []uuid.UUID{a.ID, b.ID})
		require.NoError(t, err)
		assert.Len(t, bills, 3)
	})

	t.Run("empty project list matches nothing", func(t *testing.T) {
		bills, err := repo.ListByProjects(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, bills)
	})

	t.Run("deletes exactly one bill", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, first.ID))

		found, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Nil(t, found)

		bills, err := repo.ListByProject(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, bills, 1)
		assert.Equal(t, "250", bills[0].Amount.String())
	})
}

func TestPaymentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	vendor := seedVendor(t, db, "Acme Builders", "BBBPA2222B")
	project := seedProject(t, db, vendor.ID, "Tower A")
	payment := seedPayment(t, db, project.ID, 1200, testNow())

	t.Run("round trips snapshots and summary", func(t *testing.T) {
		found, err := repo.GetByID(ctx, payment.ID)
		require.NoError(t, err)
		require.NotNil(t, found)

		assert.Equal(t, payment.VoucherNo, found.VoucherNo)
		assert.Equal(t, "Acme", found.Vendor.Data().Name)
		assert.Equal(t, "Airde Real Estate", found.Company.Data().Name)
		require.Len(t, found.Items, 1)
		assert.Equal(t, "Advance", found.Items[0].Description)
		assert.Equal(t, "1200", found.Total.String())
		assert.Equal(t, enum.PaymentModeCash, found.PaymentSummary.Mode)
		assert.Nil(t, found.PaymentSummary.BankName)
		assert.Nil(t, found.PaymentSummary.ChequeNumber)
	})

	t.Run("lists totals for several projects", func(t *testing.T) {
		payments, err := repo.ListByProjects(ctx, []uuid.UUID{project.ID})
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, project.ID, payments[0].ProjectID)
		assert.Equal(t, "1200", payments[0].PaidAmount().String())
	})

	t.Run("deletes exactly one payment", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, payment.ID))
		payments, err := repo.ListByProject(ctx, project.ID)
		require.NoError(t, err)
		assert.Empty(t, payments)
	})
}

func TestAnalyticsRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	t.Run("empty book", func(t *testing.T) {
		stats, err := repo.GetStats(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.TotalPaymentCount)
		assert.True(t, stats.TotalPayments.IsZero())
		assert.True(t, stats.TotalBilled.IsZero())
	})

	vendor := seedVendor(t, db, "Acme Builders", "BBBPA2222B")
	project := seedProject(t, db, vendor.ID, "Tower A")
	seedBill(t, db, project.ID, 1000)
	seedBill(t, db, project.ID, 500)
	old := seedPayment(t, db, project.ID, 300, testNow().AddDate(0, 0, -40))
	seedPayment(t, db, project.ID, 200, testNow().AddDate(0, 0, -2))
	seedPayment(t, db, project.ID, 100, testNow().AddDate(0, 0, -1))

	t.Run("sums across the whole book", func(t *testing.T) {
		stats, err := repo.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalPaymentCount)
		assert.Equal(t, "600", stats.TotalPayments.String())
		assert.Equal(t, "1500", stats.TotalBilled.String())
	})

	t.Run("payments since oldest first", func(t *testing.T) {
		points, err := repo.GetPaymentsSince(ctx, testNow().AddDate(0, 0, -30))
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, "200", points[0].Total.String())
		assert.Equal(t, "100", points[1].Total.String())
	})

	t.Run("deleted payments drop out", func(t *testing.T) {
		require.NoError(t, NewPaymentRepository(db).Delete(ctx, old.ID))
		stats, err := repo.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.TotalPaymentCount)
		assert.Equal(t, "300", stats.TotalPayments.String())
	})
}
