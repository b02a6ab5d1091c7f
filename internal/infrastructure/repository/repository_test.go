package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// every pooled connection would otherwise get its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.Vendor{},
		&entity.Project{},
		&entity.Bill{},
		&entity.Payment{},
		&entity.Operator{},
		&entity.IdempotencyKey{},
	)
	require.NoError(t, err)

	return db
}

func seedVendor(t *testing.T, db *gorm.DB, name, pan string) *entity.Vendor {
	v := &entity.Vendor{Name: name, Phone: "9800000000", Address: "Pune", PAN: pan}
	require.NoError(t, NewVendorRepository(db).Create(context.Background(), v))
	return v
}

func seedProject(t *testing.T, db *gorm.DB, vendorID uuid.UUID, name string) *entity.Project {
	p := &entity.Project{
		VendorID:    vendorID,
		ProjectName: name,
		CompanyName: enum.CompanyAirdeRealEstate,
		Estimated:   ledger.AmountFromInt(50000),
	}
	require.NoError(t, NewProjectRepository(db).Create(context.Background(), p))
	return p
}

func seedBill(t *testing.T, db *gorm.DB, projectID uuid.UUID, amount int64) *entity.Bill {
	b := &entity.Bill{ProjectID: projectID, Description: "Cement", Amount: ledger.AmountFromInt(amount)}
	require.NoError(t, NewBillRepository(db).Create(context.Background(), b))
	return b
}

func seedPayment(t *testing.T, db *gorm.DB, projectID uuid.UUID, amount int64, at time.Time) *entity.Payment {
	v, err := ledger.PrepareVoucher(ledger.Draft{
		Items: []ledger.Item{{Description: "Advance", Amount: ledger.AmountFromInt(amount)}},
		Mode:  enum.PaymentModeCash,
	})
	require.NoError(t, err)

	p := entity.NewPayment(projectID, "PV-"+uuid.NewString()[:8], v,
		entity.VendorSnapshot{Name: "Acme"}, entity.CompanySnapshot{Name: "Airde Real Estate"})
	p.CreatedAt = at
	require.NoError(t, NewPaymentRepository(db).Create(context.Background(), p))
	return p
}
