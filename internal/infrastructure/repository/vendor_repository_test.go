package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockVendorRepository(t *testing.T) (*vendorRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return &vendorRepository{db: gormDB}, mock, mockDB
}

func TestVendorRepository_GetByID_Mock(t *testing.T) {
	t.Run("finds existing vendor", func(t *testing.T) {
		repo, mock, mockDB := newMockVendorRepository(t)
		defer mockDB.Close()

		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "name", "phone", "address", "pan", "gstin"}).
			AddRow(id.String(), "Acme Builders", "9800000000", "Pune", "ABCDE1234F", nil)

		mock.ExpectQuery(`SELECT \* FROM "vendors" WHERE id = \$1`).
			WithArgs(id, 1).
			WillReturnRows(rows)

		vendor, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, vendor)
		assert.Equal(t, "Acme Builders", vendor.Name)
		assert.Nil(t, vendor.GSTIN)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil when not found", func(t *testing.T) {
		repo, mock, mockDB := newMockVendorRepository(t)
		defer mockDB.Close()

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "vendors" WHERE id = \$1`).
			WithArgs(id, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		vendor, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, vendor)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVendorRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVendorRepository(db)
	ctx := context.Background()

	gstin := "27AAPFU0939F1ZV"
	seedVendor(t, db, "Zen Traders", "AAAPZ1111A")
	seedVendor(t, db, "Acme Builders", "BBBPA2222B")
	withGSTIN := &entity.Vendor{Name: "Metro Steel", Phone: "1", Address: "Mumbai", PAN: "CCCPM3333C", GSTIN: &gstin}
	require.NoError(t, repo.Create(ctx, withGSTIN))

	t.Run("lists every vendor ordered by name", func(t *testing.T) {
		vendors, total, err := repo.List(ctx, &pagination.PaginationParams{Page: 1, PerPage: 10}, "")
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, vendors, 3)
		assert.Equal(t, "Acme Builders", vendors[0].Name)
		assert.Equal(t, "Zen Traders", vendors[2].Name)
	})

	t.Run("searches name case-insensitively", func(t *testing.T) {
		vendors, total, err := repo.List(ctx, &pagination.PaginationParams{Page: 1, PerPage: 10}, "acme")
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, vendors, 1)
		assert.Equal(t, "Acme Builders", vendors[0].Name)
	})

	t.Run("searches pan and gstin", func(t *testing.T) {
		vendors, _, err := repo.List(ctx, &pagination.PaginationParams{Page: 1, PerPage: 10}, "aaapz")
		require.NoError(t, err)
		require.Len(t, vendors, 1)
		assert.Equal(t, "Zen Traders", vendors[0].Name)

		vendors, _, err = repo.List(ctx, &pagination.PaginationParams{Page: 1, PerPage: 10}, "0939f")
		require.NoError(t, err)
		require.Len(t, vendors, 1)
		assert.Equal(t, "Metro Steel", vendors[0].Name)
	})

	t.Run("pages results", func(t *testing.T) {
		vendors, total, err := repo.List(ctx, &pagination.PaginationParams{Page: 2, PerPage: 2}, "")
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, vendors, 1)
		assert.Equal(t, "Zen Traders", vendors[0].Name)
	})
}

func TestVendorRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVendorRepository(db)
	ctx := context.Background()

	vendor := seedVendor(t, db, "Acme Builders", "BBBPA2222B")
	other := seedVendor(t, db, "Zen Traders", "AAAPZ1111A")
	project := seedProject(t, db, vendor.ID, "Tower A")
	otherProject := seedProject(t, db, other.ID, "Villa")
	seedBill(t, db, project.ID, 1000)
	seedPayment(t, db, project.ID, 400, testNow())
	seedBill(t, db, otherProject.ID, 700)

	require.NoError(t, repo.Delete(ctx, vendor.ID))

	found, err := repo.GetByID(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	var count int64
	db.Model(&entity.Project{}).Where("vendor_id = ?", vendor.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&entity.Bill{}).Where("project_id = ?", project.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&entity.Payment{}).Where("project_id = ?", project.ID).Count(&count)
	assert.Zero(t, count)

	// other vendors are untouched
	db.Model(&entity.Bill{}).Where("project_id = ?", otherProject.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestVendorRepository_DeleteWithoutProjects(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVendorRepository(db)
	vendor := seedVendor(t, db, "Solo", "DDDPS4444D")

	require.NoError(t, repo.Delete(context.Background(), vendor.ID))

	found, err := repo.GetByID(context.Background(), vendor.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestVendorRepository_SearchWildcards(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVendorRepository(db)
	ctx := context.Background()
	page := &pagination.PaginationParams{Page: 1, PerPage: 10}

	seedVendor(t, db, "Shah_Sons", "AAAPS1111A")
	seedVendor(t, db, "ShahXSons", "BBBPS2222B")
	seedVendor(t, db, "100% Steel", "CCCPS3333C")

	tests := []struct {
		term string
		want []string
	}{
		{"_", []string{"Shah_Sons"}},
		{"h_s", []string{"Shah_Sons"}},
		{"%", []string{"100% Steel"}},
		{`\`, nil},
		{"shah", []string{"Shah_Sons", "ShahXSons"}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			vendors, total, err := repo.List(ctx, page, tt.term)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), total)
			names := make([]string, 0, len(vendors))
			for _, v := range vendors {
				names = append(names, v.Name)
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}
}
