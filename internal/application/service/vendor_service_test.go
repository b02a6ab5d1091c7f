package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/sangkips/vendor-ledger-api/pkg/apperror"
	"github.com/sangkips/vendor-ledger-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type vendorFixture struct {
	vendors  *MockVendorRepository
	projects *MockProjectRepository
	bills    *MockBillRepository
	payments *MockPaymentRepository
	svc      *VendorService
}

func newVendorFixture() *vendorFixture {
	f := &vendorFixture{
		vendors:  new(MockVendorRepository),
		projects: new(MockProjectRepository),
		bills:    new(MockBillRepository),
		payments: new(MockPaymentRepository),
	}
	f.svc = NewVendorService(f.vendors, f.projects, f.bills, f.payments, zap.NewNop())
	return f
}

func amt(v int64) ledger.Amount { return ledger.AmountFromInt(v) }

func assertStatus(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, code, appErr.Code, appErr.Message)
	return appErr
}

func TestVendorService_CreateVendor(t *testing.T) {
	t.Run("normalises and stores", func(t *testing.T) {
		f := newVendorFixture()
		f.vendors.On("Create", mock.Anything, mock.AnythingOfType("*entity.Vendor")).Return(nil)

		blank := "   "
		vendor, err := f.svc.CreateVendor(context.Background(), &CreateVendorInput{
			Name:    "  Acme Builders ",
			Phone:   "9800000000",
			Address: "Pune",
			PAN:     "abcde1234f",
			GSTIN:   &blank,
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme Builders", vendor.Name)
		assert.Equal(t, "ABCDE1234F", vendor.PAN)
		assert.Nil(t, vendor.GSTIN)
		f.vendors.AssertExpectations(t)
	})

	t.Run("rejects missing fields before writing", func(t *testing.T) {
		f := newVendorFixture()

		_, err := f.svc.CreateVendor(context.Background(), &CreateVendorInput{Name: "Acme"})
		appErr := assertStatus(t, err, http.StatusUnprocessableEntity)
		assert.Len(t, appErr.Errors, 3)
		f.vendors.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestVendorService_ListVendors(t *testing.T) {
	f := newVendorFixture()
	vendors := []entity.Vendor{{Name: "Acme"}, {Name: "Zen"}}
	f.vendors.On("List", mock.Anything, mock.Anything, "ac").Return(vendors, int64(17), nil)

	result, err := f.svc.ListVendors(context.Background(), &pagination.PaginationParams{Page: 2, PerPage: 0}, "ac")
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, pagination.DefaultPerPage, result.Pagination.PerPage)
	assert.Equal(t, 2, result.Pagination.CurrentPage)
	assert.Equal(t, int64(17), result.Pagination.Total)
	assert.True(t, result.Pagination.HasPrev)
}

func TestVendorService_GetVendorSummary(t *testing.T) {
	f := newVendorFixture()
	vendor := &entity.Vendor{ID: uuid.New(), Name: "Acme"}
	p1 := entity.Project{ID: uuid.New(), VendorID: vendor.ID, ProjectName: "Tower A", CompanyName: enum.CompanyAirdeDeveloper}
	p2 := entity.Project{ID: uuid.New(), VendorID: vendor.ID, ProjectName: "Tower B", CompanyName: enum.CompanyUniqueRealcon}
	ids := []uuid.UUID{p1.ID, p2.ID}

	f.vendors.On("GetByID", mock.Anything, vendor.ID).Return(vendor, nil)
	f.projects.On("ListByVendor", mock.Anything, vendor.ID).Return([]entity.Project{p1, p2}, nil)
	f.bills.On("ListByProjects", mock.Anything, ids).Return([]entity.Bill{
		{ProjectID: p1.ID, Amount: amt(1000)},
		{ProjectID: p2.ID, Amount: amt(300)},
		{ProjectID: p1.ID, Amount: amt(500)},
	}, nil)
	f.payments.On("ListByProjects", mock.Anything, ids).Return([]entity.Payment{
		{ProjectID: p1.ID, Total: amt(400)},
		{ProjectID: p2.ID, Total: amt(500)},
	}, nil)

	summary, err := f.svc.GetVendorSummary(context.Background(), vendor.ID)
	require.NoError(t, err)
	require.Len(t, summary.Projects, 2)

	assert.Equal(t, "Tower A", summary.Projects[0].ProjectName)
	assert.True(t, summary.Projects[0].Billed.Eq(amt(1500)))
	assert.True(t, summary.Projects[0].Balance.Eq(amt(1100)))
	assert.True(t, summary.Projects[1].Balance.Eq(amt(-200)), "overpayment stays negative")

	assert.True(t, summary.Totals.Billed.Eq(amt(1800)))
	assert.True(t, summary.Totals.Paid.Eq(amt(900)))
	assert.True(t, summary.Totals.Balance.Eq(amt(900)))
	assert.Equal(t, "₹ 900.00", summary.Formatted.Balance)
}

func TestVendorService_DeleteVendor(t *testing.T) {
	t.Run("missing vendor is 404", func(t *testing.T) {
		f := newVendorFixture()
		id := uuid.New()
		f.vendors.On("GetByID", mock.Anything, id).Return(nil, nil)

		assertStatus(t, f.svc.DeleteVendor(context.Background(), id), http.StatusNotFound)
		f.vendors.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes existing vendor", func(t *testing.T) {
		f := newVendorFixture()
		id := uuid.New()
		f.vendors.On("GetByID", mock.Anything, id).Return(&entity.Vendor{ID: id}, nil)
		f.vendors.On("Delete", mock.Anything, id).Return(nil)

		require.NoError(t, f.svc.DeleteVendor(context.Background(), id))
		f.vendors.AssertExpectations(t)
	})
}
