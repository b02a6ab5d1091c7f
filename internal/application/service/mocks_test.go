package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/sangkips/vendor-ledger-api/internal/domain/repository"
	"github.com/sangkips/vendor-ledger-api/pkg/pagination"
	"github.com/stretchr/testify/mock"
)

type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	args := m.Called(ctx, vendor)
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockVendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vendor), args.Error(1)
}

func (m *MockVendorRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Vendor, int64, error) {
	args := m.Called(ctx, params, search)
	return args.Get(0).([]entity.Vendor), args.Get(1).(int64), args.Error(2)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	args := m.Called(ctx, project)
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Project), args.Error(1)
}

func (m *MockProjectRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]entity.Project, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).([]entity.Project), args.Error(1)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) Create(ctx context.Context, bill *entity.Bill) error {
	args := m.Called(ctx, bill)
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockBillRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bill), args.Error(1)
}

func (m *MockBillRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]entity.Bill, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]entity.Bill), args.Error(1)
}

func (m *MockBillRepository) ListByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]entity.Bill, error) {
	args := m.Called(ctx, projectIDs)
	return args.Get(0).([]entity.Bill), args.Error(1)
}

func (m *MockBillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]entity.Payment, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]entity.Payment, error) {
	args := m.Called(ctx, projectIDs)
	return args.Get(0).([]entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) GetStats(ctx context.Context) (*ledger.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Stats), args.Error(1)
}

func (m *MockAnalyticsRepository) GetPaymentsSince(ctx context.Context, since time.Time) ([]repository.PaymentPoint, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]repository.PaymentPoint), args.Error(1)
}

type MockOperatorRepository struct {
	mock.Mock
}

func (m *MockOperatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	return m.Called(ctx, operator).Error(0)
}

func (m *MockOperatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Operator), args.Error(1)
}

func (m *MockOperatorRepository) GetByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Operator), args.Error(1)
}

func (m *MockOperatorRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type MockPrinter struct {
	mock.Mock
	printed [][]byte
}

func (m *MockPrinter) Print(ctx context.Context, data []byte) error {
	m.printed = append(m.printed, data)
	return m.Called(ctx, data).Error(0)
}

func (m *MockPrinter) IsConnected(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}
