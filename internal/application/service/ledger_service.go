package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/sangkips/vendor-ledger-api/internal/domain/repository"
	"github.com/sangkips/vendor-ledger-api/pkg/apperror"
	"github.com/sangkips/vendor-ledger-api/pkg/utils"
	"go.uber.org/zap"
)

// CompanyDirectory holds the letterhead of every contracting company.
type CompanyDirectory map[enum.CompanyName]entity.CompanySnapshot

// Lookup returns the profile for name, or one carrying only the name.
func (d CompanyDirectory) Lookup(name enum.CompanyName) entity.CompanySnapshot {
	if c, ok := d[name]; ok {
		return c
	}
	return entity.CompanySnapshot{Name: string(name)}
}

// LedgerService records bills and payment vouchers against projects and
// derives project ledgers from them.
type LedgerService struct {
	vendorRepo  repository.VendorRepository
	projectRepo repository.ProjectRepository
	billRepo    repository.BillRepository
	paymentRepo repository.PaymentRepository
	companies   CompanyDirectory
	voucherNo   func() string
	logger      *zap.Logger
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	vendorRepo repository.VendorRepository,
	projectRepo repository.ProjectRepository,
	billRepo repository.BillRepository,
	paymentRepo repository.PaymentRepository,
	companies CompanyDirectory,
	logger *zap.Logger,
) *LedgerService {
	return &LedgerService{
		vendorRepo:  vendorRepo,
		projectRepo: projectRepo,
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
		companies:   companies,
		voucherNo:   utils.GenerateVoucherNo,
		logger:      logger.Named("ledger"),
	}
}

func (s *LedgerService) project(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NewNotFoundError("Project")
	}
	return project, nil
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	ProjectID   uuid.UUID
	Description string
	Amount      ledger.Amount
}

// CreateBill records a charge against a project.
func (s *LedgerService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	bill := &entity.Bill{
		ProjectID:   input.ProjectID,
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
	}

	var v validation
	v.check(bill.Description != "", "description", "description is required")
	v.check(bill.Amount.Positive(), "amount", "amount must be greater than zero")
	if err := v.err(); err != nil {
		return nil, err
	}

	if _, err := s.project(ctx, input.ProjectID); err != nil {
		return nil, err
	}
	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	s.logger.Info("bill created",
		zap.String("bill_id", bill.ID.String()),
		zap.String("project_id", bill.ProjectID.String()),
		zap.String("amount", bill.Amount.String()),
	)
	return bill, nil
}

// ListBills lists a project's bills, newest first.
func (s *LedgerService) ListBills(ctx context.Context, projectID uuid.UUID) ([]entity.Bill, error) {
	if _, err := s.project(ctx, projectID); err != nil {
		return nil, err
	}
	bills, err := s.billRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if bills == nil {
		bills = []entity.Bill{}
	}
	return bills, nil
}

// DeleteBill removes exactly one bill.
func (s *LedgerService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bill == nil {
		return apperror.NewNotFoundError("Bill")
	}
	if err := s.billRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("bill deleted", zap.String("bill_id", id.String()))
	return nil
}

// CreatePaymentInput is a voucher as entered.
type CreatePaymentInput struct {
	ProjectID    uuid.UUID
	Items        []ledger.Item
	GSTPercent   ledger.Amount
	Mode         enum.PaymentMode
	BankName     string
	ChequeNumber string
}

// CreatePayment checks the voucher, snapshots the vendor and company and
// stores the payment. Nothing is written when a check fails.
func (s *LedgerService) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error) {
	prepared, err := ledger.PrepareVoucher(ledger.Draft{
		Items:        input.Items,
		GSTPercent:   input.GSTPercent,
		Mode:         input.Mode,
		BankName:     input.BankName,
		ChequeNumber: input.ChequeNumber,
	})
	if err != nil {
		return nil, voucherError(err)
	}

	project, err := s.project(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	vendor, err := s.vendorRepo.GetByID(ctx, project.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	payment := entity.NewPayment(project.ID, s.voucherNo(), prepared, vendor.Snapshot(), s.companies.Lookup(project.CompanyName))
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("payment created",
		zap.String("payment_id", payment.ID.String()),
		zap.String("voucher_no", payment.VoucherNo),
		zap.String("project_id", project.ID.String()),
		zap.String("mode", payment.PaymentSummary.Mode.String()),
		zap.String("total", payment.Total.String()),
	)
	return payment, nil
}

// ListPayments lists a project's payments, newest first.
func (s *LedgerService) ListPayments(ctx context.Context, projectID uuid.UUID) ([]entity.Payment, error) {
	if _, err := s.project(ctx, projectID); err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []entity.Payment{}
	}
	return payments, nil
}

// GetPayment retrieves a payment by ID
func (s *LedgerService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// DeletePayment removes exactly one payment.
func (s *LedgerService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPayment(ctx, id); err != nil {
		return err
	}
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("payment deleted", zap.String("payment_id", id.String()))
	return nil
}

// ProjectLedgerView is everything the ledger screen of one project shows.
type ProjectLedgerView struct {
	Project   *entity.Project        `json:"project"`
	Vendor    *entity.Vendor         `json:"vendor,omitempty"`
	Bills     []entity.Bill          `json:"bills"`
	Payments  []entity.Payment       `json:"payments"`
	Totals    ledger.Totals          `json:"totals"`
	Formatted ledger.FormattedTotals `json:"formatted"`
}

// GetProjectLedger aggregates exactly the bills and payments it returns.
func (s *LedgerService) GetProjectLedger(ctx context.Context, projectID uuid.UUID) (*ProjectLedgerView, error) {
	project, err := s.project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	vendor, err := s.vendorRepo.GetByID(ctx, project.VendorID)
	if err != nil {
		return nil, err
	}
	bills, err := s.ListBills(ctx, projectID)
	if err != nil {
		return nil, err
	}
	payments, err := s.ListPayments(ctx, projectID)
	if err != nil {
		return nil, err
	}

	totals := ledger.Aggregate(bills, payments)
	return &ProjectLedgerView{
		Project:   project,
		Vendor:    vendor,
		Bills:     bills,
		Payments:  payments,
		Totals:    totals,
		Formatted: totals.Formatted(),
	}, nil
}
