package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/sangkips/vendor-ledger-api/internal/domain/repository"
	"github.com/sangkips/vendor-ledger-api/pkg/apperror"
	"github.com/sangkips/vendor-ledger-api/pkg/printer"
	"go.uber.org/zap"
)

// ErrPrintFailed is returned, wrapped, when the voucher was built but the
// printer could not take it.
var ErrPrintFailed = errors.New("failed to print voucher")

// PrinterService handles voucher formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	paymentRepo repository.PaymentRepository
	projectRepo repository.ProjectRepository
	printerType string
	width       int
	location    *time.Location
	logger      *zap.Logger
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	paymentRepo repository.PaymentRepository,
	projectRepo repository.ProjectRepository,
	printerType string,
	width int,
	loc *time.Location,
	logger *zap.Logger,
) *PrinterService {
	if loc == nil {
		loc = time.Local
	}
	return &PrinterService{
		printer:     p,
		paymentRepo: paymentRepo,
		projectRepo: projectRepo,
		printerType: printerType,
		width:       width,
		location:    loc,
		logger:      logger.Named("printer"),
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus(ctx context.Context) *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(ctx),
		Type:       s.printerType,
	}
}

// GetVoucher renders a stored payment as a printable voucher.
func (s *PrinterService) GetVoucher(ctx context.Context, paymentID uuid.UUID) (*entity.PrintableVoucher, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}

	project, err := s.projectRepo.GetByID(ctx, payment.ProjectID)
	if err != nil {
		s.logger.Error("voucher project lookup failed",
			zap.String("payment_id", payment.ID.String()),
			zap.String("project_id", payment.ProjectID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	projectName := ""
	if project != nil {
		projectName = project.ProjectName
	}
	return BuildVoucher(payment, projectName, s.location), nil
}

// PrintPaymentVoucher prints a payment's voucher. The voucher is returned
// even when printing fails so the caller can still show it.
func (s *PrinterService) PrintPaymentVoucher(ctx context.Context, paymentID uuid.UUID) (*entity.PrintableVoucher, error) {
	voucher, err := s.GetVoucher(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(ctx, FormatVoucher(voucher, s.width)); err != nil {
		s.logger.Error("voucher print failed",
			zap.String("payment_id", paymentID.String()),
			zap.String("voucher_no", voucher.VoucherNo),
			zap.Error(err),
		)
		return voucher, fmt.Errorf("%w: %v", ErrPrintFailed, err)
	}

	s.logger.Info("voucher printed", zap.String("voucher_no", voucher.VoucherNo))
	return voucher, nil
}

// TestPrint sends a sample voucher to the printer.
func (s *PrinterService) TestPrint(ctx context.Context) (*entity.PrintableVoucher, error) {
	prepared, err := ledger.PrepareVoucher(ledger.Draft{
		Items:      []ledger.Item{{Description: "Printer test", Amount: ledger.AmountFromInt(1)}},
		GSTPercent: ledger.Zero,
		Mode:       enum.DefaultPaymentMode,
	})
	if err != nil {
		return nil, err
	}
	payment := entity.NewPayment(uuid.Nil, "TEST-001", prepared,
		entity.VendorSnapshot{Name: "PRINTER TEST"},
		entity.CompanySnapshot{Name: "PRINTER TEST"},
	)
	payment.CreatedAt = time.Now()

	voucher := BuildVoucher(payment, "", s.location)
	if err := s.printer.Print(ctx, FormatVoucher(voucher, s.width)); err != nil {
		return voucher, fmt.Errorf("%w: %v", ErrPrintFailed, err)
	}
	return voucher, nil
}

// BuildVoucher formats a payment's snapshot for display. Amounts are
// rendered with ledger.FormatMoney; cheque fields only appear for cheques.
func BuildVoucher(p *entity.Payment, projectName string, loc *time.Location) *entity.PrintableVoucher {
	v := &entity.PrintableVoucher{
		VoucherNo:   p.VoucherNo,
		Date:        p.CreatedAt.In(loc).Format("02 Jan 2006"),
		ProjectName: projectName,
		Company:     p.Company.Data(),
		Vendor:      p.Vendor.Data(),
		Lines:       make([]entity.VoucherLine, len(p.Items)),
		ItemsTotal:  ledger.FormatMoney(p.ItemsTotal),
		GSTLabel:    "GST (" + p.GST.Percentage.String() + "%)",
		GSTAmount:   ledger.FormatMoney(p.GST.Amount),
		Total:       ledger.FormatMoney(p.Total),
		Mode:        p.PaymentSummary.Mode.String(),
	}
	for i, it := range p.Items {
		v.Lines[i] = entity.VoucherLine{Description: it.Description, Amount: ledger.FormatMoney(it.Amount)}
	}
	if p.PaymentSummary.Mode == enum.PaymentModeCheque {
		if p.PaymentSummary.BankName != nil {
			v.BankName = *p.PaymentSummary.BankName
		}
		if p.PaymentSummary.ChequeNumber != nil {
			v.ChequeNumber = *p.PaymentSummary.ChequeNumber
		}
	}
	return v
}

// FormatVoucher converts a voucher into ESC/POS bytes.
func FormatVoucher(v *entity.PrintableVoucher, width int) []byte {
	doc := printer.NewDocument(width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(v.Company.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false).
		Text(v.Company.Address).
		Text(v.Company.Phone).
		Text(v.Company.Email).
		FeedLines(1).
		SetBold(true).
		Text("PAYMENT VOUCHER").
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Voucher No", v.VoucherNo).
		KeyValue("Date", v.Date)
	if v.ProjectName != "" {
		doc.KeyValue("Project", v.ProjectName)
	}

	doc.Separator('-').
		SetBold(true).
		Text("Paid To").
		SetBold(false).
		Text(v.Vendor.Name).
		Text(v.Vendor.Address).
		Text("PAN: " + v.Vendor.PAN)
	if v.Vendor.GSTIN != nil && *v.Vendor.GSTIN != "" {
		doc.Text("GSTIN: " + *v.Vendor.GSTIN)
	}
	if v.Vendor.Phone != "" {
		doc.Text("Phone: " + v.Vendor.Phone)
	}

	doc.Separator('-')
	for _, line := range v.Lines {
		doc.ItemLine(line.Description, line.Amount)
	}

	doc.Separator('-').
		KeyValue("Items Total", v.ItemsTotal).
		KeyValue(v.GSTLabel, v.GSTAmount).
		SetBold(true).
		KeyValue("TOTAL", v.Total).
		SetBold(false).
		Separator('-').
		KeyValue("Mode", v.Mode)
	if v.BankName != "" {
		doc.KeyValue("Bank", v.BankName)
	}
	if v.ChequeNumber != "" {
		doc.KeyValue("Cheque No", v.ChequeNumber)
	}

	doc.FeedLines(3).
		KeyValue("Prepared by", "Receiver's Sign").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}
