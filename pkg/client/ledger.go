package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/application/service"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/ledger"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/vendor-ledger-api/pkg/apperror"
	"github.com/sangkips/vendor-ledger-api/pkg/pagination"
)

// Tokens is a successful sign-in.
type Tokens struct {
	Operator     entity.Operator `json:"operator"`
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	TokenType    string          `json:"tokenType"`
	ExpiresIn    int64           `json:"expiresIn"`
}

// Login signs an operator in. The returned tokens are not stored; build a
// new client with WithToken to use them.
func (c *Client) Login(ctx context.Context, email, password string) (*Tokens, error) {
	var out Tokens
	_, err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   request.LoginRequest{Email: email, Password: password},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh exchanges a refresh token for a new pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	var out Tokens
	_, err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/refresh",
		body:   request.RefreshTokenRequest{RefreshToken: refreshToken},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile returns the signed-in operator.
func (c *Client) Profile(ctx context.Context) (*entity.Operator, error) {
	var out struct {
		Operator entity.Operator `json:"operator"`
	}
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/profile"}, &out); err != nil {
		return nil, err
	}
	return &out.Operator, nil
}

// VendorPage is one page of the vendor list.
type VendorPage struct {
	Vendors    []entity.Vendor       `json:"vendors"`
	Pagination pagination.Pagination `json:"pagination"`
}

// ListVendors searches vendors by name, PAN or GSTIN.
func (c *Client) ListVendors(ctx context.Context, search string, page, perPage int) (*VendorPage, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}

	var out VendorPage
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/vendors", query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateVendor(ctx context.Context, req request.CreateVendorRequest) (*entity.Vendor, error) {
	var out struct {
		Vendor entity.Vendor `json:"vendor"`
	}
	if _, err := c.do(ctx, call{method: http.MethodPost, path: "/vendors/create", body: req, idempotency: true}, &out); err != nil {
		return nil, err
	}
	return &out.Vendor, nil
}

func (c *Client) VendorSummary(ctx context.Context, vendorID uuid.UUID) (*service.VendorSummary, error) {
	var out service.VendorSummary
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/vendors/" + vendorID.String() + "/summary"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProject(ctx context.Context, req request.CreateProjectRequest) (*entity.Project, error) {
	var out struct {
		Project entity.Project `json:"project"`
	}
	if _, err := c.do(ctx, call{method: http.MethodPost, path: "/vendors/create/project", body: req, idempotency: true}, &out); err != nil {
		return nil, err
	}
	return &out.Project, nil
}

// VendorProjects lists a vendor's projects with their billed, paid and
// balance figures.
func (c *Client) VendorProjects(ctx context.Context, vendorID uuid.UUID) (*service.VendorProjects, error) {
	var out service.VendorProjects
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/vendors/projects/" + vendorID.String()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBill(ctx context.Context, req request.CreateBillRequest) (*entity.Bill, error) {
	var out struct {
		Bill entity.Bill `json:"bill"`
	}
	if _, err := c.do(ctx, call{method: http.MethodPost, path: "/vendors/create/bill", body: req, idempotency: true}, &out); err != nil {
		return nil, err
	}
	return &out.Bill, nil
}

func (c *Client) Bills(ctx context.Context, projectID uuid.UUID) ([]entity.Bill, error) {
	var out struct {
		Bills []entity.Bill `json:"bills"`
	}
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/vendors/bills/" + projectID.String()}, &out); err != nil {
		return nil, err
	}
	return out.Bills, nil
}

// CreatePayment checks the voucher locally and only then sends it, so a
// draft the server would reject never leaves the client.
func (c *Client) CreatePayment(ctx context.Context, req request.CreatePaymentRequest) (*entity.Payment, error) {
	if _, err := ledger.PrepareVoucher(req.Draft()); err != nil {
		return nil, &Error{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    err.Error(),
			Fields:     paymentFields(err),
		}
	}

	var out struct {
		Payment entity.Payment `json:"payment"`
	}
	if _, err := c.do(ctx, call{method: http.MethodPost, path: "/vendors/create/payment", body: req, idempotency: true}, &out); err != nil {
		return nil, err
	}
	return &out.Payment, nil
}

func paymentFields(err error) []apperror.FieldError {
	var fields []apperror.FieldError
	for _, f := range ledger.VoucherFields(err) {
		fields = append(fields, apperror.FieldError{Field: f, Message: err.Error()})
	}
	return fields
}

func (c *Client) Payments(ctx context.Context, projectID uuid.UUID) ([]entity.Payment, error) {
	var out struct {
		Payments []entity.Payment `json:"payments"`
	}
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/vendors/payments/" + projectID.String()}, &out); err != nil {
		return nil, err
	}
	return out.Payments, nil
}

func (c *Client) Payment(ctx context.Context, paymentID uuid.UUID) (*entity.Payment, error) {
	var out struct {
		Payment entity.Payment `json:"payment"`
	}
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/vendors/single/payment/" + paymentID.String()}, &out); err != nil {
		return nil, err
	}
	return &out.Payment, nil
}

// ProjectLedger returns a project's bills, payments and totals.
func (c *Client) ProjectLedger(ctx context.Context, projectID uuid.UUID) (*service.ProjectLedgerView, error) {
	var out service.ProjectLedgerView
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/vendors/ledger/" + projectID.String()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Resource names accepted by Delete.
const (
	ResourceVendor  = "vendor"
	ResourceProject = "project"
	ResourceBill    = "bill"
	ResourcePayment = "payment"
)

// Delete removes one vendor, project, bill or payment. Vendors and projects
// take everything under them.
func (c *Client) Delete(ctx context.Context, resource string, id uuid.UUID) (string, error) {
	return c.do(ctx, call{method: http.MethodDelete, path: "/vendors/delete/" + resource + "/" + id.String()}, nil)
}

func (c *Client) Stats(ctx context.Context) (*service.StatsView, error) {
	var out service.StatsView
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/analytics"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary returns the 30-day payment trend.
func (c *Client) Summary(ctx context.Context) (*service.Summary, error) {
	var out service.Summary
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/analytics/summary"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Voucher(ctx context.Context, paymentID uuid.UUID) (*entity.PrintableVoucher, error) {
	var out struct {
		Voucher entity.PrintableVoucher `json:"voucher"`
	}
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/vendors/single/payment/" + paymentID.String() + "/voucher"}, &out); err != nil {
		return nil, err
	}
	return &out.Voucher, nil
}

// PrintResult is the voucher sent to the printer. Warning is set when the
// voucher was built but the printer rejected it.
type PrintResult struct {
	Voucher entity.PrintableVoucher `json:"voucher"`
	Warning string                  `json:"warning,omitempty"`
}

func (c *Client) PrintVoucher(ctx context.Context, paymentID uuid.UUID) (*PrintResult, error) {
	var out PrintResult
	if _, err := c.do(ctx, call{method: http.MethodPost, path: "/vendors/print/payment/" + paymentID.String()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PrinterStatus(ctx context.Context) (*service.PrinterStatus, error) {
	var out service.PrinterStatus
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/printer/status"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
