package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/vendor-ledger-api/internal/application/service"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/dto/response"
)

// LedgerHandler handles bills, payments and the project ledger
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// CreateBill handles recording a bill against a project
// @Summary Create bill
// @Tags bills
// @Security BearerAuth
// @Param request body request.CreateBillRequest true "Bill"
// @Success 201 {object} response.APIResponse
// @Router /vendors/create/bill [post]
func (h *LedgerHandler) CreateBill(c *gin.Context) {
	var req request.CreateBillRequest
	if !bindJSON(c, &req) {
		return
	}

	bill, err := h.ledgerService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		ProjectID:   req.ProjectID,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", gin.H{"bill": bill})
}

// ListBills handles listing a project's bills
// @Router /vendors/bills/{projectId} [get]
func (h *LedgerHandler) ListBills(c *gin.Context) {
	projectID, ok := paramID(c, "projectId", "project")
	if !ok {
		return
	}

	bills, err := h.ledgerService.ListBills(c.Request.Context(), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bills retrieved successfully", gin.H{"bills": bills, "count": len(bills)})
}

// DeleteBill handles removing a single bill
// @Router /vendors/delete/bill/{id} [delete]
func (h *LedgerHandler) DeleteBill(c *gin.Context) {
	id, ok := paramID(c, "id", "bill")
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c, "Bill deleted successfully")
}

// CreatePayment handles recording a payment voucher
// @Summary Create payment
// @Description paymentSummary.mode is required. Cheque payments need paymentSummary.bankName and chequeNumber; other modes discard them.
// @Tags payments
// @Security BearerAuth
// @Param request body request.CreatePaymentRequest true "Payment voucher"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /vendors/create/payment [post]
func (h *LedgerHandler) CreatePayment(c *gin.Context) {
	var req request.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	draft := req.Draft()
	payment, err := h.ledgerService.CreatePayment(c.Request.Context(), &service.CreatePaymentInput{
		ProjectID:    req.ProjectID,
		Items:        draft.Items,
		GSTPercent:   draft.GSTPercent,
		Mode:         draft.Mode,
		BankName:     draft.BankName,
		ChequeNumber: draft.ChequeNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment created successfully", gin.H{"payment": payment})
}

// ListPayments handles listing a project's payments
// @Router /vendors/payments/{projectId} [get]
func (h *LedgerHandler) ListPayments(c *gin.Context) {
	projectID, ok := paramID(c, "projectId", "project")
	if !ok {
		return
	}

	payments, err := h.ledgerService.ListPayments(c.Request.Context(), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", gin.H{"payments": payments, "count": len(payments)})
}

// GetPayment handles fetching one payment for the voucher screen
// @Router /vendors/single/payment/{id} [get]
func (h *LedgerHandler) GetPayment(c *gin.Context) {
	id, ok := paramID(c, "id", "payment")
	if !ok {
		return
	}

	payment, err := h.ledgerService.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", gin.H{"payment": payment})
}

// DeletePayment handles removing a single payment
// @Router /vendors/delete/payment/{id} [delete]
func (h *LedgerHandler) DeletePayment(c *gin.Context) {
	id, ok := paramID(c, "id", "payment")
	if !ok {
		return
	}

	if err := h.ledgerService.DeletePayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c, "Payment deleted successfully")
}

// ProjectLedger handles fetching a project's bills, payments and totals
// @Router /vendors/ledger/{projectId} [get]
func (h *LedgerHandler) ProjectLedger(c *gin.Context) {
	projectID, ok := paramID(c, "projectId", "project")
	if !ok {
		return
	}

	view, err := h.ledgerService.GetProjectLedger(c.Request.Context(), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Project ledger retrieved successfully", view)
}
