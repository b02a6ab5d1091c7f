package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/vendor-ledger-api/internal/application/service"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus(c.Request.Context()))
}

// TestPrint sends a sample voucher to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	voucher, err := h.printerService.TestPrint(c.Request.Context())
	if err != nil {
		// Return the voucher anyway (useful when printer type is "none")
		response.OK(c, "Test print completed (printer may be disabled)", gin.H{
			"voucher": voucher,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Test page sent to printer", gin.H{"voucher": voucher})
}

// GetVoucher returns a payment's formatted voucher without printing it.
func (h *PrinterHandler) GetVoucher(c *gin.Context) {
	id, ok := paramID(c, "id", "payment")
	if !ok {
		return
	}

	voucher, err := h.printerService.GetVoucher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Voucher retrieved successfully", gin.H{"voucher": voucher})
}

// PrintPayment prints a payment's voucher.
func (h *PrinterHandler) PrintPayment(c *gin.Context) {
	id, ok := paramID(c, "id", "payment")
	if !ok {
		return
	}

	voucher, err := h.printerService.PrintPaymentVoucher(c.Request.Context(), id)
	if err != nil {
		// If the voucher was built but printing failed, return it with a warning
		if voucher != nil && errors.Is(err, service.ErrPrintFailed) {
			response.OK(c, "Voucher generated but printing failed", gin.H{
				"voucher": voucher,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Voucher printed successfully", gin.H{"voucher": voucher})
}
