package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/vendor-ledger-api/internal/application/service"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/vendor-ledger-api/pkg/pagination"
)

// VendorHandler handles vendor-related HTTP requests
type VendorHandler struct {
	vendorService *service.VendorService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService *service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// List handles listing vendors
// @Summary List vendors
// @Tags vendors
// @Security BearerAuth
// @Param search query string false "matches name, PAN or GSTIN"
// @Success 200 {object} response.APIResponse
// @Router /vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	var filter request.VendorFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.vendorService.ListVendors(c.Request.Context(), &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendors retrieved successfully", gin.H{
		"vendors":    result.Items,
		"pagination": result.Pagination,
	})
}

// Create handles vendor creation
// @Summary Create vendor
// @Tags vendors
// @Security BearerAuth
// @Param request body request.CreateVendorRequest true "Vendor"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /vendors/create [post]
func (h *VendorHandler) Create(c *gin.Context) {
	var req request.CreateVendorRequest
	if !bindJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), &service.CreateVendorInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		PAN:     req.PAN,
		GSTIN:   req.GSTIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vendor created successfully", gin.H{"vendor": vendor})
}

// Summary handles fetching a vendor with per-project and vendor totals
// @Summary Vendor summary
// @Tags vendors
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /vendors/{id}/summary [get]
func (h *VendorHandler) Summary(c *gin.Context) {
	id, ok := paramID(c, "id", "vendor")
	if !ok {
		return
	}

	summary, err := h.vendorService.GetVendorSummary(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Vendor summary retrieved successfully", summary)
}

// Delete handles removing a vendor with everything under it
// @Summary Delete vendor
// @Tags vendors
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /vendors/delete/vendor/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id", "vendor")
	if !ok {
		return
	}

	if err := h.vendorService.DeleteVendor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c, "Vendor deleted successfully")
}
