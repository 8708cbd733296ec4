package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lahiruj/autolanka-erp/internal/application/service"
	"github.com/lahiruj/autolanka-erp/internal/presentation/http/dto/response"
)

// QuotationHandler handles quotation-related HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// List handles listing quotations
func (h *QuotationHandler) List(c *gin.Context) {
	result, err := h.quotationService.List(c.Request.Context(), paginationParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotations retrieved successfully", result)
}

// Get handles getting a single quotation
func (h *QuotationHandler) Get(c *gin.Context) {
	quotation, err := h.quotationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation retrieved successfully", quotation)
}

// Create handles submitting a quotation. The derived sale rides along in the
// pipeline; the response body carries the quotation itself.
func (h *QuotationHandler) Create(c *gin.Context) {
	var req service.QuotationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quotation, err := h.quotationService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation created successfully", quotation)
}

// Update handles editing a quotation in place
func (h *QuotationHandler) Update(c *gin.Context) {
	var req service.QuotationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quotation, err := h.quotationService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation updated successfully", quotation)
}

// NextNumber handles suggesting a quotation number for a new form
func (h *QuotationHandler) NextNumber(c *gin.Context) {
	response.OK(c, "Quotation number generated", gin.H{"quoteNumber": h.quotationService.SuggestNumber()})
}

// Delete handles deleting a quotation
func (h *QuotationHandler) Delete(c *gin.Context) {
	if err := h.quotationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
