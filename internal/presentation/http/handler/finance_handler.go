package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lahiruj/autolanka-erp/internal/application/service"
	"github.com/lahiruj/autolanka-erp/internal/presentation/http/dto/response"
)

// FinanceHandler handles finance-transaction HTTP requests
type FinanceHandler struct {
	financeService *service.FinanceService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeService *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// List handles listing transactions
func (h *FinanceHandler) List(c *gin.Context) {
	result, err := h.financeService.List(c.Request.Context(), paginationParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Get handles getting a single transaction
func (h *FinanceHandler) Get(c *gin.Context) {
	finance, err := h.financeService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", finance)
}

// Create handles recording a transaction
func (h *FinanceHandler) Create(c *gin.Context) {
	var req service.FinanceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	finance, err := h.financeService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction recorded successfully", finance)
}

// Delete handles deleting a transaction
func (h *FinanceHandler) Delete(c *gin.Context) {
	if err := h.financeService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
