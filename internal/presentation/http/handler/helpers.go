package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lahiruj/autolanka-erp/pkg/pagination"
)

// paginationParams reads page-based pagination from the query string.
func paginationParams(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	return &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
}
