package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lahiruj/autolanka-erp/internal/config"
	"github.com/lahiruj/autolanka-erp/internal/presentation/http/handler"
	"github.com/lahiruj/autolanka-erp/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Quotation     *handler.QuotationHandler
	Sale          *handler.SaleHandler
	Invoice       *handler.InvoiceHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	Customer      *handler.CustomerHandler
	Supplier      *handler.SupplierHandler
	Product       *handler.ProductHandler
	Finance       *handler.FinanceHandler
	Dashboard     *handler.DashboardHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		// Dashboard
		v1.GET("/dashboard", h.Dashboard.GetStats)

		registerQuotationRoutes(v1, h)
		registerSaleRoutes(v1, h)
		registerInvoiceRoutes(v1, h)
		registerPurchaseOrderRoutes(v1, h)
		registerCustomerRoutes(v1, h)
		registerSupplierRoutes(v1, h)
		registerProductRoutes(v1, h)
		registerFinanceRoutes(v1, h)
	}

	return router
}

func registerQuotationRoutes(v1 *gin.RouterGroup, h *Handlers) {
	quotations := v1.Group("/quotations")
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/next-number", h.Quotation.NextNumber)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.DELETE("/:id", h.Quotation.Delete)
	}
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers) {
	// Sales have no POST; submission of a quotation derives them.
	sales := v1.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.GET("/:id", h.Sale.Get)
		sales.PATCH("/:id", h.Sale.Update)
		sales.DELETE("/:id", h.Sale.Delete)
	}
}

func registerInvoiceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	invoices := v1.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/next-number", h.Invoice.NextNumber)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.DELETE("/:id", h.Invoice.Delete)
	}
}

func registerPurchaseOrderRoutes(v1 *gin.RouterGroup, h *Handlers) {
	orders := v1.Group("/purchase-orders")
	{
		orders.GET("", h.PurchaseOrder.List)
		orders.POST("", h.PurchaseOrder.Create)
		orders.GET("/next-number", h.PurchaseOrder.NextNumber)
		orders.GET("/:id", h.PurchaseOrder.Get)
		orders.PUT("/:id", h.PurchaseOrder.Update)
		orders.PUT("/:id/status", h.PurchaseOrder.UpdateStatus)
		orders.DELETE("/:id", h.PurchaseOrder.Delete)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PATCH("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerSupplierRoutes(v1 *gin.RouterGroup, h *Handlers) {
	suppliers := v1.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PATCH("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.GetLowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerFinanceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	finances := v1.Group("/finances")
	{
		finances.GET("", h.Finance.List)
		finances.POST("", h.Finance.Create)
		finances.GET("/:id", h.Finance.Get)
		finances.DELETE("/:id", h.Finance.Delete)
	}
}
