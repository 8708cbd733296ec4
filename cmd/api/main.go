package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/lahiruj/autolanka-erp/internal/application/service"
	"github.com/lahiruj/autolanka-erp/internal/config"
	"github.com/lahiruj/autolanka-erp/internal/infrastructure/memstore"
	"github.com/lahiruj/autolanka-erp/internal/presentation/http/handler"
	"github.com/lahiruj/autolanka-erp/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize in-memory stores
	saleRepo := memstore.NewSaleRepository()
	quotationRepo := memstore.NewQuotationRepository()
	invoiceRepo := memstore.NewInvoiceRepository()
	purchaseOrderRepo := memstore.NewPurchaseOrderRepository()
	customerRepo := memstore.NewCustomerRepository()
	supplierRepo := memstore.NewSupplierRepository()
	productRepo := memstore.NewProductRepository()
	financeRepo := memstore.NewFinanceRepository()

	// Seed sample data
	if cfg.Seed.Enabled {
		ctx := context.Background()
		if err := saleRepo.Reset(ctx, memstore.SeedSales()); err != nil {
			log.Fatalf("Failed to seed sales: %v", err)
		}
		if err := purchaseOrderRepo.Reset(ctx, memstore.SeedPurchaseOrders()); err != nil {
			log.Fatalf("Failed to seed purchase orders: %v", err)
		}
		if err := customerRepo.Reset(ctx, memstore.SeedCustomers()); err != nil {
			log.Fatalf("Failed to seed customers: %v", err)
		}
		if err := supplierRepo.Reset(ctx, memstore.SeedSuppliers()); err != nil {
			log.Fatalf("Failed to seed suppliers: %v", err)
		}
		if err := productRepo.Reset(ctx, memstore.SeedProducts()); err != nil {
			log.Fatalf("Failed to seed products: %v", err)
		}
		if err := financeRepo.Reset(ctx, memstore.SeedFinances()); err != nil {
			log.Fatalf("Failed to seed finances: %v", err)
		}
	}

	// Initialize services
	quotationService := service.NewQuotationService(quotationRepo, saleRepo)
	saleService := service.NewSaleService(saleRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo)
	purchaseOrderService := service.NewPurchaseOrderService(purchaseOrderRepo)
	customerService := service.NewCustomerService(customerRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	productService := service.NewProductService(productRepo)
	financeService := service.NewFinanceService(financeRepo)
	dashboardService := service.NewDashboardService(saleRepo, quotationRepo, customerRepo, productRepo, purchaseOrderRepo, financeRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Quotation:     handler.NewQuotationHandler(quotationService),
		Sale:          handler.NewSaleHandler(saleService),
		Invoice:       handler.NewInvoiceHandler(invoiceService),
		PurchaseOrder: handler.NewPurchaseOrderHandler(purchaseOrderService),
		Customer:      handler.NewCustomerHandler(customerService),
		Supplier:      handler.NewSupplierHandler(supplierService),
		Product:       handler.NewProductHandler(productService),
		Finance:       handler.NewFinanceHandler(financeService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
