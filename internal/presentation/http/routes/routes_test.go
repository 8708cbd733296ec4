package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lahiruj/autolanka-erp/internal/application/service"
	"github.com/lahiruj/autolanka-erp/internal/config"
	"github.com/lahiruj/autolanka-erp/internal/infrastructure/memstore"
	"github.com/lahiruj/autolanka-erp/internal/presentation/http/handler"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	saleRepo := memstore.NewSaleRepository()
	quotationRepo := memstore.NewQuotationRepository()
	invoiceRepo := memstore.NewInvoiceRepository()
	purchaseOrderRepo := memstore.NewPurchaseOrderRepository()
	customerRepo := memstore.NewCustomerRepository()
	supplierRepo := memstore.NewSupplierRepository()
	productRepo := memstore.NewProductRepository()
	financeRepo := memstore.NewFinanceRepository()

	handlers := &Handlers{
		Quotation:     handler.NewQuotationHandler(service.NewQuotationService(quotationRepo, saleRepo)),
		Sale:          handler.NewSaleHandler(service.NewSaleService(saleRepo)),
		Invoice:       handler.NewInvoiceHandler(service.NewInvoiceService(invoiceRepo)),
		PurchaseOrder: handler.NewPurchaseOrderHandler(service.NewPurchaseOrderService(purchaseOrderRepo)),
		Customer:      handler.NewCustomerHandler(service.NewCustomerService(customerRepo)),
		Supplier:      handler.NewSupplierHandler(service.NewSupplierService(supplierRepo)),
		Product:       handler.NewProductHandler(service.NewProductService(productRepo)),
		Finance:       handler.NewFinanceHandler(service.NewFinanceService(financeRepo)),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(
			saleRepo, quotationRepo, customerRepo, productRepo, purchaseOrderRepo, financeRepo,
		)),
	}

	return Setup(handlers, &config.Config{
		App:       config.AppConfig{Name: "autolanka-erp-test"},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestQuotationSubmissionDerivesSale(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/quotations", gin.H{
		"quoteNumber":  "QTN-2025-001",
		"customerName": "John Doe",
		"items": []gin.H{
			{"description": "Brake Pad Set", "unitPrice": "18500", "quantity": "2"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	env := decode(t, w)
	assert.True(t, env.Success)

	var quotation struct {
		ID          string  `json:"id"`
		TotalAmount float64 `json:"totalAmount"`
		Status      string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quotation))
	assert.NotEmpty(t, quotation.ID)
	assert.Equal(t, 37000.0, quotation.TotalAmount)
	assert.Equal(t, "Draft", quotation.Status)

	w = doJSON(t, router, http.MethodGet, "/api/v1/sales", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Items []struct {
			Customer    string  `json:"customer"`
			Amount      float64 `json:"amount"`
			Status      string  `json:"status"`
			QuotationNo string  `json:"quotationNo"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &result))
	require.Len(t, result.Items, 1)
	assert.Equal(t, "John Doe", result.Items[0].Customer)
	assert.Equal(t, 37000.0, result.Items[0].Amount)
	assert.Equal(t, "Pending", result.Items[0].Status)
	assert.Equal(t, "QTN-2025-001", result.Items[0].QuotationNo)
}

func TestQuotationSubmissionValidationErrors(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/quotations", gin.H{
		"quoteNumber":  "QTN-2025-002",
		"customerName": "Jane Smith",
		"items": []gin.H{
			{"description": "", "unitPrice": "100", "quantity": "1"},
			{"description": "Oil Filter", "unitPrice": "0", "quantity": "1"},
		},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, []string{
		"Item 1: Please fill Item Description, Unit Price, and Quantity.",
		"Item 2: Unit Price must be greater than 0.",
	}, env.Errors)

	// All-or-nothing: nothing persisted.
	w = doJSON(t, router, http.MethodGet, "/api/v1/quotations", nil)
	var result struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &result))
	assert.Empty(t, result.Items)
}

func TestQuotationMissingHeader(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/quotations", gin.H{
		"customerName": "Jane Smith",
		"items": []gin.H{
			{"description": "Oil Filter", "unitPrice": "4500", "quantity": "1"},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please fill Quotation Number, Customer Name, and add at least one item.", decode(t, w).Message)
}

func TestSalePatchEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/quotations", gin.H{
		"quoteNumber":  "QTN-2025-003",
		"customerName": "ABC Corporation",
		"items": []gin.H{
			{"description": "Office Chairs", "unitPrice": "15000", "quantity": "10"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/sales", nil)
	var listing struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &listing))
	require.Len(t, listing.Items, 1)

	w = doJSON(t, router, http.MethodPatch, "/api/v1/sales/"+listing.Items[0].ID, gin.H{
		"status": "Completed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var sale struct {
		Customer string  `json:"customer"`
		Amount   float64 `json:"amount"`
		Status   string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &sale))
	assert.Equal(t, "Completed", sale.Status)
	assert.Equal(t, "ABC Corporation", sale.Customer, "patch keeps untouched fields")
	assert.Equal(t, 150000.0, sale.Amount)
}

func TestPurchaseOrderEndpointRejectsInvalidEntry(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/purchase-orders", gin.H{
		"poNumber":    "PO-2025-001",
		"companyName": "Supplier X",
		"items": []gin.H{
			{"description": "Gaming Laptop", "unitPrice": "", "quantity": "5"},
		},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"Item 1: Please fill PO Description, Unit Price, and Amount."}, decode(t, w).Errors)
}

func TestUnknownResourceReturns404(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/invoices/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Invoice not found", decode(t, w).Message)
}

func TestDashboardStats(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/quotations", gin.H{
		"quoteNumber":  "QTN-2025-004",
		"customerName": "John Doe",
		"items": []gin.H{
			{"description": "Radiator Fan", "unitPrice": "32500", "quantity": "1"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalSales      int `json:"totalSales"`
		PendingSales    int `json:"pendingSales"`
		TotalQuotations int `json:"totalQuotations"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &stats))
	assert.Equal(t, 1, stats.TotalSales)
	assert.Equal(t, 1, stats.PendingSales)
	assert.Equal(t, 1, stats.TotalQuotations)
}
