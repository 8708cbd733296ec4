package memstore

import (
	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
)

// Seed data mirrors the sample rows the dashboard ships with so the pages
// render something useful on first load. Stores start empty when seeding is
// disabled in config.

func mustDate(s string) datefmt.Date {
	d, err := datefmt.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// SeedCustomers returns the sample customer rows.
func SeedCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: "1", Name: "John Doe", Email: "john@example.com", Orders: 5, Status: enum.CustomerStatusActive, CreatedAt: mustDate("20.09.2025")},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Orders: 3, Status: enum.CustomerStatusActive, CreatedAt: mustDate("19.09.2025")},
		{ID: "3", Name: "Alice Johnson", Email: "alice@example.com", Orders: 8, Status: enum.CustomerStatusInactive, CreatedAt: mustDate("18.09.2025")},
		{ID: "4", Name: "Bob Brown", Email: "bob@example.com", Orders: 2, Status: enum.CustomerStatusActive, CreatedAt: mustDate("17.09.2025")},
		{ID: "5", Name: "Emma Wilson", Email: "emma@example.com", Orders: 6, Status: enum.CustomerStatusInactive, CreatedAt: mustDate("16.09.2025")},
	}
}

// SeedProducts returns the sample inventory rows.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Brake Pad Set", Supplier: "Nippon Auto Parts Co.", ProductCode: "JPN-SPR-2001", Quantity: 8, SoldCount: 15, Status: enum.StockStatusInStock, SupplierPrice: "LKR 18500", SellPrice: "LKR 39500", CreatedBy: "Super Admin", Date: mustDate("20.09.2025")},
		{ID: "2", Name: "Engine Oil Filter", Supplier: "Tokyo Motors Ltd.", ProductCode: "JPN-SPR-2002", Quantity: 3, SoldCount: 10, Status: enum.StockStatusLowStock, SupplierPrice: "LKR 8500", SellPrice: "LKR 17900", CreatedBy: "Super Admin", Date: mustDate("19.09.2025")},
		{ID: "3", Name: "Radiator Fan", Supplier: "Yamato Spare Traders", ProductCode: "JPN-SPR-2003", Quantity: 0, SoldCount: 7, Status: enum.StockStatusOutOfStock, SupplierPrice: "LKR 32500", SellPrice: "LKR 68500", CreatedBy: "Super Admin", Date: mustDate("18.09.2025")},
		{ID: "4", Name: "Headlight Assembly", Supplier: "Osaka Auto Imports", ProductCode: "JPN-SPR-2004", Quantity: 4, SoldCount: 9, Status: enum.StockStatusLowStock, SupplierPrice: "LKR 99500", SellPrice: "LKR 205000", CreatedBy: "Super Admin", Date: mustDate("18.09.2025")},
		{ID: "5", Name: "Shock Absorber Set", Supplier: "Kobe Auto Supplies", ProductCode: "JPN-SPR-2005", Quantity: 6, SoldCount: 14, Status: enum.StockStatusInStock, SupplierPrice: "LKR 67500", SellPrice: "LKR 138000", CreatedBy: "Super Admin", Date: mustDate("17.09.2025")},
	}
}

// SeedFinances returns the sample finance transactions.
func SeedFinances() []entity.Finance {
	return []entity.Finance{
		{ID: "1", TransactionID: "TXN-001", Description: "Fuel Refill", Amount: 5000, Date: mustDate("23.09.2025"), Status: enum.FinanceStatusCompleted, CreatedAt: mustDate("23.09.2025")},
		{ID: "2", TransactionID: "TXN-002", Description: "Maintenance", Amount: 1200, Date: mustDate("22.09.2025"), Status: enum.FinanceStatusPending, CreatedAt: mustDate("22.09.2025")},
		{ID: "3", TransactionID: "TXN-003", Description: "Rent Payment", Amount: 3000, Date: mustDate("21.09.2025"), Status: enum.FinanceStatusCompleted, CreatedAt: mustDate("21.09.2025")},
		{ID: "4", TransactionID: "TXN-004", Description: "Oil Change", Amount: 800, Date: mustDate("20.09.2025"), Status: enum.FinanceStatusFailed, CreatedAt: mustDate("20.09.2025")},
		{ID: "5", TransactionID: "TXN-005", Description: "Brake Inspection", Amount: 1500, Date: mustDate("19.09.2025"), Status: enum.FinanceStatusPending, CreatedAt: mustDate("19.09.2025")},
	}
}

// SeedSuppliers returns the sample supplier rows.
func SeedSuppliers() []entity.Supplier {
	return []entity.Supplier{
		{
			ID:               "1",
			Name:             "Supplier X",
			Contact:          "contact@x.com",
			Email:            "contact@x.com",
			PhoneNumber:      "+94 77 123 4567",
			Location:         "Colombo, Sri Lanka",
			VATNumber:        "123456789",
			ProductsSupplied: 10,
			Status:           enum.CustomerStatusActive,
			CreatedAt:        mustDate("23.09.2024"),
		},
	}
}

// SeedSales returns the sample sales pipeline rows.
func SeedSales() []entity.Sale {
	return []entity.Sale{
		{
			ID:          "1",
			Customer:    "John Doe",
			Amount:      20000,
			Date:        mustDate("23.09.2024"),
			Status:      enum.SaleStatusPending,
			CreatedAt:   mustDate("23.09.2024"),
			Email:       "john.doe@email.com",
			Phone:       "+94 77 123 4567",
			Description: "Laptop Purchase",
			Location:    "Colombo, Sri Lanka",
			VATNo:       "VAT123456789",
			QuotationNo: "QTN-2024-001",
			Items: []entity.LineItem{
				{ID: "1", ItemCode: "ITEM-001", Description: "Laptop", Qty: 1, Rate: 20000, Tax: enum.TaxRateV18, Warranty: "1 Year", Amount: 20000},
			},
		},
		{
			ID:          "2",
			Customer:    "ABC Corporation",
			Amount:      150000,
			Date:        mustDate("24.09.2024"),
			Status:      enum.SaleStatusCompleted,
			CreatedAt:   mustDate("20.09.2024"),
			Email:       "purchase@abccorp.com",
			Phone:       "+94 11 234 5678",
			Description: "Office Equipment",
			Location:    "Colombo 03, Sri Lanka",
			VATNo:       "VAT987654321",
			QuotationNo: "QTN-2024-002",
			Items: []entity.LineItem{
				{ID: "1", ItemCode: "ITEM-002", Description: "Office Chairs", Qty: 10, Rate: 15000, Tax: enum.TaxRateV18, Warranty: "2 Years", Amount: 150000},
			},
		},
	}
}

// SeedPurchaseOrders returns the sample purchase order rows.
func SeedPurchaseOrders() []entity.PurchaseOrder {
	return []entity.PurchaseOrder{
		{
			ID:          "1",
			PONumber:    "PO-2024-001",
			CompanyName: "Supplier X",
			VATNumber:   "123456789",
			Email:       "contact@x.com",
			PhoneNumber: "+94 77 123 4567",
			Location:    "Colombo, Sri Lanka",
			Status:      enum.PurchaseOrderStatusApproved,
			Date:        mustDate("2024-01-15"),
			TotalAmount: 150000,
			Warranty:    "2 years",
			Note:        "Please deliver by end of month.",
			Items: []entity.PurchaseOrderItem{
				{
					LineItem: entity.LineItem{ID: "1", ItemCode: "LAP001", Description: "Gaming Laptop", Qty: 5, Rate: 30000, Tax: enum.TaxRateV18, Warranty: "2 years", Amount: 150000},
					Note:     "Handle with care",
				},
			},
		},
	}
}
