package service

import (
	"context"

	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/internal/domain/repository"
)

// DashboardStats feeds the stat cards on the dashboard landing page.
type DashboardStats struct {
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalSales          int     `json:"totalSales"`
	PendingSales        int     `json:"pendingSales"`
	TotalQuotations     int     `json:"totalQuotations"`
	TotalCustomers      int     `json:"totalCustomers"`
	ActiveCustomers     int     `json:"activeCustomers"`
	LowStockProducts    int     `json:"lowStockProducts"`
	OutOfStockProducts  int     `json:"outOfStockProducts"`
	OpenPurchaseOrders  int     `json:"openPurchaseOrders"`
	PendingTransactions int     `json:"pendingTransactions"`
}

// DashboardService aggregates counts across every store for the landing
// page.
type DashboardService struct {
	sales     repository.SaleRepository
	quotes    repository.QuotationRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	orders    repository.PurchaseOrderRepository
	finances  repository.FinanceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	sales repository.SaleRepository,
	quotes repository.QuotationRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	orders repository.PurchaseOrderRepository,
	finances repository.FinanceRepository,
) *DashboardService {
	return &DashboardService{
		sales:     sales,
		quotes:    quotes,
		customers: customers,
		products:  products,
		orders:    orders,
		finances:  finances,
	}
}

// GetStats computes the stat card values. Revenue counts completed sales
// only; open purchase orders are those not yet approved or closed.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalSales = len(sales)
	for _, sale := range sales {
		switch sale.Status {
		case enum.SaleStatusCompleted:
			stats.TotalRevenue += sale.Amount
		case enum.SaleStatusPending:
			stats.PendingSales++
		}
	}

	quotes, err := s.quotes.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalQuotations = len(quotes)

	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalCustomers = len(customers)
	for _, customer := range customers {
		if customer.Status == enum.CustomerStatusActive {
			stats.ActiveCustomers++
		}
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, product := range products {
		switch product.Status {
		case enum.StockStatusLowStock:
			stats.LowStockProducts++
		case enum.StockStatusOutOfStock:
			stats.OutOfStockProducts++
		}
	}

	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, po := range orders {
		if po.Status == enum.PurchaseOrderStatusDraft || po.Status == enum.PurchaseOrderStatusSubmitted {
			stats.OpenPurchaseOrders++
		}
	}

	finances, err := s.finances.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, txn := range finances {
		if txn.Status == enum.FinanceStatusPending {
			stats.PendingTransactions++
		}
	}

	return stats, nil
}
