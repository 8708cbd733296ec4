package service

import (
	"context"
	"strings"

	"github.com/lahiruj/autolanka-erp/internal/domain/entity"
	"github.com/lahiruj/autolanka-erp/internal/domain/enum"
	"github.com/lahiruj/autolanka-erp/internal/domain/repository"
	"github.com/lahiruj/autolanka-erp/pkg/apperror"
	"github.com/lahiruj/autolanka-erp/pkg/datefmt"
	"github.com/lahiruj/autolanka-erp/pkg/pagination"
)

// ProductInput carries a new or replacement inventory record. The stock
// status is derived from the quantity, never supplied.
type ProductInput struct {
	Name          string `json:"name"`
	Supplier      string `json:"supplier"`
	ProductCode   string `json:"productCode"`
	Quantity      int    `json:"quantity"`
	SoldCount     int    `json:"soldCount"`
	SupplierPrice string `json:"supplierPrice"`
	SellPrice     string `json:"sellPrice"`
	CreatedBy     string `json:"createdBy"`
}

// ProductService manages the inventory page records.
type ProductService struct {
	products repository.ProductRepository
	today    func() datefmt.Date
}

// NewProductService creates a new product service
func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products, today: datefmt.Today}
}

// List returns products in creation order, optionally filtered by a name or
// product code substring, paginated.
func (s *ProductService) List(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Product], error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	if search = strings.TrimSpace(search); search != "" {
		needle := strings.ToLower(search)
		filtered := make([]entity.Product, 0, len(all))
		for _, product := range all {
			if strings.Contains(strings.ToLower(product.Name), needle) ||
				strings.Contains(strings.ToLower(product.ProductCode), needle) {
				filtered = append(filtered, product)
			}
		}
		all = filtered
	}

	page, meta := pagination.Slice(all, params)
	return pagination.NewPaginatedResult(page, meta), nil
}

// GetByID returns one product.
func (s *ProductService) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// LowStock returns the products at or below the low-stock band, for the
// dashboard's restock panel.
func (s *ProductService) LowStock(ctx context.Context) ([]entity.Product, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]entity.Product, 0)
	for _, product := range all {
		if product.Status != enum.StockStatusInStock {
			low = append(low, product)
		}
	}
	return low, nil
}

// Create adds an inventory record with its stock status derived from the
// quantity.
func (s *ProductService) Create(ctx context.Context, in *ProductInput) (*entity.Product, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.ProductCode) == "" {
		return nil, apperror.NewBadRequestError("Please fill Product Name and Product Code.")
	}

	product := &entity.Product{
		Name:          in.Name,
		Supplier:      in.Supplier,
		ProductCode:   in.ProductCode,
		Quantity:      in.Quantity,
		SoldCount:     in.SoldCount,
		Status:        enum.StockStatusFor(in.Quantity),
		SupplierPrice: in.SupplierPrice,
		SellPrice:     in.SellPrice,
		CreatedBy:     in.CreatedBy,
		Date:          s.today(),
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces a product's record in place, re-deriving its stock status.
func (s *ProductService) Update(ctx context.Context, id string, in *ProductInput) (*entity.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Supplier = in.Supplier
	product.ProductCode = in.ProductCode
	product.Quantity = in.Quantity
	product.SoldCount = in.SoldCount
	product.Status = enum.StockStatusFor(in.Quantity)
	product.SupplierPrice = in.SupplierPrice
	product.SellPrice = in.SellPrice
	product.CreatedBy = in.CreatedBy

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product. Deleting an unknown id is not an error.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}
