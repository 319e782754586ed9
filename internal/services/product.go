package service

import (
	"context"
	"log/slog"

	"github.com/tiaraclaudya/inventory-service/internal/errors"
	"github.com/tiaraclaudya/inventory-service/internal/models"
	repository "github.com/tiaraclaudya/inventory-service/internal/repositories"
)

const DefaultLowStockThreshold = 10

type ProductService interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetProductByCode(ctx context.Context, code string) (*models.Product, error)
	SearchProducts(ctx context.Context, term string) ([]*models.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*models.Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]*models.Product, error)
	ListByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	UpdateStock(ctx context.Context, id int64, req *models.UpdateStockRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	GetStatistics(ctx context.Context) (*models.StatisticsResponse, error)
}

type productService struct {
	repo              repository.ProductRepository
	enforceStockFloor bool
	lowStockThreshold int
}

func NewProductService(repo repository.ProductRepository, enforceStockFloor bool, lowStockThreshold int) ProductService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}

	return &productService{repo: repo, enforceStockFloor: enforceStockFloor, lowStockThreshold: lowStockThreshold}
}

func (s *productService) ListProducts(ctx context.Context) ([]*models.Product, error) {

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product == nil {
		return nil, errors.NotFoundError("Product not found")
	}

	return product, nil
}

func (s *productService) GetProductByCode(ctx context.Context, code string) (*models.Product, error) {

	product, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product == nil {
		return nil, errors.NotFoundError("Product not found")
	}

	return product, nil
}

func (s *productService) SearchProducts(ctx context.Context, term string) ([]*models.Product, error) {

	products, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, errors.DatabaseError("Failed to search products").WithError(err)
	}

	return products, nil
}

func (s *productService) ListByCategory(ctx context.Context, categoryID int64) ([]*models.Product, error) {

	products, err := s.repo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) ListLowStock(ctx context.Context, threshold int) ([]*models.Product, error) {

	products, err := s.repo.FindLowStock(ctx, threshold)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch low stock products").WithError(err)
	}

	return products, nil
}

func (s *productService) ListByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*models.Product, error) {

	products, err := s.repo.FindByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	// Explicit pre-check gives a clean message; the UNIQUE constraint on
	// product_code stays the safety net for the check-then-insert race.
	existing, err := s.repo.FindByCode(ctx, req.ProductCode)
	if err != nil {
		return nil, errors.DatabaseError("Failed to check product code").WithError(err)
	}

	if existing != nil {
		return nil, errors.ConflictError("Product code already exists")
	}

	specs := req.Specifications
	if specs == nil {
		specs = models.Specifications{}
	}

	product := &models.Product{
		ProductCode:    req.ProductCode,
		Name:           req.Name,
		CategoryID:     req.CategoryID,
		Price:          *req.Price,
		Stock:          req.Stock,
		Description:    req.Description,
		Specifications: specs,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.ConflictError("Product code already exists")
		}

		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product == nil {
		return nil, errors.NotFoundError("Product not found")
	}

	// A new code must not collide with a different product.
	if req.ProductCode != nil && *req.ProductCode != product.ProductCode {
		other, err := s.repo.FindByCode(ctx, *req.ProductCode)
		if err != nil {
			return nil, errors.DatabaseError("Failed to check product code").WithError(err)
		}

		if other != nil && other.ID != id {
			return nil, errors.ConflictError("Product code already used by another product")
		}

		product.ProductCode = *req.ProductCode
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Specifications != nil {
		product.Specifications = req.Specifications
	}

	if err := s.repo.Update(ctx, product); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.ConflictError("Product code already used by another product")
		}

		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	return product, nil
}

func (s *productService) UpdateStock(ctx context.Context, id int64, req *models.UpdateStockRequest) (*models.Product, error) {

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product == nil {
		return nil, errors.NotFoundError("Product not found")
	}

	reason := req.Reason
	if reason == "" {
		reason = "Manual adjustment"
	}

	affected, err := s.repo.UpdateStock(ctx, id, *req.StockChange, s.enforceStockFloor)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update stock").WithError(err)
	}

	if affected == 0 {
		// The product existed a moment ago, so the guarded statement
		// refusing the row means the delta would go below zero.
		if s.enforceStockFloor {
			return nil, errors.ConflictError("Insufficient stock for this adjustment")
		}

		return nil, errors.NotFoundError("Product not found")
	}

	// The adjustment ledger is not persisted; the reason is kept as an
	// audit log line only.
	slog.Info("Stock adjusted",
		slog.Int64("productId", id),
		slog.Int("change", *req.StockChange),
		slog.String("reason", reason),
	)

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if updated == nil {
		return nil, errors.NotFoundError("Product not found")
	}

	return updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product == nil {
		return errors.NotFoundError("Product not found")
	}

	if product.Stock > 0 {
		return errors.ConflictError("Cannot delete product with existing stock. Clear stock first.")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.DatabaseError("Failed to delete product").WithError(err)
	}

	return nil
}

func (s *productService) GetStatistics(ctx context.Context) (*models.StatisticsResponse, error) {

	stats, err := s.repo.GetStatistics(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch statistics").WithError(err)
	}

	lowStock, err := s.repo.FindLowStock(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch low stock products").WithError(err)
	}

	return &models.StatisticsResponse{
		TotalProducts: stats.TotalProducts,
		TotalValue:    stats.TotalValue,
		AveragePrice:  stats.AveragePrice,
		TotalStock:    stats.TotalStock,
		LowStockCount: len(lowStock),
	}, nil
}
