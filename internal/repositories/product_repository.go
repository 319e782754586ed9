package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tiaraclaudya/inventory-service/internal/models"
	"github.com/tiaraclaudya/inventory-service/internal/utils"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]*models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindByCode(ctx context.Context, code string) (*models.Product, error)
	Search(ctx context.Context, term string) ([]*models.Product, error)
	FindByCategory(ctx context.Context, categoryID int64) ([]*models.Product, error)
	FindLowStock(ctx context.Context, threshold int) ([]*models.Product, error)
	FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	UpdateStock(ctx context.Context, id int64, delta int, enforceFloor bool) (int64, error)
	Delete(ctx context.Context, id int64) error
	GetStatistics(ctx context.Context) (*models.ProductStatistics, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

// Every read joins the category name onto the product row; products with a
// dangling category reference come back with a NULL category_name.
const selectProduct = `
        SELECT p.id, p.product_code, p.name, p.category_id, p.price,
               p.stock, p.description, p.specifications, p.created_at, p.updated_at,
               c.name AS category_name
        FROM products p
        LEFT JOIN categories c ON p.category_id = c.id`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	product := &models.Product{}

	err := row.Scan(&product.ID, &product.ProductCode, &product.Name, &product.CategoryID, &product.Price,
		&product.Stock, &product.Description, &product.Specifications, &product.CreatedAt, &product.UpdatedAt,
		&product.CategoryName)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) queryProduct(ctx context.Context, query string, args ...any) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, args...))
	if err != nil {
		// Absence is not a fault; a missing row comes back as nil.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]*models.Product, error) {
	return r.queryProducts(ctx, selectProduct+`
        ORDER BY p.name`)
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	return r.queryProduct(ctx, selectProduct+`
        WHERE p.id = $1`, id)
}

func (r *productRepository) FindByCode(ctx context.Context, code string) (*models.Product, error) {
	return r.queryProduct(ctx, selectProduct+`
        WHERE p.product_code = $1`, code)
}

func (r *productRepository) Search(ctx context.Context, term string) ([]*models.Product, error) {
	pattern := "%" + term + "%"

	return r.queryProducts(ctx, selectProduct+`
        WHERE p.name ILIKE $1 OR p.product_code ILIKE $1 OR p.description ILIKE $1
        ORDER BY p.name`, pattern)
}

func (r *productRepository) FindByCategory(ctx context.Context, categoryID int64) ([]*models.Product, error) {
	return r.queryProducts(ctx, selectProduct+`
        WHERE p.category_id = $1
        ORDER BY p.name`, categoryID)
}

func (r *productRepository) FindLowStock(ctx context.Context, threshold int) ([]*models.Product, error) {
	return r.queryProducts(ctx, selectProduct+`
        WHERE p.stock <= $1
        ORDER BY p.stock`, threshold)
}

func (r *productRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*models.Product, error) {
	return r.queryProducts(ctx, selectProduct+`
        WHERE p.price BETWEEN $1 AND $2
        ORDER BY p.price`, minPrice, maxPrice)
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (product_code, name, category_id, price, stock, description, specifications)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.ProductCode, product.Name, product.CategoryID, product.Price, product.Stock, product.Description, product.Specifications).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// Update replaces the full set of named fields; merging partial input with
// the existing record is the caller's job.
func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET product_code = $1, name = $2, category_id = $3, price = $4, stock = $5, description = $6, specifications = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.ProductCode, product.Name, product.CategoryID, product.Price, product.Stock, product.Description, product.Specifications, product.ID).Scan(&product.UpdatedAt)
}

// UpdateStock applies delta atomically in a single statement. With
// enforceFloor set, an adjustment that would drive stock negative matches no
// row; the caller distinguishes that from a missing product. Returns the
// number of rows updated.
func (r *productRepository) UpdateStock(ctx context.Context, id int64, delta int, enforceFloor bool) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE products SET stock = stock + $1, updated_at = NOW() WHERE id = $2`
	if enforceFloor {
		query += ` AND stock + $1 >= 0`
	}

	result, err := r.DB.ExecContext(dbCtx, query, delta, id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)

	return err
}

func (r *productRepository) GetStatistics(ctx context.Context) (*models.ProductStatistics, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	stats := &models.ProductStatistics{}

	query := `
        SELECT COUNT(*) AS total_products,
               COALESCE(SUM(stock), 0) AS total_stock,
               COALESCE(SUM(price * stock), 0) AS total_value,
               COALESCE(AVG(price), 0) AS average_price,
               COALESCE(MIN(price), 0) AS min_price,
               COALESCE(MAX(price), 0) AS max_price
        FROM products`

	err := r.DB.QueryRowContext(dbCtx, query).Scan(&stats.TotalProducts, &stats.TotalStock, &stats.TotalValue, &stats.AveragePrice, &stats.MinPrice, &stats.MaxPrice)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
