package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Specifications is a free-form key-value document persisted as serialized
// JSON in a text column.
type Specifications map[string]any

func (s Specifications) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}

	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("serializing specifications: %w", err)
	}

	return string(b), nil
}

func (s *Specifications) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = Specifications{}
		return nil
	case []byte:
		if len(v) == 0 {
			*s = Specifications{}
			return nil
		}

		return json.Unmarshal(v, s)
	case string:
		if v == "" {
			*s = Specifications{}
			return nil
		}

		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported specifications column type %T", src)
	}
}

type Product struct {
	ID             int64          `json:"id"`
	ProductCode    string         `json:"product_code"`
	Name           string         `json:"name"`
	CategoryID     *int64         `json:"category_id"`
	Price          float64        `json:"price"`
	Stock          int            `json:"stock"`
	Description    string         `json:"description"`
	Specifications Specifications `json:"specifications"`
	CategoryName   *string        `json:"category_name"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type CreateProductRequest struct {
	ProductCode    string         `json:"product_code" validate:"required"`
	Name           string         `json:"name" validate:"required"`
	CategoryID     *int64         `json:"category_id"`
	Price          *float64       `json:"price" validate:"required,gte=0"`
	Stock          int            `json:"stock" validate:"gte=0"`
	Description    string         `json:"description"`
	Specifications Specifications `json:"specifications"`
}

type UpdateProductRequest struct {
	ProductCode    *string        `json:"product_code,omitempty"`
	Name           *string        `json:"name,omitempty"`
	CategoryID     *int64         `json:"category_id,omitempty"`
	Price          *float64       `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock          *int           `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Description    *string        `json:"description,omitempty"`
	Specifications Specifications `json:"specifications,omitempty"`
}

type UpdateStockRequest struct {
	StockChange *int   `json:"stock_change" validate:"required"`
	Reason      string `json:"reason,omitempty"`
}

// ProductStatistics is the single-scan aggregate over the products table.
type ProductStatistics struct {
	TotalProducts int     `json:"total_products"`
	TotalStock    int     `json:"total_stock"`
	TotalValue    float64 `json:"total_value"`
	AveragePrice  float64 `json:"average_price"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
}

// StatisticsResponse composes the aggregate with the secondary low-stock
// count query.
type StatisticsResponse struct {
	TotalProducts int     `json:"total_products"`
	TotalValue    float64 `json:"total_value"`
	AveragePrice  float64 `json:"average_price"`
	TotalStock    int     `json:"total_stock"`
	LowStockCount int     `json:"low_stock_count"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
