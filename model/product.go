package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           uint64          `db:"id" json:"id"`
	CustomerID   uint64          `db:"customer_id" json:"customer_id"`
	BrandID      *uint64         `db:"brand_id" json:"brand_id,omitempty"`
	SKU          string          `db:"sku" json:"sku"`
	Name         string          `db:"name" json:"name"`
	ReorderPoint int64           `db:"reorder_point" json:"reorder_point"`
	UnitCost     decimal.Decimal `db:"unit_cost" json:"unit_cost"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

type CreateProductRequest struct {
	CustomerID   uint64          `json:"customer_id" validate:"required"`
	BrandID      *uint64         `json:"brand_id,omitempty"`
	SKU          string          `json:"sku" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	ReorderPoint int64           `json:"reorder_point" validate:"gte=0"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
}

type ProductListResponse struct {
	Items      []Product `json:"items"`
	TotalCount int       `json:"total_count"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}
