package model

import (
	"time"

	"github.com/anhlog/wms/constant"
)

type Order struct {
	ID          uint64               `db:"id" json:"id"`
	CustomerID  uint64               `db:"customer_id" json:"customer_id"`
	WarehouseID uint64               `db:"warehouse_id" json:"warehouse_id"`
	OrderNo     string               `db:"order_no" json:"order_no"`
	Status      constant.OrderStatus `db:"status" json:"status"`
	CreatedAt   time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `db:"updated_at" json:"updated_at"`
}

type CreateOrderRequest struct {
	CustomerID  uint64 `json:"customer_id" validate:"required"`
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	OrderNo     string `json:"order_no" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status constant.OrderStatus `json:"status" validate:"required"`
}

type OrderFilter struct {
	CustomerID uint64
	Status     constant.OrderStatus
	Page       int
	PerPage    int
}

type OrderListResponse struct {
	Items      []Order `json:"items"`
	TotalCount int     `json:"total_count"`
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
}
