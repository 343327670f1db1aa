package model

import (
	"time"

	"github.com/anhlog/wms/constant"
)

type PutawayTask struct {
	ID          uint64                 `db:"id" json:"id"`
	CustomerID  uint64                 `db:"customer_id" json:"customer_id"`
	WarehouseID uint64                 `db:"warehouse_id" json:"warehouse_id"`
	ProductID   uint64                 `db:"product_id" json:"product_id"`
	ReceiptID   *uint64                `db:"receipt_id" json:"receipt_id,omitempty"`
	LocationID  *uint64                `db:"location_id" json:"location_id,omitempty"`
	Status      constant.PutawayStatus `db:"status" json:"status"`
	Quantity    int64                  `db:"quantity" json:"quantity"`
	ProcessedBy *uint64                `db:"processed_by" json:"processed_by,omitempty"`
	CompletedAt *time.Time             `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time              `db:"created_at" json:"created_at"`
}

type AssignLocationRequest struct {
	LocationID uint64 `json:"location_id" validate:"required"`
}

type CompletePutawayRequest struct {
	Quantity   int64  `json:"quantity" validate:"required,gt=0"`
	LocationID uint64 `json:"location_id" validate:"required"`
}

// CompletePutawayTxItem carries the task mutation applied on completion.
type CompletePutawayTxItem struct {
	TaskID      uint64
	Quantity    int64
	LocationID  uint64
	ProcessedBy uint64
	CompletedAt time.Time
}

type PutawayFilter struct {
	WarehouseID uint64
	Status      constant.PutawayStatus
	Page        int
	PerPage     int
}

type PutawayListResponse struct {
	Items      []PutawayTask `json:"items"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
}
