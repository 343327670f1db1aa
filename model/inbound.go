package model

import (
	"time"

	"github.com/anhlog/wms/constant"
	"github.com/shopspring/decimal"
)

type InboundReceipt struct {
	ID          uint64                 `db:"id" json:"id"`
	CustomerID  uint64                 `db:"customer_id" json:"customer_id"`
	WarehouseID uint64                 `db:"warehouse_id" json:"warehouse_id"`
	ReceiptNo   string                 `db:"receipt_no" json:"receipt_no"`
	Status      constant.ReceiptStatus `db:"status" json:"status"`
	ReceivedAt  *time.Time             `db:"received_at" json:"received_at,omitempty"`
	CreatedAt   time.Time              `db:"created_at" json:"created_at"`
}

type ReceiptLine struct {
	ID        uint64              `db:"id" json:"id"`
	ReceiptID uint64              `db:"receipt_id" json:"receipt_id"`
	ProductID uint64              `db:"product_id" json:"product_id"`
	Quantity  int64               `db:"quantity" json:"quantity"`
	UnitCost  decimal.NullDecimal `db:"unit_cost" json:"unit_cost,omitempty"`
}

type ReceiptLineRequest struct {
	ProductID uint64              `json:"product_id" validate:"required"`
	Quantity  int64               `json:"quantity" validate:"required,gt=0"`
	UnitCost  decimal.NullDecimal `json:"unit_cost,omitempty"`
}

type CreateReceiptRequest struct {
	CustomerID  uint64               `json:"customer_id" validate:"required"`
	WarehouseID uint64               `json:"warehouse_id" validate:"required"`
	ReceiptNo   string               `json:"receipt_no" validate:"required"`
	Lines       []ReceiptLineRequest `json:"lines" validate:"required,dive,required"`
}

type CreateReceiptResponse struct {
	ReceiptID uint64 `json:"receipt_id"`
}

// ReceiveResponse reports what one receipt produced: the tasks goods wait in
// staging for, one per line.
type ReceiveResponse struct {
	ReceiptID uint64   `json:"receipt_id"`
	TaskIDs   []uint64 `json:"task_ids"`
}
