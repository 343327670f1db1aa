package model

import (
	"time"

	"github.com/anhlog/wms/constant"
	"github.com/shopspring/decimal"
)

type InventoryRecord struct {
	ID          uint64    `db:"id" json:"id"`
	WarehouseID uint64    `db:"warehouse_id" json:"warehouse_id"`
	LocationID  uint64    `db:"location_id" json:"location_id"`
	ProductID   uint64    `db:"product_id" json:"product_id"`
	OnHand      int64     `db:"on_hand" json:"on_hand"`
	Allocated   int64     `db:"allocated" json:"allocated"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// LedgerEntry is one immutable quantity change. The ledger is the system of
// record for stock; on-hand balances are a projection of it.
type LedgerEntry struct {
	ID             string                     `db:"id" json:"id"`
	CustomerID     uint64                     `db:"customer_id" json:"customer_id"`
	WarehouseID    uint64                     `db:"warehouse_id" json:"warehouse_id"`
	ProductID      uint64                     `db:"product_id" json:"product_id"`
	MovementType   constant.MovementType      `db:"movement_type" json:"movement_type"`
	Direction      constant.MovementDirection `db:"direction" json:"direction,omitempty"`
	Quantity       int64                      `db:"quantity" json:"quantity"`
	UnitCost       decimal.NullDecimal        `db:"unit_cost" json:"unit_cost,omitempty"`
	ReferenceType  *constant.ReferenceType    `db:"reference_type" json:"reference_type,omitempty"`
	ReferenceID    *string                    `db:"reference_id" json:"reference_id,omitempty"`
	Memo           *string                    `db:"memo" json:"memo,omitempty"`
	IdempotencyKey *string                    `db:"idempotency_key" json:"idempotency_key,omitempty"`
	ActorID        uint64                     `db:"actor_id" json:"actor_id"`
	CreatedAt      time.Time                  `db:"created_at" json:"created_at"`
}

// MovementRequest is the write input for one ledger movement. Direction may be
// omitted for fixed-direction types; the validator fills it in.
type MovementRequest struct {
	CustomerID     uint64                     `json:"customer_id" validate:"required"`
	WarehouseID    uint64                     `json:"warehouse_id" validate:"required"`
	ProductID      uint64                     `json:"product_id" validate:"required"`
	LocationID     uint64                     `json:"location_id"`
	MovementType   constant.MovementType      `json:"movement_type" validate:"required"`
	Direction      constant.MovementDirection `json:"direction,omitempty"`
	Quantity       int64                      `json:"quantity"`
	UnitCost       decimal.NullDecimal        `json:"unit_cost,omitempty"`
	ReferenceType  *constant.ReferenceType    `json:"reference_type,omitempty"`
	ReferenceID    *string                    `json:"reference_id,omitempty"`
	Memo           *string                    `json:"memo,omitempty"`
	IdempotencyKey *string                    `json:"idempotency_key,omitempty"`
}

type LedgerFilter struct {
	CustomerID   uint64
	WarehouseID  uint64
	ProductID    uint64
	MovementType constant.MovementType
	Page         int
	PerPage      int
}

type LedgerListResponse struct {
	Items      []LedgerEntry `json:"items"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
}

type StockLevel struct {
	WarehouseID uint64 `db:"warehouse_id" json:"warehouse_id"`
	ProductID   uint64 `db:"product_id" json:"product_id"`
	SKU         string `db:"sku" json:"sku"`
	OnHand      int64  `db:"on_hand" json:"on_hand"`
	Allocated   int64  `db:"allocated" json:"allocated"`
}
