package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type LowStockItem struct {
	WarehouseID  uint64          `db:"warehouse_id" json:"warehouse_id"`
	ProductID    uint64          `db:"product_id" json:"product_id"`
	SKU          string          `db:"sku" json:"sku"`
	Available    int64           `db:"available" json:"available"`
	ReorderPoint int64           `db:"reorder_point" json:"reorder_point"`
	UnitCost     decimal.Decimal `db:"unit_cost" json:"unit_cost"`
	StockValue   decimal.Decimal `json:"stock_value"`
}

type LowStockReport struct {
	WarehouseID uint64         `json:"warehouse_id"`
	Items       []LowStockItem `json:"items"`
	GeneratedAt time.Time      `json:"generated_at"`
}

type DelayedReceipt struct {
	ReceiptID   uint64    `db:"id" json:"receipt_id"`
	CustomerID  uint64    `db:"customer_id" json:"customer_id"`
	WarehouseID uint64    `db:"warehouse_id" json:"warehouse_id"`
	ReceiptNo   string    `db:"receipt_no" json:"receipt_no"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// LedgerDivergence flags a (warehouse, product) whose cached on-hand no longer
// matches the balance derived from the ledger.
type LedgerDivergence struct {
	WarehouseID   uint64 `db:"warehouse_id" json:"warehouse_id"`
	ProductID     uint64 `db:"product_id" json:"product_id"`
	LedgerBalance int64  `db:"ledger_balance" json:"ledger_balance"`
	OnHand        int64  `db:"on_hand" json:"on_hand"`
}
