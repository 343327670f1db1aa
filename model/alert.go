package model

import (
	"time"

	"github.com/anhlog/wms/constant"
)

type Alert struct {
	ID             uint64             `db:"id" json:"id"`
	Type           constant.AlertType `db:"type" json:"type"`
	WarehouseID    uint64             `db:"warehouse_id" json:"warehouse_id"`
	ProductID      *uint64            `db:"product_id" json:"product_id,omitempty"`
	ReceiptID      *uint64            `db:"receipt_id" json:"receipt_id,omitempty"`
	Message        string             `db:"message" json:"message"`
	Acknowledged   bool               `db:"acknowledged" json:"acknowledged"`
	AcknowledgedBy *uint64            `db:"acknowledged_by" json:"acknowledged_by,omitempty"`
	CreatedAt      time.Time          `db:"created_at" json:"created_at"`
}

type RaiseAlertRequest struct {
	Type        constant.AlertType `json:"type" validate:"required"`
	WarehouseID uint64             `json:"warehouse_id" validate:"required"`
	ProductID   *uint64            `json:"product_id,omitempty"`
	ReceiptID   *uint64            `json:"receipt_id,omitempty"`
	Message     string             `json:"message" validate:"required"`
}

type AlertFilter struct {
	Type         constant.AlertType
	WarehouseID  uint64
	Acknowledged *bool
	Page         int
	PerPage      int
}

type AlertListResponse struct {
	Items      []Alert `json:"items"`
	TotalCount int     `json:"total_count"`
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
}
