package model

import (
	"time"

	"github.com/anhlog/wms/constant"
)

type Warehouse struct {
	ID        uint64                   `db:"id" json:"id"`
	Code      string                   `db:"code" json:"code"`
	Name      string                   `db:"name" json:"name"`
	Status    constant.WarehouseStatus `db:"status" json:"status"`
	CreatedAt time.Time                `db:"created_at" json:"created_at"`
}

// Location is one storage slot inside a warehouse. Code zero is reserved for
// the staging area goods land in before putaway.
type Location struct {
	ID          uint64 `db:"id" json:"id"`
	WarehouseID uint64 `db:"warehouse_id" json:"warehouse_id"`
	Code        string `db:"code" json:"code"`
	IsStaging   bool   `db:"is_staging" json:"is_staging"`
}

type CreateWarehouseRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type CreateLocationRequest struct {
	Code      string `json:"code" validate:"required"`
	IsStaging bool   `json:"is_staging"`
}
