package warehouse

import (
	"context"
	"database/sql"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	"github.com/jmoiron/sqlx"
)

type WarehouseRepository interface {
	InsertWarehouse(ctx context.Context, wh *model.Warehouse) (uint64, error)
	GetWarehouseByID(ctx context.Context, warehouseID uint64) (*model.Warehouse, error)
	ListWarehouses(ctx context.Context) ([]model.Warehouse, error)
	UpdateWarehouseStatus(ctx context.Context, warehouseID uint64, status constant.WarehouseStatus) error
	InsertLocation(ctx context.Context, loc *model.Location) (uint64, error)
	GetLocationByID(ctx context.Context, locationID uint64) (*model.Location, error)
	GetStagingLocation(ctx context.Context, warehouseID uint64) (*model.Location, error)
	ListLocations(ctx context.Context, warehouseID uint64) ([]model.Location, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewWarehouseRepository(conn *sqlx.DB) WarehouseRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertWarehouse(ctx context.Context, wh *model.Warehouse) (uint64, error) {
	var id uint64
	q := `INSERT INTO warehouse (code, name, status, created_at) VALUES ($1, $2, $3, NOW()) RETURNING id`
	if err := r.conn.QueryRowxContext(ctx, q, wh.Code, wh.Name, wh.Status).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) GetWarehouseByID(ctx context.Context, warehouseID uint64) (*model.Warehouse, error) {
	var wh model.Warehouse
	q := "SELECT id, code, name, status, created_at FROM warehouse WHERE id = $1"
	if err := r.conn.GetContext(ctx, &wh, q, warehouseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &wh, nil
}

func (r *SQL) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	warehouses := make([]model.Warehouse, 0)
	q := "SELECT id, code, name, status, created_at FROM warehouse ORDER BY code"
	if err := r.conn.SelectContext(ctx, &warehouses, q); err != nil {
		return nil, err
	}
	return warehouses, nil
}

func (r *SQL) UpdateWarehouseStatus(ctx context.Context, warehouseID uint64, status constant.WarehouseStatus) error {
	res, err := r.conn.ExecContext(ctx, "UPDATE warehouse SET status = $2 WHERE id = $1", warehouseID, status)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) InsertLocation(ctx context.Context, loc *model.Location) (uint64, error) {
	var id uint64
	q := `INSERT INTO location (warehouse_id, code, is_staging) VALUES ($1, $2, $3) RETURNING id`
	if err := r.conn.QueryRowxContext(ctx, q, loc.WarehouseID, loc.Code, loc.IsStaging).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) GetLocationByID(ctx context.Context, locationID uint64) (*model.Location, error) {
	var loc model.Location
	q := "SELECT id, warehouse_id, code, is_staging FROM location WHERE id = $1"
	if err := r.conn.GetContext(ctx, &loc, q, locationID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &loc, nil
}

func (r *SQL) GetStagingLocation(ctx context.Context, warehouseID uint64) (*model.Location, error) {
	var loc model.Location
	q := "SELECT id, warehouse_id, code, is_staging FROM location WHERE warehouse_id = $1 AND is_staging = TRUE LIMIT 1"
	if err := r.conn.GetContext(ctx, &loc, q, warehouseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &loc, nil
}

func (r *SQL) ListLocations(ctx context.Context, warehouseID uint64) ([]model.Location, error) {
	locations := make([]model.Location, 0)
	q := "SELECT id, warehouse_id, code, is_staging FROM location WHERE warehouse_id = $1 ORDER BY code"
	if err := r.conn.SelectContext(ctx, &locations, q, warehouseID); err != nil {
		return nil, err
	}
	return locations, nil
}
