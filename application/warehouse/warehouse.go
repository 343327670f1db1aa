package warehouse

import (
	"context"
	"database/sql"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	inventoryrepo "github.com/anhlog/wms/repository/inventory"
	warehouserepo "github.com/anhlog/wms/repository/warehouse"
	"github.com/anhlog/wms/utils/errors"
	"github.com/anhlog/wms/utils/logger"
	"go.uber.org/zap"
)

type WarehouseApp interface {
	CreateWarehouse(ctx context.Context, req *model.CreateWarehouseRequest) (*model.Warehouse, error)
	GetWarehouse(ctx context.Context, warehouseID uint64) (*model.Warehouse, error)
	ListWarehouses(ctx context.Context) ([]model.Warehouse, error)
	ActivateWarehouse(ctx context.Context, warehouseID uint64) error
	// DeactivateWarehouse refuses while the warehouse still holds stock.
	DeactivateWarehouse(ctx context.Context, warehouseID uint64) error
	CreateLocation(ctx context.Context, warehouseID uint64, req *model.CreateLocationRequest) (*model.Location, error)
	ListLocations(ctx context.Context, warehouseID uint64) ([]model.Location, error)
}

type warehouseAppImpl struct {
	warehouseRepo warehouserepo.WarehouseRepository
	inventoryRepo inventoryrepo.InventoryRepository
}

func NewWarehouseApp(warehouseRepo warehouserepo.WarehouseRepository, inventoryRepo inventoryrepo.InventoryRepository) WarehouseApp {
	return &warehouseAppImpl{
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (s *warehouseAppImpl) CreateWarehouse(ctx context.Context, req *model.CreateWarehouseRequest) (*model.Warehouse, error) {
	wh := &model.Warehouse{
		Code:   req.Code,
		Name:   req.Name,
		Status: constant.WarehouseStatusActive,
	}

	id, err := s.warehouseRepo.InsertWarehouse(ctx, wh)
	if err != nil {
		logger.Error("[CreateWarehouse] insert failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	wh.ID = id

	// Every warehouse starts with a staging location for inbound goods.
	stagingID, err := s.warehouseRepo.InsertLocation(ctx, &model.Location{
		WarehouseID: id,
		Code:        "STAGING",
		IsStaging:   true,
	})
	if err != nil {
		logger.Error("[CreateWarehouse] insert staging location failed", zap.String("error", err.Error()), zap.Uint64("warehouse_id", id))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	logger.Info("[CreateWarehouse] warehouse created", zap.Uint64("warehouse_id", id), zap.Uint64("staging_location_id", stagingID))

	return wh, nil
}

func (s *warehouseAppImpl) GetWarehouse(ctx context.Context, warehouseID uint64) (*model.Warehouse, error) {
	wh, err := s.warehouseRepo.GetWarehouseByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[GetWarehouse] get warehouse failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wh == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return wh, nil
}

func (s *warehouseAppImpl) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	warehouses, err := s.warehouseRepo.ListWarehouses(ctx)
	if err != nil {
		logger.Error("[ListWarehouses] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return warehouses, nil
}

func (s *warehouseAppImpl) ActivateWarehouse(ctx context.Context, warehouseID uint64) error {
	warehouse, err := s.warehouseRepo.GetWarehouseByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[ActivateWarehouse] get warehouse failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	err = s.warehouseRepo.UpdateWarehouseStatus(ctx, warehouseID, constant.WarehouseStatusActive)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[ActivateWarehouse] update status failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

func (s *warehouseAppImpl) DeactivateWarehouse(ctx context.Context, warehouseID uint64) error {
	warehouse, err := s.warehouseRepo.GetWarehouseByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[DeactivateWarehouse] get warehouse failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	onHand, err := s.inventoryRepo.CheckWarehouseStock(ctx, warehouseID)
	if err != nil {
		logger.Error("[DeactivateWarehouse] check stock failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if onHand > 0 {
		return errors.SetCustomError(constant.ErrWarehouseHasStock)
	}

	err = s.warehouseRepo.UpdateWarehouseStatus(ctx, warehouseID, constant.WarehouseStatusInactive)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[DeactivateWarehouse] update status failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

func (s *warehouseAppImpl) CreateLocation(ctx context.Context, warehouseID uint64, req *model.CreateLocationRequest) (*model.Location, error) {
	warehouse, err := s.warehouseRepo.GetWarehouseByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[CreateLocation] get warehouse failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	loc := &model.Location{
		WarehouseID: warehouseID,
		Code:        req.Code,
		IsStaging:   req.IsStaging,
	}
	id, err := s.warehouseRepo.InsertLocation(ctx, loc)
	if err != nil {
		logger.Error("[CreateLocation] insert failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	loc.ID = id
	return loc, nil
}

func (s *warehouseAppImpl) ListLocations(ctx context.Context, warehouseID uint64) ([]model.Location, error) {
	locations, err := s.warehouseRepo.ListLocations(ctx, warehouseID)
	if err != nil {
		logger.Error("[ListLocations] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return locations, nil
}
