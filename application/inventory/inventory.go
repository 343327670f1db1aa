package inventory

import (
	"context"
	"database/sql"
	"time"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	inventoryrepo "github.com/anhlog/wms/repository/inventory"
	txrepo "github.com/anhlog/wms/repository/tx"
	"github.com/anhlog/wms/utils/errors"
	"github.com/anhlog/wms/utils/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InventoryApp interface {
	// RecordMovement validates one movement, applies its stock delta and
	// appends the ledger row in a single transaction.
	RecordMovement(ctx context.Context, actorID uint64, req *model.MovementRequest) (*model.LedgerEntry, error)
	ListLedger(ctx context.Context, filter *model.LedgerFilter) (*model.LedgerListResponse, error)
	ListStockLevels(ctx context.Context, warehouseID uint64) ([]model.StockLevel, error)
}

type inventoryAppImpl struct {
	txRepo        txrepo.TxRepository
	inventoryRepo inventoryrepo.InventoryRepository
}

func NewInventoryApp(txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository) InventoryApp {
	return &inventoryAppImpl{txRepo: txRepo, inventoryRepo: inventoryRepo}
}

func (s *inventoryAppImpl) RecordMovement(ctx context.Context, actorID uint64, req *model.MovementRequest) (*model.LedgerEntry, error) {
	normalized, err := ValidateMovement(req)
	if err != nil {
		return nil, err
	}
	if normalized.Direction != "" && normalized.LocationID == 0 {
		return nil, errors.NewValidationError(errors.FieldError{Field: "location_id", Message: "location_id is required when the movement changes stock"})
	}

	entry := &model.LedgerEntry{
		ID:             uuid.NewString(),
		CustomerID:     normalized.CustomerID,
		WarehouseID:    normalized.WarehouseID,
		ProductID:      normalized.ProductID,
		MovementType:   normalized.MovementType,
		Direction:      normalized.Direction,
		Quantity:       normalized.Quantity,
		UnitCost:       normalized.UnitCost,
		ReferenceType:  normalized.ReferenceType,
		ReferenceID:    normalized.ReferenceID,
		Memo:           normalized.Memo,
		IdempotencyKey: normalized.IdempotencyKey,
		ActorID:        actorID,
		CreatedAt:      time.Now(),
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RecordMovement] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	switch normalized.Direction {
	case constant.DirectionIn:
		if err := s.inventoryRepo.UpsertIncrementTx(ctx, tx, normalized.WarehouseID, normalized.LocationID, normalized.ProductID, normalized.Quantity); err != nil {
			logger.Error("[RecordMovement] increment failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	case constant.DirectionOut:
		if err := s.inventoryRepo.DecrementTx(ctx, tx, normalized.WarehouseID, normalized.LocationID, normalized.ProductID, normalized.Quantity); err != nil {
			if err == sql.ErrNoRows {
				return nil, errors.SetCustomError(constant.ErrInsufficientStock)
			}
			logger.Error("[RecordMovement] decrement failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	default:
		// TRANSFER without a direction is ledger-only
	}

	if err := s.inventoryRepo.AppendLedgerTx(ctx, tx, entry); err != nil {
		if err == sql.ErrNoRows {
			// the idempotency key already claimed by an earlier entry
			return nil, errors.SetCustomError(constant.ErrDuplicateMovement)
		}
		logger.Error("[RecordMovement] ledger append failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RecordMovement] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return entry, nil
}

func (s *inventoryAppImpl) ListLedger(ctx context.Context, filter *model.LedgerFilter) (*model.LedgerListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 20
	}

	items, total, err := s.inventoryRepo.ListLedger(ctx, filter)
	if err != nil {
		logger.Error("[ListLedger] error inventoryRepo.ListLedger", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LedgerListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *inventoryAppImpl) ListStockLevels(ctx context.Context, warehouseID uint64) ([]model.StockLevel, error) {
	levels, err := s.inventoryRepo.ListStockLevels(ctx, warehouseID)
	if err != nil {
		logger.Error("[ListStockLevels] error inventoryRepo.ListStockLevels", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return levels, nil
}
