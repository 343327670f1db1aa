package inbound

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	inboundrepo "github.com/anhlog/wms/repository/inbound"
	inventoryrepo "github.com/anhlog/wms/repository/inventory"
	putawayrepo "github.com/anhlog/wms/repository/putaway"
	txrepo "github.com/anhlog/wms/repository/tx"
	warehouserepo "github.com/anhlog/wms/repository/warehouse"
	"github.com/anhlog/wms/utils/errors"
	"github.com/anhlog/wms/utils/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InboundApp interface {
	CreateReceipt(ctx context.Context, req *model.CreateReceiptRequest) (*model.CreateReceiptResponse, error)
	GetReceipt(ctx context.Context, receiptID uint64) (*model.InboundReceipt, error)
	// Receive books every line of an OPEN receipt: an INBOUND ledger entry and
	// a staging-area stock increment per line, plus one pending putaway task.
	// One transaction for the whole receipt.
	Receive(ctx context.Context, receiptID, actorID uint64) (*model.ReceiveResponse, error)
}

type inboundAppImpl struct {
	txRepo        txrepo.TxRepository
	inboundRepo   inboundrepo.InboundRepository
	inventoryRepo inventoryrepo.InventoryRepository
	putawayRepo   putawayrepo.PutawayRepository
	warehouseRepo warehouserepo.WarehouseRepository
}

func NewInboundApp(txRepo txrepo.TxRepository, inboundRepo inboundrepo.InboundRepository, inventoryRepo inventoryrepo.InventoryRepository, putawayRepo putawayrepo.PutawayRepository, warehouseRepo warehouserepo.WarehouseRepository) InboundApp {
	return &inboundAppImpl{
		txRepo:        txRepo,
		inboundRepo:   inboundRepo,
		inventoryRepo: inventoryRepo,
		putawayRepo:   putawayRepo,
		warehouseRepo: warehouseRepo,
	}
}

func (s *inboundAppImpl) CreateReceipt(ctx context.Context, req *model.CreateReceiptRequest) (*model.CreateReceiptResponse, error) {
	if len(req.Lines) == 0 {
		return nil, errors.NewValidationError(errors.FieldError{Field: "lines", Message: "at least one line is required"})
	}
	for i, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, errors.NewValidationError(errors.FieldError{
				Field:   fmt.Sprintf("lines[%d].quantity", i),
				Message: "quantity must be greater than zero",
			})
		}
	}

	warehouse, err := s.warehouseRepo.GetWarehouseByID(ctx, req.WarehouseID)
	if err != nil {
		logger.Error("[CreateReceipt] get warehouse failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if warehouse.Status != constant.WarehouseStatusActive {
		return nil, errors.NewValidationError(errors.FieldError{Field: "warehouse_id", Message: "warehouse is not active"})
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateReceipt] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	receiptID, err := s.inboundRepo.InsertReceiptTx(ctx, tx, &model.InboundReceipt{
		CustomerID:  req.CustomerID,
		WarehouseID: req.WarehouseID,
		ReceiptNo:   req.ReceiptNo,
		Status:      constant.ReceiptStatusOpen,
	})
	if err != nil {
		logger.Error("[CreateReceipt] insert receipt failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.inboundRepo.InsertLinesTx(ctx, tx, receiptID, req.Lines); err != nil {
		logger.Error("[CreateReceipt] insert lines failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateReceipt] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.CreateReceiptResponse{ReceiptID: receiptID}, nil
}

func (s *inboundAppImpl) GetReceipt(ctx context.Context, receiptID uint64) (*model.InboundReceipt, error) {
	receipt, err := s.inboundRepo.GetReceiptByID(ctx, receiptID)
	if err != nil {
		logger.Error("[GetReceipt] get receipt failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if receipt == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return receipt, nil
}

func (s *inboundAppImpl) Receive(ctx context.Context, receiptID, actorID uint64) (*model.ReceiveResponse, error) {
	lines, err := s.inboundRepo.GetLines(ctx, receiptID)
	if err != nil {
		logger.Error("[Receive] get lines failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Receive] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	receipt, err := s.inboundRepo.GetReceiptByIDTx(ctx, tx, receiptID)
	if err != nil {
		logger.Error("[Receive] get receipt failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if receipt == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if receipt.Status != constant.ReceiptStatusOpen {
		return nil, errors.SetCustomError(constant.ErrReceiptAlreadyReceived)
	}

	staging, err := s.warehouseRepo.GetStagingLocation(ctx, receipt.WarehouseID)
	if err != nil {
		logger.Error("[Receive] get staging location failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if staging == nil {
		logger.Error("[Receive] warehouse has no staging location", zap.Uint64("warehouse_id", receipt.WarehouseID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now()
	refType := constant.ReferenceInboundReceipt
	refID := fmt.Sprintf("%d", receiptID)
	taskIDs := make([]uint64, 0, len(lines))
	for _, line := range lines {
		// Per-line idempotency key makes a retried receive a no-op at the
		// ledger append instead of a double booking.
		idemKey := fmt.Sprintf("inbound-%d-line-%d", receiptID, line.ID)
		memo := fmt.Sprintf("inbound receipt %s", receipt.ReceiptNo)
		if err := s.inventoryRepo.AppendLedgerTx(ctx, tx, &model.LedgerEntry{
			ID:             uuid.NewString(),
			CustomerID:     receipt.CustomerID,
			WarehouseID:    receipt.WarehouseID,
			ProductID:      line.ProductID,
			MovementType:   constant.MovementInbound,
			Direction:      constant.DirectionIn,
			Quantity:       line.Quantity,
			UnitCost:       line.UnitCost,
			ReferenceType:  &refType,
			ReferenceID:    &refID,
			Memo:           &memo,
			IdempotencyKey: &idemKey,
			ActorID:        actorID,
			CreatedAt:      now,
		}); err != nil {
			if err == sql.ErrNoRows {
				return nil, errors.SetCustomError(constant.ErrDuplicateMovement)
			}
			logger.Error("[Receive] ledger append failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		if err := s.inventoryRepo.UpsertIncrementTx(ctx, tx, receipt.WarehouseID, staging.ID, line.ProductID, line.Quantity); err != nil {
			logger.Error("[Receive] staging increment failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		receiptRef := receiptID
		taskID, err := s.putawayRepo.InsertTaskTx(ctx, tx, &model.PutawayTask{
			CustomerID:  receipt.CustomerID,
			WarehouseID: receipt.WarehouseID,
			ProductID:   line.ProductID,
			ReceiptID:   &receiptRef,
			Status:      constant.PutawayStatusPending,
			Quantity:    line.Quantity,
		})
		if err != nil {
			logger.Error("[Receive] insert task failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		taskIDs = append(taskIDs, taskID)
	}

	if err := s.inboundRepo.MarkReceivedTx(ctx, tx, receiptID, now); err != nil {
		logger.Error("[Receive] mark received failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Receive] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.ReceiveResponse{ReceiptID: receiptID, TaskIDs: taskIDs}, nil
}
