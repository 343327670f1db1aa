package putaway

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	inventoryrepo "github.com/anhlog/wms/repository/inventory"
	putawayrepo "github.com/anhlog/wms/repository/putaway"
	txrepo "github.com/anhlog/wms/repository/tx"
	warehouserepo "github.com/anhlog/wms/repository/warehouse"
	"github.com/anhlog/wms/utils/errors"
	"github.com/anhlog/wms/utils/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PutawayApp interface {
	GetTask(ctx context.Context, taskID uint64) (*model.PutawayTask, error)
	ListTasks(ctx context.Context, filter *model.PutawayFilter) (*model.PutawayListResponse, error)
	AssignLocation(ctx context.Context, taskID, locationID uint64) error
	// Complete finishes one putaway task: task update, the staging-to-location
	// stock move and ledger appends happen in one transaction, all or nothing.
	Complete(ctx context.Context, taskID uint64, req *model.CompletePutawayRequest, actorID uint64) error
}

type putawayAppImpl struct {
	txRepo        txrepo.TxRepository
	putawayRepo   putawayrepo.PutawayRepository
	inventoryRepo inventoryrepo.InventoryRepository
	warehouseRepo warehouserepo.WarehouseRepository
}

func NewPutawayApp(txRepo txrepo.TxRepository, putawayRepo putawayrepo.PutawayRepository, inventoryRepo inventoryrepo.InventoryRepository, warehouseRepo warehouserepo.WarehouseRepository) PutawayApp {
	return &putawayAppImpl{
		txRepo:        txRepo,
		putawayRepo:   putawayRepo,
		inventoryRepo: inventoryRepo,
		warehouseRepo: warehouseRepo,
	}
}

func (s *putawayAppImpl) GetTask(ctx context.Context, taskID uint64) (*model.PutawayTask, error) {
	task, err := s.putawayRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		logger.Error("[GetTask] get task failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if task == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return task, nil
}

func (s *putawayAppImpl) ListTasks(ctx context.Context, filter *model.PutawayFilter) (*model.PutawayListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 20
	}

	items, total, err := s.putawayRepo.ListTasks(ctx, filter)
	if err != nil {
		logger.Error("[ListTasks] list tasks failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.PutawayListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *putawayAppImpl) AssignLocation(ctx context.Context, taskID, locationID uint64) error {
	task, err := s.putawayRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		logger.Error("[AssignLocation] get task failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if task == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.checkLocation(ctx, task.WarehouseID, locationID); err != nil {
		return err
	}

	if err := s.putawayRepo.AssignLocation(ctx, taskID, locationID); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrTaskAlreadyCompleted)
		}
		logger.Error("[AssignLocation] assign failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

func (s *putawayAppImpl) Complete(ctx context.Context, taskID uint64, req *model.CompletePutawayRequest, actorID uint64) error {
	if req.Quantity <= 0 {
		return errors.NewValidationError(errors.FieldError{Field: "quantity", Message: "quantity must be greater than zero"})
	}

	location, err := s.warehouseRepo.GetLocationByID(ctx, req.LocationID)
	if err != nil {
		logger.Error("[Complete] get location failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if location == nil {
		return errors.NewValidationError(errors.FieldError{Field: "location_id", Message: "location does not exist"})
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Complete] begin tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// Row lock on the task keeps a second completion waiting here until this
	// transaction settles, then it fails the status guard below.
	task, err := s.putawayRepo.GetTaskByIDTx(ctx, tx, taskID)
	if err != nil {
		logger.Error("[Complete] get task failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if task == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if task.Status == constant.PutawayStatusCompleted {
		return errors.SetCustomError(constant.ErrTaskAlreadyCompleted)
	}
	if location.WarehouseID != task.WarehouseID {
		return errors.NewValidationError(errors.FieldError{Field: "location_id", Message: "location belongs to another warehouse"})
	}

	staging, err := s.warehouseRepo.GetStagingLocation(ctx, task.WarehouseID)
	if err != nil {
		logger.Error("[Complete] get staging location failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if staging == nil {
		logger.Error("[Complete] warehouse has no staging location", zap.Uint64("warehouse_id", task.WarehouseID))
		return errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now()
	if err := s.putawayRepo.CompleteTaskTx(ctx, tx, &model.CompletePutawayTxItem{
		TaskID:      taskID,
		Quantity:    req.Quantity,
		LocationID:  req.LocationID,
		ProcessedBy: actorID,
		CompletedAt: now,
	}); err != nil {
		logger.Error("[Complete] update task failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	// The quantity leaves staging before it lands on the shelf, otherwise
	// every received unit would be counted twice once put away.
	if err := s.inventoryRepo.DecrementTx(ctx, tx, task.WarehouseID, staging.ID, task.ProductID, req.Quantity); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrInsufficientStock)
		}
		logger.Error("[Complete] staging decrement failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	// Single-statement increment: concurrent completions of different tasks
	// into the same slot never lose an update.
	if err := s.inventoryRepo.UpsertIncrementTx(ctx, tx, task.WarehouseID, req.LocationID, task.ProductID, req.Quantity); err != nil {
		logger.Error("[Complete] inventory increment failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	refType := constant.ReferencePutawayTask
	refID := strconv.FormatUint(taskID, 10)
	outMemo := fmt.Sprintf("putaway from location %s", staging.Code)
	if err := s.inventoryRepo.AppendLedgerTx(ctx, tx, &model.LedgerEntry{
		ID:            uuid.NewString(),
		CustomerID:    task.CustomerID,
		WarehouseID:   task.WarehouseID,
		ProductID:     task.ProductID,
		MovementType:  constant.MovementTransfer,
		Direction:     constant.DirectionOut,
		Quantity:      req.Quantity,
		ReferenceType: &refType,
		ReferenceID:   &refID,
		Memo:          &outMemo,
		ActorID:       actorID,
		CreatedAt:     now,
	}); err != nil {
		logger.Error("[Complete] ledger append failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	inMemo := fmt.Sprintf("putaway to location %s", location.Code)
	if err := s.inventoryRepo.AppendLedgerTx(ctx, tx, &model.LedgerEntry{
		ID:            uuid.NewString(),
		CustomerID:    task.CustomerID,
		WarehouseID:   task.WarehouseID,
		ProductID:     task.ProductID,
		MovementType:  constant.MovementTransfer,
		Direction:     constant.DirectionIn,
		Quantity:      req.Quantity,
		ReferenceType: &refType,
		ReferenceID:   &refID,
		Memo:          &inMemo,
		ActorID:       actorID,
		CreatedAt:     now,
	}); err != nil {
		logger.Error("[Complete] ledger append failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Complete] commit tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return nil
}

func (s *putawayAppImpl) checkLocation(ctx context.Context, warehouseID, locationID uint64) error {
	location, err := s.warehouseRepo.GetLocationByID(ctx, locationID)
	if err != nil {
		logger.Error("[checkLocation] get location failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if location == nil {
		return errors.NewValidationError(errors.FieldError{Field: "location_id", Message: "location does not exist"})
	}
	if location.WarehouseID != warehouseID {
		return errors.NewValidationError(errors.FieldError{Field: "location_id", Message: "location belongs to another warehouse"})
	}
	return nil
}
