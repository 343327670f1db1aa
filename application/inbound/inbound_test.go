package inbound_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appinbound "github.com/anhlog/wms/application/inbound"
	"github.com/anhlog/wms/constant"
	inboundmocks "github.com/anhlog/wms/mocks/repository/inbound"
	inventorymocks "github.com/anhlog/wms/mocks/repository/inventory"
	putawaymocks "github.com/anhlog/wms/mocks/repository/putaway"
	txmocks "github.com/anhlog/wms/mocks/repository/tx"
	warehousemocks "github.com/anhlog/wms/mocks/repository/warehouse"
	"github.com/anhlog/wms/model"
	cerr "github.com/anhlog/wms/utils/errors"
)

type inboundMocks struct {
	txRepo        *txmocks.TxRepository
	inboundRepo   *inboundmocks.InboundRepository
	inventoryRepo *inventorymocks.InventoryRepository
	putawayRepo   *putawaymocks.PutawayRepository
	warehouseRepo *warehousemocks.WarehouseRepository
}

func newInboundMocks(t *testing.T) inboundMocks {
	return inboundMocks{
		txRepo:        txmocks.NewTxRepository(t),
		inboundRepo:   inboundmocks.NewInboundRepository(t),
		inventoryRepo: inventorymocks.NewInventoryRepository(t),
		putawayRepo:   putawaymocks.NewPutawayRepository(t),
		warehouseRepo: warehousemocks.NewWarehouseRepository(t),
	}
}

func (m inboundMocks) app() appinbound.InboundApp {
	return appinbound.NewInboundApp(m.txRepo, m.inboundRepo, m.inventoryRepo, m.putawayRepo, m.warehouseRepo)
}

func TestInboundApp_Receive(t *testing.T) {
	openReceipt := &model.InboundReceipt{
		ID:          20,
		CustomerID:  1,
		WarehouseID: 2,
		ReceiptNo:   "GR-0020",
		Status:      constant.ReceiptStatusOpen,
	}
	staging := &model.Location{ID: 30, WarehouseID: 2, Code: "STAGING", IsStaging: true}
	lines := []model.ReceiptLine{
		{ID: 100, ReceiptID: 20, ProductID: 3, Quantity: 5},
		{ID: 101, ReceiptID: 20, ProductID: 4, Quantity: 2},
	}

	t.Run("success: one ledger entry, staging increment and task per line", func(t *testing.T) {
		m := newInboundMocks(t)

		m.inboundRepo.On("GetLines", mock.Anything, uint64(20)).Return(lines, nil).Once()

		tx := &sqlx.Tx{}
		m.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		m.txRepo.On("CommitTx", tx).Return(nil).Once()

		m.inboundRepo.On("GetReceiptByIDTx", mock.Anything, tx, uint64(20)).Return(openReceipt, nil).Once()
		m.warehouseRepo.On("GetStagingLocation", mock.Anything, uint64(2)).Return(staging, nil).Once()

		m.inventoryRepo.On("AppendLedgerTx", mock.Anything, tx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
			return e.MovementType == constant.MovementInbound &&
				e.Direction == constant.DirectionIn &&
				e.IdempotencyKey != nil && *e.IdempotencyKey == "inbound-20-line-100"
		})).Return(nil).Once()
		m.inventoryRepo.On("AppendLedgerTx", mock.Anything, tx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
			return e.IdempotencyKey != nil && *e.IdempotencyKey == "inbound-20-line-101"
		})).Return(nil).Once()

		m.inventoryRepo.On("UpsertIncrementTx", mock.Anything, tx, uint64(2), uint64(30), uint64(3), int64(5)).Return(nil).Once()
		m.inventoryRepo.On("UpsertIncrementTx", mock.Anything, tx, uint64(2), uint64(30), uint64(4), int64(2)).Return(nil).Once()

		m.putawayRepo.On("InsertTaskTx", mock.Anything, tx, mock.MatchedBy(func(task *model.PutawayTask) bool {
			return task.Status == constant.PutawayStatusPending && task.ProductID == 3 && task.Quantity == 5
		})).Return(uint64(41), nil).Once()
		m.putawayRepo.On("InsertTaskTx", mock.Anything, tx, mock.MatchedBy(func(task *model.PutawayTask) bool {
			return task.Status == constant.PutawayStatusPending && task.ProductID == 4 && task.Quantity == 2
		})).Return(uint64(42), nil).Once()

		m.inboundRepo.On("MarkReceivedTx", mock.Anything, tx, uint64(20), mock.Anything).Return(nil).Once()

		got, err := m.app().Receive(context.Background(), 20, 9)
		if err != nil {
			t.Fatalf("Receive() error = %v", err)
		}
		if got.ReceiptID != 20 {
			t.Fatalf("ReceiptID = %d, want 20", got.ReceiptID)
		}
		if len(got.TaskIDs) != 2 || got.TaskIDs[0] != 41 || got.TaskIDs[1] != 42 {
			t.Fatalf("TaskIDs = %v, want [41 42]", got.TaskIDs)
		}
	})

	t.Run("error: receiving twice is a conflict", func(t *testing.T) {
		m := newInboundMocks(t)

		m.inboundRepo.On("GetLines", mock.Anything, uint64(20)).Return(lines, nil).Once()

		tx := &sqlx.Tx{}
		m.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		m.txRepo.On("RollbackTx", tx).Return(nil).Once()

		received := *openReceipt
		received.Status = constant.ReceiptStatusReceived
		m.inboundRepo.On("GetReceiptByIDTx", mock.Anything, tx, uint64(20)).Return(&received, nil).Once()

		_, err := m.app().Receive(context.Background(), 20, 9)

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrReceiptAlreadyReceived] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrReceiptAlreadyReceived])
		}
	})

	t.Run("error: task insert failure rolls the whole receipt back", func(t *testing.T) {
		m := newInboundMocks(t)

		m.inboundRepo.On("GetLines", mock.Anything, uint64(20)).Return(lines[:1], nil).Once()

		tx := &sqlx.Tx{}
		m.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		// no CommitTx expectation
		m.txRepo.On("RollbackTx", tx).Return(nil).Once()

		m.inboundRepo.On("GetReceiptByIDTx", mock.Anything, tx, uint64(20)).Return(openReceipt, nil).Once()
		m.warehouseRepo.On("GetStagingLocation", mock.Anything, uint64(2)).Return(staging, nil).Once()

		m.inventoryRepo.On("AppendLedgerTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
		m.inventoryRepo.On("UpsertIncrementTx", mock.Anything, tx, uint64(2), uint64(30), uint64(3), int64(5)).Return(nil).Once()
		m.putawayRepo.On("InsertTaskTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("db error")).Once()

		_, err := m.app().Receive(context.Background(), 20, 9)

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInternal])
		}
	})
}

func TestInboundApp_CreateReceipt_Validation(t *testing.T) {
	t.Run("error: no lines", func(t *testing.T) {
		m := newInboundMocks(t)

		_, err := m.app().CreateReceipt(context.Background(), &model.CreateReceiptRequest{
			CustomerID:  1,
			WarehouseID: 2,
			ReceiptNo:   "GR-0021",
			Lines:       []model.ReceiptLineRequest{},
		})

		var ve cerr.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("error type = %T, want ValidationError", err)
		}
	})

	t.Run("error: inactive warehouse", func(t *testing.T) {
		m := newInboundMocks(t)

		m.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(2)).Return(&model.Warehouse{
			ID:     2,
			Code:   "WH-02",
			Status: constant.WarehouseStatusInactive,
		}, nil).Once()

		_, err := m.app().CreateReceipt(context.Background(), &model.CreateReceiptRequest{
			CustomerID:  1,
			WarehouseID: 2,
			ReceiptNo:   "GR-0022",
			Lines:       []model.ReceiptLineRequest{{ProductID: 3, Quantity: 5}},
		})

		var ve cerr.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("error type = %T, want ValidationError", err)
		}
	})
}
