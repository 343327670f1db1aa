package putaway_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appinbound "github.com/anhlog/wms/application/inbound"
	appputaway "github.com/anhlog/wms/application/putaway"
	"github.com/anhlog/wms/constant"
	inboundmocks "github.com/anhlog/wms/mocks/repository/inbound"
	inventorymocks "github.com/anhlog/wms/mocks/repository/inventory"
	putawaymocks "github.com/anhlog/wms/mocks/repository/putaway"
	txmocks "github.com/anhlog/wms/mocks/repository/tx"
	warehousemocks "github.com/anhlog/wms/mocks/repository/warehouse"
	"github.com/anhlog/wms/model"
	cerr "github.com/anhlog/wms/utils/errors"
)

func pendingTask(id uint64) *model.PutawayTask {
	return &model.PutawayTask{
		ID:          id,
		CustomerID:  1,
		WarehouseID: 2,
		ProductID:   3,
		Status:      constant.PutawayStatusPending,
		Quantity:    10,
	}
}

func TestPutawayApp_Complete(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		putawayRepo   *putawaymocks.PutawayRepository
		inventoryRepo *inventorymocks.InventoryRepository
		warehouseRepo *warehousemocks.WarehouseRepository
	}
	type args struct {
		ctx     context.Context
		taskID  uint64
		req     *model.CompletePutawayRequest
		actorID uint64
	}

	location := &model.Location{ID: 4, WarehouseID: 2, Code: "A-01-01"}
	staging := &model.Location{ID: 7, WarehouseID: 2, Code: "STAGING", IsStaging: true}

	tests := []struct {
		name       string
		fields     fields
		args       args
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
		validation bool
	}{
		{
			name: "success: task update, staging-to-shelf move and ledger commit together",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				putawayRepo:   putawaymocks.NewPutawayRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				taskID:  11,
				req:     &model.CompletePutawayRequest{Quantity: 10, LocationID: 4},
				actorID: 9,
			},
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetLocationByID", mock.Anything, uint64(4)).Return(location, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.putawayRepo.On("GetTaskByIDTx", mock.Anything, tx, uint64(11)).Return(pendingTask(11), nil).Once()

				f.putawayRepo.On("CompleteTaskTx", mock.Anything, tx, mock.MatchedBy(func(item *model.CompletePutawayTxItem) bool {
					return item.TaskID == 11 && item.Quantity == 10 && item.LocationID == 4 && item.ProcessedBy == 9
				})).Return(nil).Once()

				f.warehouseRepo.On("GetStagingLocation", mock.Anything, uint64(2)).Return(staging, nil).Once()
				f.inventoryRepo.On("DecrementTx", mock.Anything, tx, uint64(2), uint64(7), uint64(3), int64(10)).Return(nil).Once()
				f.inventoryRepo.On("UpsertIncrementTx", mock.Anything, tx, uint64(2), uint64(4), uint64(3), int64(10)).Return(nil).Once()

				f.inventoryRepo.On("AppendLedgerTx", mock.Anything, tx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
					return e.MovementType == constant.MovementTransfer &&
						e.Direction == constant.DirectionOut &&
						e.Quantity == 10 &&
						e.ReferenceType != nil && *e.ReferenceType == constant.ReferencePutawayTask &&
						e.ReferenceID != nil && *e.ReferenceID == "11"
				})).Return(nil).Once()
				f.inventoryRepo.On("AppendLedgerTx", mock.Anything, tx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
					return e.MovementType == constant.MovementTransfer &&
						e.Direction == constant.DirectionIn &&
						e.Quantity == 10 &&
						e.ReferenceType != nil && *e.ReferenceType == constant.ReferencePutawayTask &&
						e.ReferenceID != nil && *e.ReferenceID == "11"
				})).Return(nil).Once()
			},
		},
		{
			name: "error: staging short of the completed quantity",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				putawayRepo:   putawaymocks.NewPutawayRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				taskID:  11,
				req:     &model.CompletePutawayRequest{Quantity: 10, LocationID: 4},
				actorID: 9,
			},
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetLocationByID", mock.Anything, uint64(4)).Return(location, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.putawayRepo.On("GetTaskByIDTx", mock.Anything, tx, uint64(11)).Return(pendingTask(11), nil).Once()
				f.putawayRepo.On("CompleteTaskTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.warehouseRepo.On("GetStagingLocation", mock.Anything, uint64(2)).Return(staging, nil).Once()
				f.inventoryRepo.On("DecrementTx", mock.Anything, tx, uint64(2), uint64(7), uint64(3), int64(10)).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: ledger append failure rolls the whole completion back",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				putawayRepo:   putawaymocks.NewPutawayRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				taskID:  11,
				req:     &model.CompletePutawayRequest{Quantity: 10, LocationID: 4},
				actorID: 9,
			},
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetLocationByID", mock.Anything, uint64(4)).Return(location, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				// no CommitTx expectation: a commit after a failed append would
				// fail this test
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.putawayRepo.On("GetTaskByIDTx", mock.Anything, tx, uint64(11)).Return(pendingTask(11), nil).Once()
				f.putawayRepo.On("CompleteTaskTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.warehouseRepo.On("GetStagingLocation", mock.Anything, uint64(2)).Return(staging, nil).Once()
				f.inventoryRepo.On("DecrementTx", mock.Anything, tx, uint64(2), uint64(7), uint64(3), int64(10)).Return(nil).Once()
				f.inventoryRepo.On("UpsertIncrementTx", mock.Anything, tx, uint64(2), uint64(4), uint64(3), int64(10)).Return(nil).Once()
				f.inventoryRepo.On("AppendLedgerTx", mock.Anything, tx, mock.Anything).Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: task not found",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				putawayRepo:   putawaymocks.NewPutawayRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				taskID:  99,
				req:     &model.CompletePutawayRequest{Quantity: 10, LocationID: 4},
				actorID: 9,
			},
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetLocationByID", mock.Anything, uint64(4)).Return(location, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.putawayRepo.On("GetTaskByIDTx", mock.Anything, tx, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: completing twice is a conflict",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				putawayRepo:   putawaymocks.NewPutawayRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				taskID:  11,
				req:     &model.CompletePutawayRequest{Quantity: 10, LocationID: 4},
				actorID: 9,
			},
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetLocationByID", mock.Anything, uint64(4)).Return(location, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				done := pendingTask(11)
				done.Status = constant.PutawayStatusCompleted
				f.putawayRepo.On("GetTaskByIDTx", mock.Anything, tx, uint64(11)).Return(done, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrTaskAlreadyCompleted,
		},
		{
			name: "error: location in another warehouse",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				putawayRepo:   putawaymocks.NewPutawayRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				taskID:  11,
				req:     &model.CompletePutawayRequest{Quantity: 10, LocationID: 8},
				actorID: 9,
			},
			mockCall: func(f fields) {
				foreign := &model.Location{ID: 8, WarehouseID: 5, Code: "B-09-01"}
				f.warehouseRepo.On("GetLocationByID", mock.Anything, uint64(8)).Return(foreign, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.putawayRepo.On("GetTaskByIDTx", mock.Anything, tx, uint64(11)).Return(pendingTask(11), nil).Once()
			},
			wantErr:    true,
			validation: true,
		},
		{
			name: "error: zero quantity rejected before any repo call",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				putawayRepo:   putawaymocks.NewPutawayRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				taskID:  11,
				req:     &model.CompletePutawayRequest{Quantity: 0, LocationID: 4},
				actorID: 9,
			},
			mockCall:   nil,
			wantErr:    true,
			validation: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appputaway.NewPutawayApp(tt.fields.txRepo, tt.fields.putawayRepo, tt.fields.inventoryRepo, tt.fields.warehouseRepo)

			err := app.Complete(tt.args.ctx, tt.args.taskID, tt.args.req, tt.args.actorID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Complete() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			if tt.validation {
				var ve cerr.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("error type = %T, want ValidationError", err)
				}
				return
			}

			var ce cerr.CustomError
			if !errors.As(err, &ce) {
				t.Fatalf("error type = %T, want CustomError", err)
			}
			if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
				t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
			}
		})
	}
}

// Concurrent completions of distinct tasks into the same slot must neither
// lose an increment nor drop a ledger row.
func TestPutawayApp_Complete_ConcurrentTasks(t *testing.T) {
	const n = 8

	txRepo := txmocks.NewTxRepository(t)
	putawayRepo := putawaymocks.NewPutawayRepository(t)
	inventoryRepo := inventorymocks.NewInventoryRepository(t)
	warehouseRepo := warehousemocks.NewWarehouseRepository(t)

	location := &model.Location{ID: 4, WarehouseID: 2, Code: "A-01-01"}
	staging := &model.Location{ID: 7, WarehouseID: 2, Code: "STAGING", IsStaging: true}
	warehouseRepo.On("GetLocationByID", mock.Anything, uint64(4)).Return(location, nil)
	warehouseRepo.On("GetStagingLocation", mock.Anything, uint64(2)).Return(staging, nil)

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil)
	txRepo.On("CommitTx", tx).Return(nil)

	putawayRepo.On("GetTaskByIDTx", mock.Anything, tx, mock.AnythingOfType("uint64")).Return(
		func(ctx context.Context, tx *sqlx.Tx, taskID uint64) (*model.PutawayTask, error) {
			return pendingTask(taskID), nil
		})
	putawayRepo.On("CompleteTaskTx", mock.Anything, tx, mock.Anything).Return(nil)

	var mu sync.Mutex
	var onHand, stagingOut int64
	var ledgerRows int
	inventoryRepo.On("DecrementTx", mock.Anything, tx, uint64(2), uint64(7), uint64(3), mock.AnythingOfType("int64")).Run(func(args mock.Arguments) {
		mu.Lock()
		stagingOut += args.Get(5).(int64)
		mu.Unlock()
	}).Return(nil)
	inventoryRepo.On("UpsertIncrementTx", mock.Anything, tx, uint64(2), uint64(4), uint64(3), mock.AnythingOfType("int64")).Run(func(args mock.Arguments) {
		mu.Lock()
		onHand += args.Get(5).(int64)
		mu.Unlock()
	}).Return(nil)
	inventoryRepo.On("AppendLedgerTx", mock.Anything, tx, mock.Anything).Run(func(args mock.Arguments) {
		mu.Lock()
		ledgerRows++
		mu.Unlock()
	}).Return(nil)

	app := appputaway.NewPutawayApp(txRepo, putawayRepo, inventoryRepo, warehouseRepo)

	var wg sync.WaitGroup
	var total int64
	for i := 1; i <= n; i++ {
		qty := int64(i)
		total += qty
		wg.Add(1)
		go func(taskID uint64, qty int64) {
			defer wg.Done()
			if err := app.Complete(context.Background(), taskID, &model.CompletePutawayRequest{Quantity: qty, LocationID: 4}, 9); err != nil {
				t.Errorf("Complete(%d) error: %v", taskID, err)
			}
		}(uint64(i), qty)
	}
	wg.Wait()

	if onHand != total {
		t.Fatalf("on hand after %d completions = %d, want %d", n, onHand, total)
	}
	if stagingOut != total {
		t.Fatalf("staging decremented by %d, want %d", stagingOut, total)
	}
	if ledgerRows != 2*n {
		t.Fatalf("ledger rows = %d, want %d", ledgerRows, 2*n)
	}
}

// Receiving a line and putting it away must leave exactly the received
// quantity in the warehouse: staging drains to zero and the shelf holds it.
func TestPutawayApp_Complete_ReceiveThenCompleteNetsBalances(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	putawayRepo := putawaymocks.NewPutawayRepository(t)
	inventoryRepo := inventorymocks.NewInventoryRepository(t)
	warehouseRepo := warehousemocks.NewWarehouseRepository(t)
	inboundRepo := inboundmocks.NewInboundRepository(t)

	staging := &model.Location{ID: 7, WarehouseID: 2, Code: "STAGING", IsStaging: true}
	shelf := &model.Location{ID: 4, WarehouseID: 2, Code: "A-01-01"}
	warehouseRepo.On("GetStagingLocation", mock.Anything, uint64(2)).Return(staging, nil)
	warehouseRepo.On("GetLocationByID", mock.Anything, uint64(4)).Return(shelf, nil)

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil)
	txRepo.On("CommitTx", tx).Return(nil)

	balances := map[uint64]int64{}
	inventoryRepo.On("UpsertIncrementTx", mock.Anything, tx, uint64(2), mock.AnythingOfType("uint64"), uint64(3), mock.AnythingOfType("int64")).Run(func(args mock.Arguments) {
		balances[args.Get(3).(uint64)] += args.Get(5).(int64)
	}).Return(nil)
	inventoryRepo.On("DecrementTx", mock.Anything, tx, uint64(2), mock.AnythingOfType("uint64"), uint64(3), mock.AnythingOfType("int64")).Run(func(args mock.Arguments) {
		balances[args.Get(3).(uint64)] -= args.Get(5).(int64)
	}).Return(nil)
	inventoryRepo.On("AppendLedgerTx", mock.Anything, tx, mock.Anything).Return(nil)

	receipt := &model.InboundReceipt{ID: 20, CustomerID: 1, WarehouseID: 2, ReceiptNo: "GR-0020", Status: constant.ReceiptStatusOpen}
	inboundRepo.On("GetLines", mock.Anything, uint64(20)).Return([]model.ReceiptLine{
		{ID: 100, ReceiptID: 20, ProductID: 3, Quantity: 10},
	}, nil)
	inboundRepo.On("GetReceiptByIDTx", mock.Anything, tx, uint64(20)).Return(receipt, nil)
	inboundRepo.On("MarkReceivedTx", mock.Anything, tx, uint64(20), mock.Anything).Return(nil)
	putawayRepo.On("InsertTaskTx", mock.Anything, tx, mock.Anything).Return(uint64(41), nil)

	putawayRepo.On("GetTaskByIDTx", mock.Anything, tx, uint64(41)).Return(pendingTask(41), nil)
	putawayRepo.On("CompleteTaskTx", mock.Anything, tx, mock.Anything).Return(nil)

	inboundApp := appinbound.NewInboundApp(txRepo, inboundRepo, inventoryRepo, putawayRepo, warehouseRepo)
	putawayApp := appputaway.NewPutawayApp(txRepo, putawayRepo, inventoryRepo, warehouseRepo)

	resp, err := inboundApp.Receive(context.Background(), 20, 9)
	if err != nil {
		t.Fatalf("Receive() error = %v", err)
	}
	if len(resp.TaskIDs) != 1 || resp.TaskIDs[0] != 41 {
		t.Fatalf("task IDs = %v, want [41]", resp.TaskIDs)
	}

	if err := putawayApp.Complete(context.Background(), 41, &model.CompletePutawayRequest{Quantity: 10, LocationID: 4}, 9); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if balances[staging.ID] != 0 {
		t.Fatalf("staging balance = %d, want 0", balances[staging.ID])
	}
	if balances[shelf.ID] != 10 {
		t.Fatalf("shelf balance = %d, want 10", balances[shelf.ID])
	}
	var total int64
	for _, qty := range balances {
		total += qty
	}
	if total != 10 {
		t.Fatalf("warehouse total = %d, want 10", total)
	}
}
