package inventory_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appinventory "github.com/anhlog/wms/application/inventory"
	"github.com/anhlog/wms/constant"
	inventorymocks "github.com/anhlog/wms/mocks/repository/inventory"
	txmocks "github.com/anhlog/wms/mocks/repository/tx"
	"github.com/anhlog/wms/model"
	cerr "github.com/anhlog/wms/utils/errors"
)

func TestInventoryApp_RecordMovement(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		inventoryRepo *inventorymocks.InventoryRepository
	}
	type args struct {
		ctx     context.Context
		actorID uint64
		req     *model.MovementRequest
	}

	idemKey := "adjust-2024-08-001"

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: inbound increments stock and appends ledger",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				actorID: 7,
				req: &model.MovementRequest{
					CustomerID:   1,
					WarehouseID:  2,
					ProductID:    3,
					LocationID:   4,
					MovementType: constant.MovementInbound,
					Quantity:     10,
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("UpsertIncrementTx", mock.Anything, tx, uint64(2), uint64(4), uint64(3), int64(10)).Return(nil).Once()

				f.inventoryRepo.On("AppendLedgerTx", mock.Anything, tx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
					return e.MovementType == constant.MovementInbound &&
						e.Direction == constant.DirectionIn &&
						e.Quantity == 10 &&
						e.ActorID == 7 &&
						e.ID != ""
				})).Return(nil).Once()
			},
		},
		{
			name: "success: transfer without direction is ledger-only",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				actorID: 7,
				req: &model.MovementRequest{
					CustomerID:   1,
					WarehouseID:  2,
					ProductID:    3,
					MovementType: constant.MovementTransfer,
					Quantity:     5,
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				// no increment, no decrement
				f.inventoryRepo.On("AppendLedgerTx", mock.Anything, tx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
					return e.MovementType == constant.MovementTransfer && e.Direction == ""
				})).Return(nil).Once()
			},
		},
		{
			name: "error: outbound with insufficient stock rolls back",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				actorID: 7,
				req: &model.MovementRequest{
					CustomerID:   1,
					WarehouseID:  2,
					ProductID:    3,
					LocationID:   4,
					MovementType: constant.MovementOutbound,
					Quantity:     100,
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("DecrementTx", mock.Anything, tx, uint64(2), uint64(4), uint64(3), int64(100)).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: duplicate idempotency key rolls back",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				actorID: 7,
				req: &model.MovementRequest{
					CustomerID:     1,
					WarehouseID:    2,
					ProductID:      3,
					LocationID:     4,
					MovementType:   constant.MovementAdjustmentPlus,
					Quantity:       1,
					IdempotencyKey: &idemKey,
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("UpsertIncrementTx", mock.Anything, tx, uint64(2), uint64(4), uint64(3), int64(1)).Return(nil).Once()
				f.inventoryRepo.On("AppendLedgerTx", mock.Anything, tx, mock.Anything).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateMovement,
		},
		{
			name: "error: BeginTx fails",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				actorID: 7,
				req: &model.MovementRequest{
					CustomerID:   1,
					WarehouseID:  2,
					ProductID:    3,
					LocationID:   4,
					MovementType: constant.MovementInbound,
					Quantity:     1,
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appinventory.NewInventoryApp(tt.fields.txRepo, tt.fields.inventoryRepo)

			got, err := app.RecordMovement(tt.args.ctx, tt.args.actorID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RecordMovement() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got == nil || got.ID == "" {
				t.Fatal("RecordMovement() returned entry without an ID")
			}
		})
	}
}

func TestInventoryApp_RecordMovement_MissingLocation(t *testing.T) {
	app := appinventory.NewInventoryApp(txmocks.NewTxRepository(t), inventorymocks.NewInventoryRepository(t))

	_, err := app.RecordMovement(context.Background(), 1, &model.MovementRequest{
		CustomerID:   1,
		WarehouseID:  2,
		ProductID:    3,
		MovementType: constant.MovementInbound,
		Quantity:     5,
	})

	var ve cerr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want ValidationError", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "location_id" {
		t.Fatalf("fields = %v, want single location_id error", ve.Fields)
	}
}
