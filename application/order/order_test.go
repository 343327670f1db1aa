package order_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	apporder "github.com/anhlog/wms/application/order"
	"github.com/anhlog/wms/constant"
	ordermocks "github.com/anhlog/wms/mocks/repository/order"
	"github.com/anhlog/wms/model"
	cerr "github.com/anhlog/wms/utils/errors"
)

// Publisher is nil in tests; UpdateStatus checks for nil before publishing.

func TestOrderApp_UpdateStatus(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}
	type args struct {
		ctx     context.Context
		orderID uint64
		next    constant.OrderStatus
	}

	orderIn := func(status constant.OrderStatus) *model.Order {
		return &model.Order{
			ID:          1,
			CustomerID:  10,
			WarehouseID: 2,
			OrderNo:     "SO-0001",
			Status:      status,
		}
	}

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: created to approved",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), orderID: 1, next: constant.OrderStatusApproved},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(1)).Return(orderIn(constant.OrderStatusCreated), nil).Once()
				f.orderRepo.On("UpdateOrderStatus", mock.Anything, uint64(1), constant.OrderStatusCreated, constant.OrderStatusApproved).Return(nil).Once()
			},
		},
		{
			name:   "success: re-asserting the current status writes nothing",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), orderID: 1, next: constant.OrderStatusPicked},
			mockCall: func(f fields) {
				// no UpdateOrderStatus expectation: a write here fails the test
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(1)).Return(orderIn(constant.OrderStatusPicked), nil).Once()
			},
		},
		{
			name:   "error: illegal transition",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), orderID: 1, next: constant.OrderStatusShipped},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(1)).Return(orderIn(constant.OrderStatusCreated), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderTransition,
		},
		{
			name:   "error: cancelled is terminal",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), orderID: 1, next: constant.OrderStatusCreated},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(1)).Return(orderIn(constant.OrderStatusCancelled), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderTransition,
		},
		{
			name:   "error: order not found",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), orderID: 77, next: constant.OrderStatusApproved},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(77)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: concurrent transition wins the guarded update",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), orderID: 1, next: constant.OrderStatusApproved},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(1)).Return(orderIn(constant.OrderStatusCreated), nil).Once()
				f.orderRepo.On("UpdateOrderStatus", mock.Anything, uint64(1), constant.OrderStatusCreated, constant.OrderStatusApproved).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apporder.NewOrderApp(tt.fields.orderRepo, nil)

			err := app.UpdateStatus(tt.args.ctx, tt.args.orderID, tt.args.next)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateStatus() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestOrderApp_CreateOrder(t *testing.T) {
	orderRepo := ordermocks.NewOrderRepository(t)
	orderRepo.On("InsertOrder", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
		return o.Status == constant.OrderStatusCreated && o.OrderNo == "SO-0002"
	})).Return(uint64(5), nil).Once()

	app := apporder.NewOrderApp(orderRepo, nil)
	got, err := app.CreateOrder(context.Background(), &model.CreateOrderRequest{
		CustomerID:  10,
		WarehouseID: 2,
		OrderNo:     "SO-0002",
	})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if got.ID != 5 {
		t.Fatalf("CreateOrder() ID = %d, want 5", got.ID)
	}
	if got.Status != constant.OrderStatusCreated {
		t.Fatalf("CreateOrder() status = %s, want %s", got.Status, constant.OrderStatusCreated)
	}
}
