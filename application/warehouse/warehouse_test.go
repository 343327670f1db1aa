package warehouse_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	appwarehouse "github.com/anhlog/wms/application/warehouse"
	"github.com/anhlog/wms/constant"
	inventorymocks "github.com/anhlog/wms/mocks/repository/inventory"
	warehousemocks "github.com/anhlog/wms/mocks/repository/warehouse"
	"github.com/anhlog/wms/model"
	cerr "github.com/anhlog/wms/utils/errors"
)

func TestWarehouseApp_DeactivateWarehouse(t *testing.T) {
	warehouse := &model.Warehouse{ID: 2, Code: "WH-02", Name: "East", Status: constant.WarehouseStatusActive}

	tests := []struct {
		name     string
		mockCall func(wr *warehousemocks.WarehouseRepository, ir *inventorymocks.InventoryRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: empty warehouse deactivates",
			mockCall: func(wr *warehousemocks.WarehouseRepository, ir *inventorymocks.InventoryRepository) {
				wr.On("GetWarehouseByID", mock.Anything, uint64(2)).Return(warehouse, nil).Once()
				ir.On("CheckWarehouseStock", mock.Anything, uint64(2)).Return(int64(0), nil).Once()
				wr.On("UpdateWarehouseStatus", mock.Anything, uint64(2), constant.WarehouseStatusInactive).Return(nil).Once()
			},
		},
		{
			name: "error: warehouse still holds stock",
			mockCall: func(wr *warehousemocks.WarehouseRepository, ir *inventorymocks.InventoryRepository) {
				wr.On("GetWarehouseByID", mock.Anything, uint64(2)).Return(warehouse, nil).Once()
				ir.On("CheckWarehouseStock", mock.Anything, uint64(2)).Return(int64(37), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrWarehouseHasStock,
		},
		{
			name: "error: warehouse not found",
			mockCall: func(wr *warehousemocks.WarehouseRepository, ir *inventorymocks.InventoryRepository) {
				wr.On("GetWarehouseByID", mock.Anything, uint64(2)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			warehouseRepo := warehousemocks.NewWarehouseRepository(t)
			inventoryRepo := inventorymocks.NewInventoryRepository(t)
			tt.mockCall(warehouseRepo, inventoryRepo)

			app := appwarehouse.NewWarehouseApp(warehouseRepo, inventoryRepo)

			err := app.DeactivateWarehouse(context.Background(), 2)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeactivateWarehouse() error = %v, wantErr %v", err, tt.wantErr)
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

func TestWarehouseApp_CreateWarehouse_AddsStagingLocation(t *testing.T) {
	warehouseRepo := warehousemocks.NewWarehouseRepository(t)
	inventoryRepo := inventorymocks.NewInventoryRepository(t)

	warehouseRepo.On("InsertWarehouse", mock.Anything, mock.MatchedBy(func(wh *model.Warehouse) bool {
		return wh.Code == "WH-03" && wh.Status == constant.WarehouseStatusActive
	})).Return(uint64(3), nil).Once()

	warehouseRepo.On("InsertLocation", mock.Anything, mock.MatchedBy(func(loc *model.Location) bool {
		return loc.WarehouseID == 3 && loc.Code == "STAGING" && loc.IsStaging
	})).Return(uint64(31), nil).Once()

	app := appwarehouse.NewWarehouseApp(warehouseRepo, inventoryRepo)

	got, err := app.CreateWarehouse(context.Background(), &model.CreateWarehouseRequest{Code: "WH-03", Name: "North"})
	if err != nil {
		t.Fatalf("CreateWarehouse() error = %v", err)
	}
	if got.ID != 3 {
		t.Fatalf("CreateWarehouse() ID = %d, want 3", got.ID)
	}
}
