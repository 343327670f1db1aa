package report_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	appreport "github.com/anhlog/wms/application/report"
	"github.com/anhlog/wms/cmd/config"
	"github.com/anhlog/wms/constant"
	inboundmocks "github.com/anhlog/wms/mocks/repository/inbound"
	inventorymocks "github.com/anhlog/wms/mocks/repository/inventory"
	redismocks "github.com/anhlog/wms/mocks/repository/redis"
	warehousemocks "github.com/anhlog/wms/mocks/repository/warehouse"
	"github.com/anhlog/wms/model"
)

func testConfig() *config.Config {
	return &config.Config{
		Alert: config.AlertConfig{
			SweepInterval:  time.Minute,
			InboundDelay:   48 * time.Hour,
			Cooldown:       6 * time.Hour,
			ReportCacheTTL: time.Minute,
		},
	}
}

func TestReportApp_LowStock(t *testing.T) {
	t.Run("cache miss computes stock value and caches", func(t *testing.T) {
		inventoryRepo := inventorymocks.NewInventoryRepository(t)
		inboundRepo := inboundmocks.NewInboundRepository(t)
		warehouseRepo := warehousemocks.NewWarehouseRepository(t)
		redisRepo := redismocks.NewRepository(t)

		redisRepo.On("Get", mock.Anything, "report:low_stock:2").Return("", errors.New("redis: nil")).Once()

		inventoryRepo.On("ListLowStock", mock.Anything, uint64(2)).Return([]model.LowStockItem{
			{WarehouseID: 2, ProductID: 3, SKU: "SKU-3", Available: 4, ReorderPoint: 10, UnitCost: decimal.NewFromFloat(2.50)},
			{WarehouseID: 2, ProductID: 5, SKU: "SKU-5", Available: -1, ReorderPoint: 1, UnitCost: decimal.NewFromInt(9)},
		}, nil).Once()

		redisRepo.On("SetWithTTL", mock.Anything, "report:low_stock:2", mock.Anything, time.Minute).Return(nil).Once()

		app := appreport.NewReportApp(testConfig(), inventoryRepo, inboundRepo, warehouseRepo, redisRepo, nil)

		got, err := app.LowStock(context.Background(), 2)
		if err != nil {
			t.Fatalf("LowStock() error = %v", err)
		}
		if len(got.Items) != 2 {
			t.Fatalf("items = %d, want 2", len(got.Items))
		}
		if !got.Items[0].StockValue.Equal(decimal.NewFromInt(10)) {
			t.Fatalf("stock value = %s, want 10", got.Items[0].StockValue)
		}
		// negative availability values at zero, never negative
		if !got.Items[1].StockValue.Equal(decimal.Zero) {
			t.Fatalf("stock value = %s, want 0", got.Items[1].StockValue)
		}
	})

	t.Run("cache hit skips the query", func(t *testing.T) {
		inventoryRepo := inventorymocks.NewInventoryRepository(t)
		inboundRepo := inboundmocks.NewInboundRepository(t)
		warehouseRepo := warehousemocks.NewWarehouseRepository(t)
		redisRepo := redismocks.NewRepository(t)

		cached, _ := json.Marshal(&model.LowStockReport{WarehouseID: 2, GeneratedAt: time.Now()})
		redisRepo.On("Get", mock.Anything, "report:low_stock:2").Return(string(cached), nil).Once()

		app := appreport.NewReportApp(testConfig(), inventoryRepo, inboundRepo, warehouseRepo, redisRepo, nil)

		got, err := app.LowStock(context.Background(), 2)
		if err != nil {
			t.Fatalf("LowStock() error = %v", err)
		}
		if got.WarehouseID != 2 {
			t.Fatalf("warehouse = %d, want 2", got.WarehouseID)
		}
	})
}

func TestReportApp_Sweep(t *testing.T) {
	inventoryRepo := inventorymocks.NewInventoryRepository(t)
	inboundRepo := inboundmocks.NewInboundRepository(t)
	warehouseRepo := warehousemocks.NewWarehouseRepository(t)
	redisRepo := redismocks.NewRepository(t)

	warehouseRepo.On("ListWarehouses", mock.Anything).Return([]model.Warehouse{
		{ID: 1, Code: "WH-01", Status: constant.WarehouseStatusActive},
		{ID: 2, Code: "WH-02", Status: constant.WarehouseStatusInactive},
	}, nil).Once()

	// only the active warehouse gets swept
	inventoryRepo.On("ListLowStock", mock.Anything, uint64(1)).Return([]model.LowStockItem{
		{WarehouseID: 1, ProductID: 3, SKU: "SKU-3", Available: 0, ReorderPoint: 5},
	}, nil).Once()
	inventoryRepo.On("ListDivergences", mock.Anything, uint64(1)).Return(nil, nil).Once()
	inboundRepo.On("ListOpenOlderThan", mock.Anything, mock.Anything).Return(nil, nil).Once()

	// the finding claims its cooldown key; a second sweep within the TTL
	// would get false here and stay silent
	redisRepo.On("SetCooldown", mock.Anything, "alert:cooldown:LOW_STOCK:1:3", 6*time.Hour).Return(true, nil).Once()

	app := appreport.NewReportApp(testConfig(), inventoryRepo, inboundRepo, warehouseRepo, redisRepo, nil)

	if err := app.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
}
