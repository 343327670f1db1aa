package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anhlog/wms/cmd/config"
	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	inboundrepo "github.com/anhlog/wms/repository/inbound"
	inventoryrepo "github.com/anhlog/wms/repository/inventory"
	redisrepo "github.com/anhlog/wms/repository/redis"
	warehouserepo "github.com/anhlog/wms/repository/warehouse"
	"github.com/anhlog/wms/thirdparty/rabbitmq"
	"github.com/anhlog/wms/utils/errors"
	"github.com/anhlog/wms/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ReportApp interface {
	// LowStock reports products at or below their reorder point, with the
	// value of remaining stock. Snapshots are cached briefly in Redis.
	LowStock(ctx context.Context, warehouseID uint64) (*model.LowStockReport, error)
	DelayedReceipts(ctx context.Context) ([]model.DelayedReceipt, error)
	Divergences(ctx context.Context, warehouseID uint64) ([]model.LedgerDivergence, error)
	// Sweep runs every check across all warehouses and publishes an alert
	// message per finding, rate-limited by a Redis cooldown key.
	Sweep(ctx context.Context) error
}

type reportAppImpl struct {
	config        *config.Config
	inventoryRepo inventoryrepo.InventoryRepository
	inboundRepo   inboundrepo.InboundRepository
	warehouseRepo warehouserepo.WarehouseRepository
	redisRepo     redisrepo.Repository
	publisher     *rabbitmq.Publisher
}

func NewReportApp(cfg *config.Config, inventoryRepo inventoryrepo.InventoryRepository, inboundRepo inboundrepo.InboundRepository, warehouseRepo warehouserepo.WarehouseRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) ReportApp {
	return &reportAppImpl{
		config:        cfg,
		inventoryRepo: inventoryRepo,
		inboundRepo:   inboundRepo,
		warehouseRepo: warehouseRepo,
		redisRepo:     redisRepo,
		publisher:     publisher,
	}
}

func (s *reportAppImpl) LowStock(ctx context.Context, warehouseID uint64) (*model.LowStockReport, error) {
	cacheKey := fmt.Sprintf("report:low_stock:%d", warehouseID)
	if cached, err := s.redisRepo.Get(ctx, cacheKey); err == nil && cached != "" {
		var report model.LowStockReport
		if err := json.Unmarshal([]byte(cached), &report); err == nil {
			return &report, nil
		}
	}

	items, err := s.inventoryRepo.ListLowStock(ctx, warehouseID)
	if err != nil {
		logger.Error("[LowStock] query failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	for i := range items {
		available := items[i].Available
		if available < 0 {
			available = 0
		}
		items[i].StockValue = items[i].UnitCost.Mul(decimal.NewFromInt(available))
	}

	report := &model.LowStockReport{
		WarehouseID: warehouseID,
		Items:       items,
		GeneratedAt: time.Now(),
	}

	if raw, err := json.Marshal(report); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, cacheKey, string(raw), s.config.Alert.ReportCacheTTL); err != nil {
			logger.Warn("[LowStock] cache write failed", zap.String("error", err.Error()))
		}
	}

	return report, nil
}

func (s *reportAppImpl) DelayedReceipts(ctx context.Context) ([]model.DelayedReceipt, error) {
	cutoff := time.Now().Add(-s.config.Alert.InboundDelay)
	receipts, err := s.inboundRepo.ListOpenOlderThan(ctx, cutoff)
	if err != nil {
		logger.Error("[DelayedReceipts] query failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return receipts, nil
}

func (s *reportAppImpl) Divergences(ctx context.Context, warehouseID uint64) ([]model.LedgerDivergence, error) {
	rows, err := s.inventoryRepo.ListDivergences(ctx, warehouseID)
	if err != nil {
		logger.Error("[Divergences] query failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}

func (s *reportAppImpl) Sweep(ctx context.Context) error {
	warehouses, err := s.warehouseRepo.ListWarehouses(ctx)
	if err != nil {
		logger.Error("[Sweep] list warehouses failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	for _, wh := range warehouses {
		if wh.Status != constant.WarehouseStatusActive {
			continue
		}

		items, err := s.inventoryRepo.ListLowStock(ctx, wh.ID)
		if err != nil {
			logger.Error("[Sweep] low stock query failed", zap.Uint64("warehouse_id", wh.ID), zap.String("error", err.Error()))
			continue
		}
		for _, item := range items {
			productID := item.ProductID
			s.raise(ctx, rabbitmq.StockAlertMessage{
				Type:        constant.AlertLowStock,
				WarehouseID: wh.ID,
				ProductID:   &productID,
				Message:     fmt.Sprintf("sku %s available %d at or below reorder point %d", item.SKU, item.Available, item.ReorderPoint),
				DetectedAt:  time.Now(),
			}, fmt.Sprintf("alert:cooldown:%s:%d:%d", constant.AlertLowStock, wh.ID, item.ProductID))
		}

		divergences, err := s.inventoryRepo.ListDivergences(ctx, wh.ID)
		if err != nil {
			logger.Error("[Sweep] divergence query failed", zap.Uint64("warehouse_id", wh.ID), zap.String("error", err.Error()))
			continue
		}
		for _, div := range divergences {
			productID := div.ProductID
			s.raise(ctx, rabbitmq.StockAlertMessage{
				Type:        constant.AlertLedgerDivergence,
				WarehouseID: wh.ID,
				ProductID:   &productID,
				Message:     fmt.Sprintf("ledger balance %d does not match on-hand %d", div.LedgerBalance, div.OnHand),
				DetectedAt:  time.Now(),
			}, fmt.Sprintf("alert:cooldown:%s:%d:%d", constant.AlertLedgerDivergence, wh.ID, div.ProductID))
		}
	}

	delayed, err := s.DelayedReceipts(ctx)
	if err != nil {
		return err
	}
	for _, receipt := range delayed {
		receiptID := receipt.ReceiptID
		s.raise(ctx, rabbitmq.StockAlertMessage{
			Type:        constant.AlertInboundDelay,
			WarehouseID: receipt.WarehouseID,
			ReceiptID:   &receiptID,
			Message:     fmt.Sprintf("receipt %s still open since %s", receipt.ReceiptNo, receipt.CreatedAt.Format(time.RFC3339)),
			DetectedAt:  time.Now(),
		}, fmt.Sprintf("alert:cooldown:%s:%d", constant.AlertInboundDelay, receipt.ReceiptID))
	}

	return nil
}

func (s *reportAppImpl) raise(ctx context.Context, msg rabbitmq.StockAlertMessage, cooldownKey string) {
	claimed, err := s.redisRepo.SetCooldown(ctx, cooldownKey, s.config.Alert.Cooldown)
	if err != nil {
		logger.Warn("[Sweep] cooldown check failed", zap.String("error", err.Error()))
	}
	if !claimed {
		return
	}

	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishStockAlert(msg); err != nil {
		logger.Error("[Sweep] publish alert failed", zap.String("error", err.Error()))
		// Free the cooldown so the next sweep retries the publish.
		_ = s.redisRepo.Delete(ctx, cooldownKey)
	}
}
