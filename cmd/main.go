package main

import (
	"context"
	"net/http"
	"time"

	alertapp "github.com/anhlog/wms/application/alert"
	customerapp "github.com/anhlog/wms/application/customer"
	inboundapp "github.com/anhlog/wms/application/inbound"
	inventoryapp "github.com/anhlog/wms/application/inventory"
	orderapp "github.com/anhlog/wms/application/order"
	productapp "github.com/anhlog/wms/application/product"
	putawayapp "github.com/anhlog/wms/application/putaway"
	reportapp "github.com/anhlog/wms/application/report"
	warehouseapp "github.com/anhlog/wms/application/warehouse"
	"github.com/anhlog/wms/cmd/config"
	redisclient "github.com/anhlog/wms/cmd/redis"
	_ "github.com/anhlog/wms/docs"
	alertRepo "github.com/anhlog/wms/repository/alert"
	customerRepo "github.com/anhlog/wms/repository/customer"
	inboundRepo "github.com/anhlog/wms/repository/inbound"
	inventoryRepo "github.com/anhlog/wms/repository/inventory"
	orderRepo "github.com/anhlog/wms/repository/order"
	productRepo "github.com/anhlog/wms/repository/product"
	putawayRepo "github.com/anhlog/wms/repository/putaway"
	redisRepo "github.com/anhlog/wms/repository/redis"
	txRepo "github.com/anhlog/wms/repository/tx"
	warehouseRepo "github.com/anhlog/wms/repository/warehouse"
	"github.com/anhlog/wms/thirdparty/rabbitmq"
	"github.com/anhlog/wms/transport"
	"github.com/anhlog/wms/utils/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title ANH WMS API
// @version 1.0
// @description Warehouse management API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("pgx", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Connect to RabbitMQ
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.APIBaseURL, cfg.Auth.InternalAPIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	PutawayRepo := putawayRepo.NewPutawayRepository(db)
	InboundRepo := inboundRepo.NewInboundRepository(db)
	WarehouseRepo := warehouseRepo.NewWarehouseRepository(db)
	CustomerRepo := customerRepo.NewCustomerRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	AlertRepo := alertRepo.NewAlertRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	OrderApp := orderapp.NewOrderApp(OrderRepo, publisher)
	InventoryApp := inventoryapp.NewInventoryApp(TxRepo, InventoryRepo)
	PutawayApp := putawayapp.NewPutawayApp(TxRepo, PutawayRepo, InventoryRepo, WarehouseRepo)
	InboundApp := inboundapp.NewInboundApp(TxRepo, InboundRepo, InventoryRepo, PutawayRepo, WarehouseRepo)
	WarehouseApp := warehouseapp.NewWarehouseApp(WarehouseRepo, InventoryRepo)
	CustomerApp := customerapp.NewCustomerApp(CustomerRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	ReportApp := reportapp.NewReportApp(cfg, InventoryRepo, InboundRepo, WarehouseRepo, RedisRepo, publisher)
	AlertApp := alertapp.NewAlertApp(AlertRepo)

	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Consume alert messages and persist them through the internal API
	go func() {
		if err := consumer.Start(rootCtx); err != nil {
			logger.Error("alert consumer stopped", zap.Error(err))
		}
	}()

	// Periodic alert sweep across all warehouses
	go func() {
		ticker := time.NewTicker(cfg.Alert.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-rootCtx.Done():
				return
			case <-ticker.C:
				if err := ReportApp.Sweep(rootCtx); err != nil {
					logger.Error("alert sweep failed", zap.Error(err))
				}
			}
		}
	}()

	httpTransport := transport.NewTransport(&transport.RestHandler{
		OrderApp:     OrderApp,
		InventoryApp: InventoryApp,
		PutawayApp:   PutawayApp,
		InboundApp:   InboundApp,
		WarehouseApp: WarehouseApp,
		CustomerApp:  CustomerApp,
		ProductApp:   ProductApp,
		ReportApp:    ReportApp,
		AlertApp:     AlertApp,
	}, cfg.Auth.JWTSecret, cfg.Auth.InternalAPIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
