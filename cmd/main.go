package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	availabilityapp "github.com/distromax/inventory-api/application/availability"
	inventoryapp "github.com/distromax/inventory-api/application/inventory"
	reservationapp "github.com/distromax/inventory-api/application/reservation"
	sweeperapp "github.com/distromax/inventory-api/application/sweeper"
	"github.com/distromax/inventory-api/cmd/config"
	redisclient "github.com/distromax/inventory-api/cmd/redis"
	_ "github.com/distromax/inventory-api/docs"
	auditRepo "github.com/distromax/inventory-api/repository/audit"
	inventoryRepo "github.com/distromax/inventory-api/repository/inventory"
	orderRepo "github.com/distromax/inventory-api/repository/order"
	redisRepo "github.com/distromax/inventory-api/repository/redis"
	reservationRepo "github.com/distromax/inventory-api/repository/reservation"
	txRepo "github.com/distromax/inventory-api/repository/tx"
	"github.com/distromax/inventory-api/scheduler"
	"github.com/distromax/inventory-api/thirdparty/rabbitmq"
	"github.com/distromax/inventory-api/transport"
	"github.com/distromax/inventory-api/utils/logger"
)

// @title Inventory Allocation API
// @version 1.0
// @description Inventory allocation and reservation-expiration engine
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
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
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

	// RabbitMQ publisher for reservation lifecycle events. Optional: the
	// engine degrades to log-only when the broker is not configured.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	ReservationRepo := reservationRepo.NewReservationRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	AuditRepo := auditRepo.NewAuditRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AvailabilityApp := availabilityapp.NewAvailabilityApp(InventoryRepo)
	ReservationApp := reservationapp.NewReservationApp(cfg, TxRepo, ReservationRepo, InventoryRepo, OrderRepo, AuditRepo, publisher)
	InventoryApp := inventoryapp.NewInventoryApp(TxRepo, InventoryRepo, AuditRepo)
	SweeperApp := sweeperapp.NewSweeperApp(cfg, TxRepo, ReservationRepo, InventoryRepo, OrderRepo, AuditRepo, publisher)

	// Background sweep scheduler
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweepScheduler := scheduler.New(cfg.Reservation.SweepInterval, cfg.Reservation.SweepLockTTL, SweeperApp, RedisRepo)
	sweepScheduler.Start(ctx)

	httpTransport := transport.NewTransport(transport.Deps{
		AvailabilityApp: AvailabilityApp,
		ReservationApp:  ReservationApp,
		InventoryApp:    InventoryApp,
		SweeperApp:      SweeperApp,
		JWTSecret:       cfg.Auth.JWTSecret,
		InternalAPIKey:  cfg.Auth.InternalAPIKey,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received, stopping server")
	cancel()
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
