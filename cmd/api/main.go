package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prasety/kasirku-api/internal/application/service"
	"github.com/prasety/kasirku-api/internal/config"
	"github.com/prasety/kasirku-api/internal/domain/entity"
	"github.com/prasety/kasirku-api/internal/infrastructure/database"
	"github.com/prasety/kasirku-api/internal/infrastructure/repository"
	"github.com/prasety/kasirku-api/internal/infrastructure/snapshot"
	"github.com/prasety/kasirku-api/internal/presentation/http/handler"
	"github.com/prasety/kasirku-api/internal/presentation/http/routes"
	"github.com/prasety/kasirku-api/pkg/printer"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Connect to the cart snapshot store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	snapshotStore := snapshot.NewRedisStore(redisClient, &cfg.Snapshot)

	// Initialize repositories
	transactionRepo := repository.NewTransactionRepository(db)
	itemRepo := repository.NewItemRepository(db)
	earningRepo := repository.NewEarningRepository(db)

	// Initialize services
	cartService := service.NewCartService(snapshotStore)
	paymentService := service.NewPaymentService(cartService)
	transactionService := service.NewTransactionService(transactionRepo, earningRepo, cartService)
	itemService := service.NewItemService(itemRepo, cartService)
	earningService := service.NewEarningService(earningRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	receiptHeader := entity.ReceiptHeader{
		StoreName: cfg.Receipt.StoreName,
		Tagline:   cfg.Receipt.Tagline,
	}
	printerService := service.NewPrinterService(thermalPrinter, transactionRepo, receiptHeader, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Cart:        handler.NewCartHandler(cartService),
		Payment:     handler.NewPaymentHandler(paymentService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Item:        handler.NewItemHandler(itemService),
		Earning:     handler.NewEarningHandler(earningService),
		Printer:     handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s", cfg.App.Env)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Warning: server shutdown: %v", err)
	}

	// Persist every register's cart one last time before exit.
	cartService.Flush(shutdownCtx)

	if err := redisClient.Close(); err != nil {
		log.Printf("Warning: closing redis client: %v", err)
	}

	log.Println("Server stopped")
}
