package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/b2bcommerce/payment-method-service/internal/api"
	"github.com/b2bcommerce/payment-method-service/internal/config"
	"github.com/b2bcommerce/payment-method-service/internal/gateway"
	"github.com/b2bcommerce/payment-method-service/internal/repository"
	"github.com/b2bcommerce/payment-method-service/internal/service"
	"github.com/b2bcommerce/payment-method-service/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize telemetry
	if err := telemetry.InitTelemetry("payment-method-service"); err != nil {
		panic(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	}
	defer telemetry.Shutdown(context.Background())

	telemetry.Logger.Info("Starting Payment Method Service")

	// Connect to PostgreSQL
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		telemetry.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize submission audit repository
	recorder := repository.NewSubmissionRepository(db)
	if err := recorder.InitDB(); err != nil {
		telemetry.Logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})
	guard := repository.NewRedisSubmissionGuard(redisClient, cfg.SubmissionLockTTL)

	// Connect to NATS
	nc, err := nats.Connect(cfg.NatsURL)
	if err != nil {
		telemetry.Logger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer nc.Close()

	// External collaborators
	payments := gateway.NewPaymentGateway(nc, cfg.RequestTimeout)
	checkout := gateway.NewCheckoutGateway(nc, cfg.RequestTimeout)
	cart := gateway.NewCartGateway(nc)

	// Kafka event publisher
	events := gateway.NewKafkaPublisher(cfg.KafkaBrokers)
	defer events.Close()

	// Initialize orchestrator service
	orchestrator := service.NewOrchestrator(payments, checkout, cart, events, guard, recorder, events)

	// Setup router
	r := api.NewRouter(orchestrator, payments, recorder)

	// Setup HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		telemetry.Logger.Info("Payment Method Service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	telemetry.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		telemetry.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	telemetry.Logger.Info("Server exited")
}
