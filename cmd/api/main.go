package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/scalable_field/internal/adapter/authz"
	"github.com/srgjo27/scalable_field/internal/adapter/export"
	"github.com/srgjo27/scalable_field/internal/adapter/handler"
	"github.com/srgjo27/scalable_field/internal/adapter/jobstatus"
	"github.com/srgjo27/scalable_field/internal/adapter/notify"
	"github.com/srgjo27/scalable_field/internal/adapter/repository/postgres"
	"github.com/srgjo27/scalable_field/internal/core/services"
	"github.com/srgjo27/scalable_field/internal/platform/database"
	"github.com/srgjo27/scalable_field/internal/platform/logger"
	"github.com/srgjo27/scalable_field/internal/worker"
)

func loadEnv(filepath string, log *logger.Logger) {
	file, err := os.Open(filepath)

	if err != nil {
		log.Infow(".env file not found, using OS environment")
		return
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			os.Setenv(key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Warnw("failed to read .env file", "error", err)
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func main() {
	log, err := logger.New(os.Getenv("APP_MODE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	loadEnv(".env", log)

	dbConfig := database.Config{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "postgres"),
		Password: getenv("DB_PASSWORD", ""),
		DBName:   getenv("DB_NAME", "scalable_field"),
	}

	db, err := database.NewPostgresDB(dbConfig, log)
	if err != nil {
		log.Fatalw("failed to connect to db after retries", "error", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	redisAddr := fmt.Sprintf("%s:%s", getenv("REDIS_HOST", "localhost"), getenv("REDIS_PORT", "6379"))
	log.Infow("connecting to redis", "addr", redisAddr)

	redisClient := redis.NewClient(&redis.Options{
		Addr: redisAddr,
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	log.Infow("redis connected")

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	voucherRepo := postgres.NewVoucherRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	fieldRepo := postgres.NewFieldRepository(db)

	statusStore := jobstatus.NewRedisStore(redisClient)
	artifacts := export.NewStore(getenv("EXPORT_DIR", "public/data"))
	notifier := notify.NewLogNotifier(log)
	authorizer := authz.NewActionAuthorizer()

	ledger := services.NewVoucherLedger(voucherRepo, redisClient, log)
	bookingService := services.NewBookingService(bookingRepo, fieldRepo, ledger, notifier, authorizer, log)

	pool := worker.NewPool(worker.DefaultConfig(), log)
	exportService := services.NewExportService(bookingRepo, statusStore, artifacts, pool, authorizer, log)
	pool.Start(rootCtx, exportService.Execute)

	bookingHandler := handler.NewBookingHandler(bookingService, exportService)
	voucherHandler := handler.NewVoucherHandler(ledger)

	mux := http.NewServeMux()
	bookingHandler.Register(mux)
	voucherHandler.Register(mux)

	server := &http.Server{
		Addr:         ":" + getenv("PORT", "8080"),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infow("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server startup failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	if err := pool.Stop(ctx); err != nil {
		log.Warnw("export worker pool did not drain in time", "error", err)
	}

	inFlight, processed, queued := pool.Stats()
	log.Infow("server exiting", "jobs_in_flight", inFlight, "jobs_processed", processed, "jobs_queued", queued)
}
