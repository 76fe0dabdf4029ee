package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"report-service/config"
	"report-service/internal/api"
	"report-service/internal/broker"
	"report-service/internal/redisclient"
	"report-service/internal/report"
	"report-service/internal/store"
	"report-service/internal/util"
	"report-service/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting report service")

	tp, err := util.InitTracer("report-service", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Database connected")

	var cache *redisclient.Client
	if cfg.Redis.Addr != "" {
		ttl := time.Duration(cfg.Reports.CacheTTLSeconds) * time.Second
		cache, err = redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, ttl)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer cache.Close()
		log.Println("Redis report cache connected")
	}

	var publisher *broker.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicReport)
		defer producer.Close()
		publisher = broker.NewEventPublisher(producer)
		log.Println("Kafka producer initialized")
	}

	gen := report.NewGenerator(db)
	runner := report.NewRunner(gen)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var refresher *worker.RefreshWorker
	if cache != nil && cfg.Reports.RefreshSeconds > 0 {
		interval := time.Duration(cfg.Reports.RefreshSeconds) * time.Second
		refresher = worker.NewRefreshWorker(runner, gen, cache, interval)
		go func() {
			if err := refresher.Start(workerCtx); err != nil && err != context.Canceled {
				log.Printf("Refresh worker error: %v", err)
			}
		}()
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	var handlerCache api.ReportCache
	if cache != nil {
		handlerCache = cache
	}
	var handlerPublisher api.EventPublisher
	if publisher != nil {
		handlerPublisher = publisher
	}

	handler := api.NewHandler(gen, runner, handlerCache, handlerPublisher)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	workerCancel()
	if refresher != nil {
		refresher.Stop()
	}

	log.Println("Server exited")
}
