package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/app"
	"github.com/ferrovale/workspace-booking-backend/internal/config"
	"github.com/ferrovale/workspace-booking-backend/internal/db"
	"github.com/ferrovale/workspace-booking-backend/internal/logger"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog := logger.New(cfg.IsProduction)
	defer zlog.Sync()

	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		zlog.Fatalw("failed to connect to db", "error", err)
	}
	defer pool.Close()

	container, err := app.NewContainer(app.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		DBPool:             pool,
		JWTSecret:          cfg.JWTSecret,
		JWTTTL:             cfg.JWTAccessTokenTTL,
		BcryptCost:         cfg.BcryptCost,
		StoragePath:        cfg.StoragePath,
		DailyCapacityHours: cfg.DailyCapacityHours,
		Logger:             zlog,
	})
	if err != nil {
		zlog.Fatalw("failed to build application", "error", err)
	}

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	go func() {
		zlog.Infow("server running", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("server error", "error", err)
		}
	}()

	<-ctx.Done()
	zlog.Infow("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Errorw("server forced to shutdown", "error", err)
	}

	zlog.Infow("server exited gracefully")
}
