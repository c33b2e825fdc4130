// Command server runs the job-board HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/alimadkour96/4a8lny/internal/config"
	"github.com/alimadkour96/4a8lny/internal/credential"
	"github.com/alimadkour96/4a8lny/internal/database"
	"github.com/alimadkour96/4a8lny/internal/logger"
	"github.com/alimadkour96/4a8lny/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	authLog, err := logger.NewAuthLogger(cfg.Logging)
	if err != nil {
		lg.Fatal("failed to open auth log", zap.Error(err))
	}
	defer func() { _ = authLog.Sync() }()

	db, err := database.NewDBInstance(cfg.Database, lg)
	if err != nil {
		lg.Fatal("database failed to initialize", zap.Error(err))
	}

	guard := credential.NewBcryptGuard(cfg.Credential.BcryptCost)
	ctx := context.Background()
	if err := db.EnsureAdmin(ctx, cfg.Admin, guard); err != nil {
		lg.Fatal("failed to create admin", zap.Error(err))
	}

	srv := server.NewServer(*cfg, db, guard, authLog, lg)

	go func() {
		lg.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	lg.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("server forced to shutdown", zap.Error(err))
	}

	if raw, err := db.Raw(); err == nil {
		if err := raw.Close(); err != nil {
			lg.Error("error closing database", zap.Error(err))
		}
	}
	lg.Info("server exited")
}
