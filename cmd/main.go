package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "dd-backend/internal/adapter/http"
	mongoadapter "dd-backend/internal/adapter/mongo"
	"dd-backend/internal/config"
	"dd-backend/internal/db"
)

// main loads configuration, connects to MongoDB using the URL derived from
// MONGO_HOST, MONGO_PORT and DB_NAME, then serves the health endpoint. On a
// termination signal it shuts the server down gracefully and disconnects.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout)
	logger.Info("configuration loaded",
		slog.String("env", cfg.Env),
		slog.String("mongo_url", cfg.Mongo.URL()))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := db.NewMongoClient(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("database disconnect error", slog.Any("error", err))
		}
	}()

	health := mongoadapter.NewHealthChecker(client, cfg.Mongo.Database(), db.PingTimeout)
	handler := httpadapter.NewHandler(health, logger)
	srv := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
