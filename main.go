package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lafamilia/config"
	_ "lafamilia/docs"
	"lafamilia/logger"
	"lafamilia/repositories"
	"lafamilia/routes"

	"go.uber.org/zap"
)

// @title La Familia Chambers API
// @version 1.0
// @description iMall catalog, cart and checkout, ad ordering and the community directory.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log := logger.New(logger.DefaultConfig())
		log.Fatal("invalid configuration", zap.Error(err))
	}

	log := logger.New(logger.FromSettings(cfg.AppEnv, cfg.LogLevel, cfg.LogFormat))
	defer log.Sync()

	if cfg.TelemetryEnabled {
		shutdown, err := config.InitTracing()
		if err != nil {
			log.Fatal("failed to start tracing", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	app, err := routes.NewApp(cfg, log)
	if err != nil {
		log.Fatal("failed to start", zap.Error(err))
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.WatchData {
		if err := repositories.WatchContent(ctx, app.Content, log.Named("watcher")); err != nil {
			log.Warn("data watcher disabled", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.AppEnv),
			zap.String("swagger", "http://localhost:"+cfg.Port+"/swagger/index.html"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
