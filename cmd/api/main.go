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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/client-directory/internal/config"
	dbpkg "github.com/BruksfildServices01/client-directory/internal/db"
	"github.com/BruksfildServices01/client-directory/internal/enrichment"
	"github.com/BruksfildServices01/client-directory/internal/logging"
	"github.com/BruksfildServices01/client-directory/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Fatal("failed to open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// --------------------------------------------------
	// Enrichment (cache opcional em redis)
	// --------------------------------------------------
	opts := enrichment.Options{
		CNPJBaseURL: cfg.CNPJLookupURL,
		CEPBaseURL:  cfg.CEPLookupURL,
		Timeout:     cfg.LookupTimeout,
		Logger:      logger,
	}
	if cfg.RedisAddr != "" {
		cache := enrichment.NewRedisCache(enrichment.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.LookupTTL,
		}, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := cache.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, lookups run uncached", zap.Error(err))
			_ = cache.Close()
		} else {
			opts.Cache = cache
			defer cache.Close()
		}
		cancel()
	}
	enricher := enrichment.New(opts)

	gin.SetMode(gin.ReleaseMode)
	r := routes.NewEngine(logger, cfg.CORSOrigin)
	routes.RegisterRoutes(r, db, enricher, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()), zap.String("db_driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Info("shutting down server...")
	case err := <-errCh:
		logger.Fatal("failed to start server", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
