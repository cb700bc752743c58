package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"laptophub/internal/catalog"
	"laptophub/internal/config"
	"laptophub/internal/db"
	"laptophub/internal/httpserver"
	"laptophub/internal/logging"
	productrepo "laptophub/internal/repository/product"
	cartsvc "laptophub/internal/service/cart"
	productsvc "laptophub/internal/service/product"
	"laptophub/internal/session"
	"laptophub/internal/whatsapp"
)

func main() {
	cfg := config.Load()
	logger, err := logging.New("api", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()

	cat, pinger, closeDB, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}
	defer closeDB()

	links, err := whatsapp.New(cfg.WhatsAppHost, cfg.WhatsAppNumber)
	if err != nil {
		logger.Fatalf("whatsapp link: %v", err)
	}

	sessions := session.NewManager(cfg.SessionTTL, logger)
	go sessions.RunSweeper(ctx, cfg.SweepInterval)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		ProductSvc:   productsvc.New(cat, logger),
		CartSvc:      cartsvc.New(cat, links, logger),
		Sessions:     sessions,
		DB:           pinger,
		AllowOrigins: cfg.AllowOrigins,
		ImageURLHost: cfg.ImageURLHost,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("starting http server on %s catalog=%s products=%d", cfg.HTTPAddr, cfg.CatalogSource, cat.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Infof("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Errorf("server error: %v", err)
	}

	stopSweeper()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	} else {
		logger.Info("server stopped")
	}
}

// loadCatalog builds the in-memory catalog from the configured source. The
// returned pinger is nil for the static catalog.
func loadCatalog(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) (*catalog.Catalog, httpserver.Pinger, func(), error) {
	switch cfg.CatalogSource {
	case config.CatalogStatic:
		cat, err := catalog.New(catalog.Laptops())
		return cat, nil, func() {}, err
	case config.CatalogPostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString, logger)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect db: %w", err)
		}
		cat, err := catalog.Load(ctx, productrepo.NewPostgres(pool, logger))
		if err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		return cat, pool, pool.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}
}
