package main

import (
	"context"
	"fmt"
	"os"

	"laptophub/internal/config"
	"laptophub/internal/db"
	"laptophub/internal/logging"
	productrepo "laptophub/internal/repository/product"
	"laptophub/internal/seed"
)

func main() {
	cfg := config.Load()
	logger, err := logging.New("seed", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	n, err := seed.Apply(ctx, productrepo.NewPostgres(pool, logger), logger)
	if err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Infof("seed applied products=%d", n)
}
