package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"laptophub/internal/catalog"
	"laptophub/internal/domain"
)

type Writer interface {
	ReplaceAll(ctx context.Context, products []domain.Product) error
}

// Apply loads the built-in laptop catalog into the store. It is idempotent:
// rerunning it overwrites the same rows.
func Apply(ctx context.Context, w Writer, logger *zap.SugaredLogger) (int, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	products := catalog.Laptops()
	// Reject duplicate ids or slugs before anything is written.
	if _, err := catalog.New(products); err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	if err := w.ReplaceAll(ctx, products); err != nil {
		return 0, fmt.Errorf("seed products: %w", err)
	}
	logger.Infof("seed: upserted products=%d", len(products))
	return len(products), nil
}
