package product

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"laptophub/internal/domain"
)

const listQuery = `
SELECT id, slug, name, brand, category, description, price_kes, COALESCE(original_price_kes, 0),
       cpu, ram, storage, gpu, display, image, images, rating, reviews, in_stock, is_new, is_featured,
       highlights, key_features, target_audience, detailed_specs
FROM products
ORDER BY position ASC, id ASC
`

const upsertQuery = `
INSERT INTO products (
    id, slug, name, brand, category, description, price_kes, original_price_kes,
    cpu, ram, storage, gpu, display, image, images, rating, reviews, in_stock, is_new, is_featured,
    highlights, key_features, target_audience, detailed_specs, position
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
ON CONFLICT (id) DO UPDATE SET
    slug = EXCLUDED.slug,
    name = EXCLUDED.name,
    brand = EXCLUDED.brand,
    category = EXCLUDED.category,
    description = EXCLUDED.description,
    price_kes = EXCLUDED.price_kes,
    original_price_kes = EXCLUDED.original_price_kes,
    cpu = EXCLUDED.cpu,
    ram = EXCLUDED.ram,
    storage = EXCLUDED.storage,
    gpu = EXCLUDED.gpu,
    display = EXCLUDED.display,
    image = EXCLUDED.image,
    images = EXCLUDED.images,
    rating = EXCLUDED.rating,
    reviews = EXCLUDED.reviews,
    in_stock = EXCLUDED.in_stock,
    is_new = EXCLUDED.is_new,
    is_featured = EXCLUDED.is_featured,
    highlights = EXCLUDED.highlights,
    key_features = EXCLUDED.key_features,
    target_audience = EXCLUDED.target_audience,
    detailed_specs = EXCLUDED.detailed_specs,
    position = EXCLUDED.position,
    updated_at = now()
`

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type postgresRepo struct {
	pool   DBPool
	logger *zap.SugaredLogger
}

func NewPostgres(pool DBPool, logger *zap.SugaredLogger) Repository {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, listQuery)
	if err != nil {
		r.logger.Errorf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var (
			p        domain.Product
			original int64
			specs    []byte
		)
		if err := rows.Scan(
			&p.ID, &p.Slug, &p.Name, &p.Brand, &p.Category, &p.Description, &p.PriceKES, &original,
			&p.CPU, &p.RAM, &p.Storage, &p.GPU, &p.Display, &p.Image, &p.Images, &p.Rating, &p.Reviews,
			&p.InStock, &p.IsNew, &p.IsFeatured, &p.Highlights, &p.KeyFeatures, &p.TargetAudience, &specs,
		); err != nil {
			return nil, err
		}
		if original > 0 {
			p.OriginalPriceKES = domain.Int64Ptr(original)
		}
		if p.DetailedSpecs, err = decodeSpecs(specs); err != nil {
			return nil, fmt.Errorf("product %s: %w", p.ID, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Errorf("product repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Infof("product repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product, position int) error {
	return r.upsert(ctx, r.pool, p, position)
}

func (r *postgresRepo) ReplaceAll(ctx context.Context, products []domain.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, p := range products {
		if err := r.upsert(ctx, tx, p, i); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	r.logger.Infof("product repo: replaced count=%d", len(products))
	return nil
}

func (r *postgresRepo) upsert(ctx context.Context, db execer, p domain.Product, position int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	specs, err := encodeSpecs(p.DetailedSpecs)
	if err != nil {
		return fmt.Errorf("product %s: %w", p.ID, err)
	}
	_, err = db.Exec(ctx, upsertQuery,
		p.ID, p.Slug, p.Name, p.Brand, p.Category, p.Description, p.PriceKES, p.OriginalPriceKES,
		p.CPU, p.RAM, p.Storage, p.GPU, p.Display, p.Image, nonNil(p.Images), p.Rating, p.Reviews,
		p.InStock, p.IsNew, p.IsFeatured, nonNil(p.Highlights), nonNil(p.KeyFeatures), nonNil(p.TargetAudience),
		specs, position,
	)
	if err != nil {
		r.logger.Errorf("product repo: upsert id=%s slug=%s error=%v", p.ID, p.Slug, err)
		return fmt.Errorf("upsert product %s: %w", p.ID, err)
	}
	r.logger.Debugf("product repo: upserted id=%s slug=%s position=%d", p.ID, p.Slug, position)
	return nil
}

func encodeSpecs(s *domain.DetailedSpecs) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func decodeSpecs(b []byte) (*domain.DetailedSpecs, error) {
	if len(b) == 0 || string(b) == "null" {
		return nil, nil
	}
	var s domain.DetailedSpecs
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode detailed specs: %w", err)
	}
	return &s, nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
