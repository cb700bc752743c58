package product

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"laptophub/internal/catalog"
	"laptophub/internal/domain"
)

// MaxCompare is the most products shown side by side.
const MaxCompare = 3

type catalogReader interface {
	FindBySlug(slug string) (domain.Product, bool)
	List() []domain.Product
	Brands() []string
	PriceRange() catalog.PriceRange
}

type Service struct {
	catalog catalogReader
	logger  *zap.SugaredLogger
}

func New(c catalogReader, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{catalog: c, logger: logger}
}

// Facets describe the whole catalog so the browse page can render its filters
// independently of the current result set.
type Facets struct {
	Brands     []string           `json:"brands"`
	PriceRange catalog.PriceRange `json:"priceRange"`
	Total      int                `json:"total"`
}

type ListResult struct {
	Products []domain.Product
	Facets   Facets
}

func (s *Service) List(ctx context.Context, q catalog.Query) ListResult {
	all := s.catalog.List()
	products := catalog.Filter(all, q)
	s.logger.Debugf("product service: list q=%q brand=%q sort=%s count=%d", q.Search, q.Brand, q.Sort, len(products))
	return ListResult{
		Products: products,
		Facets: Facets{
			Brands:     s.catalog.Brands(),
			PriceRange: s.catalog.PriceRange(),
			Total:      len(all),
		},
	}
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (domain.Product, error) {
	slug = strings.TrimSpace(slug)
	p, ok := s.catalog.FindBySlug(slug)
	if !ok {
		return domain.Product{}, fmt.Errorf("product %q: %w", slug, domain.ErrNotFound)
	}
	return p, nil
}

// Compare resolves up to MaxCompare distinct slugs in request order. Unknown
// and repeated slugs are skipped.
func (s *Service) Compare(ctx context.Context, slugs []string) []domain.Product {
	out := make([]domain.Product, 0, MaxCompare)
	seen := make(map[string]struct{}, len(slugs))
	for _, slug := range slugs {
		if len(out) == MaxCompare {
			break
		}
		slug = strings.TrimSpace(slug)
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		if p, ok := s.catalog.FindBySlug(slug); ok {
			out = append(out, p)
		}
	}
	return out
}
