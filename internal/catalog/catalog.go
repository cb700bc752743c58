package catalog

import (
	"context"
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"laptophub/internal/domain"
)

// Catalog is an immutable, in-memory set of products kept in display order.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
	bySlug   map[string]int
}

// Source provides the product records a Catalog is built from.
type Source interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
}

// New validates products and builds a Catalog preserving the given order.
func New(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidProduct, p.ID)
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate slug %q", domain.ErrInvalidProduct, p.Slug)
		}
		c.byID[p.ID] = len(c.products)
		c.bySlug[p.Slug] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Load reads every product from src once and builds a Catalog from them.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	products, err := src.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return New(products)
}

func (c *Catalog) FindByID(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) FindBySlug(slug string) (domain.Product, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// List returns a copy of every product in catalog order.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Brands returns the distinct brands in English collation order.
func (c *Catalog) Brands() []string {
	seen := make(map[string]struct{}, len(c.products))
	brands := make([]string, 0, len(c.products))
	for _, p := range c.products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	collate.New(language.English).SortStrings(brands)
	return brands
}

// PriceRange is the lowest and highest listed price.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

func (c *Catalog) PriceRange() PriceRange {
	if len(c.products) == 0 {
		return PriceRange{}
	}
	r := PriceRange{Min: c.products[0].PriceKES, Max: c.products[0].PriceKES}
	for _, p := range c.products[1:] {
		if p.PriceKES < r.Min {
			r.Min = p.PriceKES
		}
		if p.PriceKES > r.Max {
			r.Max = p.PriceKES
		}
	}
	return r
}
