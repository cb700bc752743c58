package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"laptophub/internal/domain"
)

type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
)

// ParseSort maps a query value to a SortOption. Unknown values sort newest first.
func ParseSort(v string) SortOption {
	switch opt := SortOption(strings.TrimSpace(v)); opt {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return opt
	default:
		return SortNewest
	}
}

// Query holds the browse filters. Zero values disable a filter.
type Query struct {
	Search      string
	Brand       string
	MinPrice    int64
	MaxPrice    int64
	InStockOnly bool
	Sort        SortOption
}

// Matches applies every active predicate to p.
func (q Query) Matches(p domain.Product) bool {
	if s := strings.ToLower(strings.TrimSpace(q.Search)); s != "" {
		if !strings.Contains(strings.ToLower(p.Name), s) && !strings.Contains(strings.ToLower(p.Brand), s) {
			return false
		}
	}
	if q.Brand != "" && p.Brand != q.Brand {
		return false
	}
	if q.MinPrice > 0 && p.PriceKES < q.MinPrice {
		return false
	}
	if q.MaxPrice > 0 && p.PriceKES > q.MaxPrice {
		return false
	}
	if q.InStockOnly && !p.InStock {
		return false
	}
	return true
}

// Filter returns the products matching q, sorted by q.Sort. Input order is the
// tie-breaker, so passing catalog order keeps ties in catalog order.
func Filter(products []domain.Product, q Query) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q.Matches(p) {
			out = append(out, p)
		}
	}
	SortProducts(out, q.Sort)
	return out
}

// SortProducts sorts in place with a stable sort.
func SortProducts(products []domain.Product, opt SortOption) {
	switch opt {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].PriceKES < products[j].PriceKES })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].PriceKES > products[j].PriceKES })
	case SortNameAsc:
		col := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool { return col.CompareString(products[i].Name, products[j].Name) < 0 })
	case SortNameDesc:
		col := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool { return col.CompareString(products[i].Name, products[j].Name) > 0 })
	}
}
