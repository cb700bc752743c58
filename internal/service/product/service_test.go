package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptophub/internal/catalog"
	"laptophub/internal/domain"
)

func newService(t *testing.T) *Service {
	t.Helper()
	c, err := catalog.New(catalog.Laptops())
	require.NoError(t, err)
	return New(c, nil)
}

func TestListFiltersAndReportsFacets(t *testing.T) {
	svc := newService(t)

	res := svc.List(context.Background(), catalog.Query{Brand: "HP", Sort: catalog.SortPriceDesc})
	require.Len(t, res.Products, 2)
	assert.Equal(t, "hp-elitebook-840-g10", res.Products[0].Slug)
	assert.Equal(t, "hp-victus-15", res.Products[1].Slug)

	assert.Equal(t, len(catalog.Laptops()), res.Facets.Total)
	assert.Contains(t, res.Facets.Brands, "Lenovo")
	assert.Equal(t, int64(54999), res.Facets.PriceRange.Min)
}

func TestListUnknownBrandIsEmpty(t *testing.T) {
	res := newService(t).List(context.Background(), catalog.Query{Brand: "Toshiba"})
	assert.Empty(t, res.Products)
	assert.NotZero(t, res.Facets.Total)
}

func TestGetBySlug(t *testing.T) {
	svc := newService(t)

	p, err := svc.GetBySlug(context.Background(), "acer-aspire-5-a515")
	require.NoError(t, err)
	assert.Equal(t, "lp-006", p.ID)

	_, err = svc.GetBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompareCapsSkipsUnknownAndDuplicates(t *testing.T) {
	svc := newService(t)

	got := svc.Compare(context.Background(), []string{
		"hp-victus-15", "missing", "hp-victus-15", "dell-xps-13-9340", "acer-aspire-5-a515", "macbook-air-m3-13",
	})
	require.Len(t, got, MaxCompare)
	assert.Equal(t, "lp-003", got[0].ID)
	assert.Equal(t, "lp-002", got[1].ID)
	assert.Equal(t, "lp-006", got[2].ID)

	assert.Empty(t, svc.Compare(context.Background(), nil))
}
