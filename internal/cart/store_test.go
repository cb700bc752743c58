package cart

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptophub/internal/domain"
)

var (
	laptopA = domain.Product{ID: "a", Slug: "a", Name: "Alpha 14", PriceKES: 50000}
	laptopB = domain.Product{ID: "b", Slug: "b", Name: "Beta 15", PriceKES: 75000}
	laptopC = domain.Product{ID: "c", Slug: "c", Name: "Gamma 16", PriceKES: 120000}
)

func itemIDs(s *Store) []string {
	var out []string
	for _, item := range s.Items() {
		out = append(out, item.Product.ID)
	}
	return out
}

func TestAddAppendsThenIncrements(t *testing.T) {
	s := New()
	s.Add(laptopA)
	s.Add(laptopB)
	s.Add(laptopA)

	assert.Equal(t, []string{"a", "b"}, itemIDs(s))
	a, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, a.Quantity)
	assert.Equal(t, 3, s.ItemCount())
	assert.Equal(t, int64(175000), s.Subtotal())
}

func TestUpdateQuantityClampsAndIgnoresUnknown(t *testing.T) {
	s := New()
	s.Add(laptopA)

	s.UpdateQuantity("a", 4)
	item, _ := s.Get("a")
	assert.Equal(t, 4, item.Quantity)

	for _, q := range []int{0, -3} {
		s.UpdateQuantity("a", q)
		item, _ = s.Get("a")
		assert.Equal(t, 1, item.Quantity)
	}

	s.UpdateQuantity("zzz", 9)
	assert.False(t, s.Contains("zzz"))
	assert.Equal(t, 1, s.Len())
}

func TestRemoveKeepsRelativeOrder(t *testing.T) {
	s := New()
	s.Add(laptopA)
	s.Add(laptopB)
	s.Add(laptopC)

	s.Remove("b")
	assert.Equal(t, []string{"a", "c"}, itemIDs(s))

	s.Remove("missing")
	assert.Equal(t, []string{"a", "c"}, itemIDs(s))

	// Re-adding a removed product appends it at the end.
	s.Add(laptopB)
	assert.Equal(t, []string{"a", "c", "b"}, itemIDs(s))
}

func TestClear(t *testing.T) {
	s := New()
	s.Add(laptopA)
	s.Add(laptopB)
	s.Clear()

	assert.Zero(t, s.Len())
	assert.Zero(t, s.ItemCount())
	assert.Zero(t, s.Subtotal())
	assert.Empty(t, s.Items())
}

func TestItemsIsSnapshot(t *testing.T) {
	s := New()
	s.Add(laptopA)
	items := s.Items()
	items[0].Quantity = 99

	item, _ := s.Get("a")
	assert.Equal(t, 1, item.Quantity)
}

// Random action sequences must keep every entry at quantity >= 1, unique ids,
// and the derived totals equal to a direct recomputation.
func TestRandomSequencesHoldInvariants(t *testing.T) {
	products := []domain.Product{laptopA, laptopB, laptopC}
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		s := New()
		for step := 0; step < 50; step++ {
			p := products[rng.Intn(len(products))]
			switch rng.Intn(4) {
			case 0:
				s.Add(p)
			case 1:
				s.UpdateQuantity(p.ID, rng.Intn(10)-3)
			case 2:
				s.Remove(p.ID)
			case 3:
				if rng.Intn(10) == 0 {
					s.Clear()
				}
			}

			seen := map[string]bool{}
			var subtotal int64
			var count int
			for _, item := range s.Items() {
				require.GreaterOrEqual(t, item.Quantity, 1)
				require.False(t, seen[item.Product.ID], "duplicate id %s", item.Product.ID)
				seen[item.Product.ID] = true
				subtotal += item.Product.PriceKES * int64(item.Quantity)
				count += item.Quantity
			}
			require.Equal(t, subtotal, s.Subtotal())
			require.Equal(t, count, s.ItemCount())
			require.Equal(t, len(seen), s.Len())
		}
	}
}
