// Package cart holds the quote cart: an insertion-ordered mapping from product
// id to line item. A Store has a single owner and is not safe for concurrent
// use; callers that share one must serialize access.
package cart

import "laptophub/internal/domain"

type Store struct {
	order []string
	items map[string]*domain.LineItem
}

func New() *Store {
	return &Store{items: make(map[string]*domain.LineItem)}
}

// Add increments the quantity of an existing entry, or appends the product
// with quantity 1.
func (s *Store) Add(p domain.Product) {
	if item, ok := s.items[p.ID]; ok {
		item.Quantity++
		return
	}
	s.items[p.ID] = &domain.LineItem{Product: p, Quantity: 1}
	s.order = append(s.order, p.ID)
}

// UpdateQuantity sets the quantity for id, clamping values below 1 to 1.
// Unknown ids are ignored.
func (s *Store) UpdateQuantity(id string, quantity int) {
	item, ok := s.items[id]
	if !ok {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	item.Quantity = quantity
}

func (s *Store) Remove(id string) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) Clear() {
	s.order = nil
	s.items = make(map[string]*domain.LineItem)
}

// Items returns a snapshot of the entries in first-insertion order.
func (s *Store) Items() []domain.LineItem {
	out := make([]domain.LineItem, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.items[id])
	}
	return out
}

func (s *Store) Get(id string) (domain.LineItem, bool) {
	item, ok := s.items[id]
	if !ok {
		return domain.LineItem{}, false
	}
	return *item, true
}

func (s *Store) Contains(id string) bool {
	_, ok := s.items[id]
	return ok
}

// Len is the number of distinct products.
func (s *Store) Len() int {
	return len(s.order)
}

// Subtotal sums price times quantity over every entry.
func (s *Store) Subtotal() int64 {
	var total int64
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

// ItemCount sums the quantities over every entry.
func (s *Store) ItemCount() int {
	var n int
	for _, item := range s.items {
		n += item.Quantity
	}
	return n
}
