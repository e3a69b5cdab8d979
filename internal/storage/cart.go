package storage

import (
	"sync"

	"quickbite/internal/domain"
)

// CartStore keeps the list of cart lines and derives price and quantity
// aggregates. Every mutation recomputes the affected line's TotalPrice, so a
// stale total is never stored.
type CartStore struct {
	mu    sync.Mutex
	ids   IDGenerator
	items []domain.CartItem
}

func NewCartStore(ids IDGenerator) *CartStore {
	return &CartStore{ids: ids}
}

// AddItem appends a new line with a fresh id. Identical configurations are
// not merged: every add creates its own line.
func (s *CartStore) AddItem(dish domain.Dish, quantity int, size *domain.DishSize, options []domain.DishOption) domain.CartItem {
	item := domain.CartItem{
		ID:              s.ids.NewID(),
		Dish:            dish,
		Quantity:        quantity,
		SelectedSize:    size,
		SelectedOptions: options,
		TotalPrice:      lineTotal(dish, size, options, quantity),
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()

	return item
}

// UpdateQuantity sets a line's quantity and recomputes its total. A quantity
// of zero or less removes the line. Unknown ids are a silent no-op.
func (s *CartStore) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(itemID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == itemID {
			s.items[i].Quantity = quantity
			s.items[i].TotalPrice = lineTotal(item.Dish, item.SelectedSize, item.SelectedOptions, quantity)
			return
		}
	}
}

// RemoveItem removes the matching line; no-op if absent.
func (s *CartStore) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *CartStore) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

func (s *CartStore) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total is the sum of all line totals; zero on an empty cart.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.TotalPrice
	}
	return total
}

// ItemsCount is the sum of line quantities, not the number of lines.
func (s *CartStore) ItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func lineTotal(dish domain.Dish, size *domain.DishSize, options []domain.DishOption, quantity int) float64 {
	price := dish.Price
	if size != nil {
		price += size.Price
	}
	for _, opt := range options {
		price += opt.Price
	}
	return price * float64(quantity)
}
