package storage

import (
	"sync"

	"quickbite/internal/domain"
)

// OrdersStore keeps completed orders for the lifetime of the process,
// most recent first. Orders are immutable once added; there is no deletion
// path.
type OrdersStore struct {
	mu     sync.Mutex
	orders []domain.Order
}

func NewOrdersStore() *OrdersStore {
	return &OrdersStore{}
}

// Add prepends the order so listings come back most-recent-first.
func (s *OrdersStore) Add(order domain.Order) {
	s.mu.Lock()
	s.orders = append([]domain.Order{order}, s.orders...)
	s.mu.Unlock()
}

func (s *OrdersStore) GetByID(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.ID == id {
			return order, true
		}
	}
	return domain.Order{}, false
}

func (s *OrdersStore) List() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}
