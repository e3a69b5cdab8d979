package storage

import (
	"testing"

	"quickbite/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestOrdersStore_MostRecentFirst(t *testing.T) {
	store := NewOrdersStore()

	store.Add(domain.Order{ID: "order-1"})
	store.Add(domain.Order{ID: "order-2"})
	store.Add(domain.Order{ID: "order-3"})

	orders := store.List()
	assert.Len(t, orders, 3)
	assert.Equal(t, "order-3", orders[0].ID)
	assert.Equal(t, "order-1", orders[2].ID)
}

func TestOrdersStore_GetByID(t *testing.T) {
	store := NewOrdersStore()
	store.Add(domain.Order{ID: "order-1", Total: 1425})

	order, ok := store.GetByID("order-1")
	assert.True(t, ok)
	assert.Equal(t, float64(1425), order.Total)

	_, ok = store.GetByID("missing")
	assert.False(t, ok)
}

func TestFavoritesStore_Toggle(t *testing.T) {
	store := NewFavoritesStore()

	assert.True(t, store.Toggle("1"))
	assert.True(t, store.IsFavorite("1"))
	assert.True(t, store.Toggle("2"))
	assert.Equal(t, []string{"1", "2"}, store.List())

	assert.False(t, store.Toggle("1"))
	assert.False(t, store.IsFavorite("1"))
	assert.Equal(t, []string{"2"}, store.List())
}
