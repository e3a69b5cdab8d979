package tests

import (
	"testing"

	"quickbite/internal/service"
	"quickbite/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Lookups(t *testing.T) {
	svc := service.NewCatalogService(storage.DefaultCatalog())

	rest, err := svc.Restaurant("1")
	require.NoError(t, err)
	assert.Equal(t, "Bella Italia", rest.Name)

	_, err = svc.Restaurant("999")
	assert.ErrorIs(t, err, service.ErrRestaurantNotFound)

	dish, err := svc.Dish("6")
	require.NoError(t, err)
	assert.Equal(t, "Филадельфия", dish.Name)

	_, err = svc.Dish("999")
	assert.ErrorIs(t, err, service.ErrDishNotFound)

	_, err = svc.RestaurantDishes("999")
	assert.ErrorIs(t, err, service.ErrRestaurantNotFound)
}

func TestCatalogService_RestaurantFilters(t *testing.T) {
	svc := service.NewCatalogService(storage.DefaultCatalog())

	tests := []struct {
		name     string
		query    string
		category string
		expected []string
	}{
		{name: "no filters", expected: []string{"Bella Italia", "Sushi Master", "Burger House", "Green Garden"}},
		{name: "query by name", query: "sushi", expected: []string{"Sushi Master"}},
		{name: "query by cuisine", query: "итальян", expected: []string{"Bella Italia"}},
		{name: "category", category: "Бургеры", expected: []string{"Burger House"}},
		{name: "query and category together", query: "house", category: "Пицца", expected: []string{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			restaurants := svc.Restaurants(testCase.query, testCase.category)
			names := []string{}
			for _, rest := range restaurants {
				names = append(names, rest.Name)
			}
			assert.Equal(t, testCase.expected, names)
		})
	}
}

// Every seeded dish that declares sizes must have a default first entry.
func TestSeedCatalog_SizeInvariant(t *testing.T) {
	catalog := storage.DefaultCatalog()

	for _, rest := range catalog.Restaurants() {
		for _, dish := range catalog.DishesByRestaurant(rest.ID) {
			if dish.Sizes != nil {
				require.NotEmpty(t, dish.Sizes, "dish %s declares an empty sizes list", dish.ID)
				assert.Equal(t, float64(0), dish.Sizes[0].Price, "dish %s default size should carry no surcharge", dish.ID)
			}
		}
	}
}
