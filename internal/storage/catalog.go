package storage

import "quickbite/internal/domain"

// Catalog holds the static reference data: restaurants, dishes, categories,
// delivery addresses and payment methods. It is seeded once at startup and
// never mutated, so reads need no locking.
type Catalog struct {
	restaurants []domain.Restaurant
	categories  []domain.Category
	dishes      []domain.Dish
	addresses   []domain.Address
	payments    []domain.PaymentMethod
}

func NewCatalog(
	restaurants []domain.Restaurant,
	categories []domain.Category,
	dishes []domain.Dish,
	addresses []domain.Address,
	payments []domain.PaymentMethod,
) *Catalog {
	return &Catalog{
		restaurants: restaurants,
		categories:  categories,
		dishes:      dishes,
		addresses:   addresses,
		payments:    payments,
	}
}

func (c *Catalog) Restaurants() []domain.Restaurant {
	out := make([]domain.Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out
}

func (c *Catalog) GetRestaurant(id string) (domain.Restaurant, bool) {
	for _, rest := range c.restaurants {
		if rest.ID == id {
			return rest, true
		}
	}
	return domain.Restaurant{}, false
}

func (c *Catalog) DishesByRestaurant(restaurantID string) []domain.Dish {
	dishes := []domain.Dish{}
	for _, dish := range c.dishes {
		if dish.RestaurantID == restaurantID {
			dishes = append(dishes, dish)
		}
	}
	return dishes
}

func (c *Catalog) GetDish(id string) (domain.Dish, bool) {
	for _, dish := range c.dishes {
		if dish.ID == id {
			return dish, true
		}
	}
	return domain.Dish{}, false
}

func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Addresses() []domain.Address {
	out := make([]domain.Address, len(c.addresses))
	copy(out, c.addresses)
	return out
}

func (c *Catalog) GetAddress(id string) (domain.Address, bool) {
	for _, addr := range c.addresses {
		if addr.ID == id {
			return addr, true
		}
	}
	return domain.Address{}, false
}

func (c *Catalog) PaymentMethods() []domain.PaymentMethod {
	out := make([]domain.PaymentMethod, len(c.payments))
	copy(out, c.payments)
	return out
}

func (c *Catalog) GetPaymentMethod(id string) (domain.PaymentMethod, bool) {
	for _, method := range c.payments {
		if method.ID == id {
			return method, true
		}
	}
	return domain.PaymentMethod{}, false
}
