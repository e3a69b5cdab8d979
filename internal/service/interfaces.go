package service

import "quickbite/internal/domain"

// CatalogRepository is the read-only reference dataset the services run
// against. It is seeded at startup and never mutated.
type CatalogRepository interface {
	Restaurants() []domain.Restaurant
	GetRestaurant(id string) (domain.Restaurant, bool)
	DishesByRestaurant(restaurantID string) []domain.Dish
	GetDish(id string) (domain.Dish, bool)
	Categories() []domain.Category
	Addresses() []domain.Address
	GetAddress(id string) (domain.Address, bool)
	PaymentMethods() []domain.PaymentMethod
	GetPaymentMethod(id string) (domain.PaymentMethod, bool)
}

type CartRepository interface {
	AddItem(dish domain.Dish, quantity int, size *domain.DishSize, options []domain.DishOption) domain.CartItem
	UpdateQuantity(itemID string, quantity int)
	RemoveItem(itemID string)
	Clear()
	Items() []domain.CartItem
	Total() float64
	ItemsCount() int
}

type OrderRepository interface {
	Add(order domain.Order)
	GetByID(id string) (domain.Order, bool)
	List() []domain.Order
}

type FavoritesRepository interface {
	Toggle(restaurantID string) bool
	IsFavorite(restaurantID string) bool
	List() []string
}

// IDGenerator mirrors storage.IDGenerator for consumers in this package.
type IDGenerator interface {
	NewID() string
}

type CatalogServiceInterface interface {
	Categories() []domain.Category
	Restaurants(query, category string) []domain.Restaurant
	Restaurant(id string) (domain.Restaurant, error)
	RestaurantDishes(restaurantID string) ([]domain.Dish, error)
	Dish(id string) (domain.Dish, error)
	Addresses() []domain.Address
	PaymentMethods() []domain.PaymentMethod
}

type CartServiceInterface interface {
	AddItem(dishID string, quantity int, sizeID string, optionIDs []string) (domain.CartItem, error)
	UpdateQuantity(itemID string, quantity int)
	RemoveItem(itemID string)
	Clear()
	Items() []domain.CartItem
	ItemsCount() int
	ApplyPromo(code string) (CartSummary, error)
	RemovePromo() CartSummary
	Summary() CartSummary
}

type OrderServiceInterface interface {
	Checkout(req CheckoutRequest) (domain.Order, error)
	Get(id string) (domain.Order, error)
	List() []domain.Order
	QRCode(orderID string) ([]byte, error)
}

type FavoritesServiceInterface interface {
	Toggle(restaurantID string) (bool, error)
	List() []domain.Restaurant
}
