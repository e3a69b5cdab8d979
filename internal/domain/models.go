package domain

import "time"

type Restaurant struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Image        string           `json:"image"`
	Rating       float64          `json:"rating"`
	DeliveryTime string           `json:"delivery_time"`
	DeliveryFee  float64          `json:"delivery_fee"`
	MinOrder     float64          `json:"min_order"`
	CuisineType  []string         `json:"cuisine_type"`
	Promoted     bool             `json:"promoted,omitempty"`
	Promo        *RestaurantPromo `json:"promo,omitempty"`
}

type RestaurantPromo struct {
	Code     string `json:"code"`
	Discount int    `json:"discount"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// DishSize is a variant of a dish; Price is a delta over the base price.
type DishSize struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// DishOption is an add-on; Price is a delta over the base price.
type DishOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Dish is a purchasable menu item. When Sizes is present it is non-empty
// and Sizes[0] is the default.
type Dish struct {
	ID           string       `json:"id"`
	RestaurantID string       `json:"restaurant_id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Ingredients  string       `json:"ingredients"`
	Image        string       `json:"image"`
	Price        float64      `json:"price"`
	Category     string       `json:"category"`
	Sizes        []DishSize   `json:"sizes,omitempty"`
	Options      []DishOption `json:"options,omitempty"`
	Popular      bool         `json:"popular,omitempty"`
}

// CartItem is one configured, priced line awaiting checkout. Its ID is its
// own identity: the same dish with different configurations coexists as
// separate lines.
type CartItem struct {
	ID              string       `json:"id"`
	Dish            Dish         `json:"dish"`
	Quantity        int          `json:"quantity"`
	SelectedSize    *DishSize    `json:"selected_size,omitempty"`
	SelectedOptions []DishOption `json:"selected_options,omitempty"`
	TotalPrice      float64      `json:"total_price"`
}

type Address struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Street       string `json:"street"`
	Building     string `json:"building"`
	Apartment    string `json:"apartment,omitempty"`
	Floor        string `json:"floor,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type PaymentMethod struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
	Last4 string `json:"last4,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// DeliveryTimeASAP is the sentinel delivery-time value; anything else is a
// caller-supplied schedule string passed through verbatim.
const DeliveryTimeASAP = "asap"

// Order is an immutable snapshot of a completed checkout.
type Order struct {
	ID                    string        `json:"id"`
	Items                 []CartItem    `json:"items"`
	Subtotal              float64       `json:"subtotal"`
	DeliveryFee           float64       `json:"delivery_fee"`
	Discount              float64       `json:"discount"`
	Total                 float64       `json:"total"`
	Address               Address       `json:"address"`
	PaymentMethod         PaymentMethod `json:"payment_method"`
	DeliveryTime          string        `json:"delivery_time"`
	Comment               string        `json:"comment,omitempty"`
	Status                OrderStatus   `json:"status"`
	EstimatedDeliveryTime string        `json:"estimated_delivery_time,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
}
