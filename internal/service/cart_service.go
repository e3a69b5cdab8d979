package service

import (
	"errors"
	"math"
	"strings"
	"sync"

	"quickbite/internal/domain"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrSizeNotFound     = errors.New("size does not belong to this dish")
	ErrOptionNotFound   = errors.New("option does not belong to this dish")
	ErrInvalidPromoCode = errors.New("invalid promo code")
)

// PromoCodes maps a code to the discount fraction applied to the cart
// subtotal. Lookup is by uppercased user input.
var PromoCodes = map[string]float64{
	"FIRST25":  0.25,
	"SAVE10":   0.10,
	"ITALY20":  0.20,
	"BURGER15": 0.15,
}

// CartSummary is the checkout-time price breakdown. The discount lives here,
// never in the stored lines.
type CartSummary struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
	PromoCode   string  `json:"promo_code,omitempty"`
	ItemsCount  int     `json:"items_count"`
}

type CartService struct {
	catalog     CatalogRepository
	cart        CartRepository
	deliveryFee float64

	mu           sync.Mutex
	appliedPromo string
}

func NewCartService(catalog CatalogRepository, cart CartRepository, deliveryFee float64) *CartService {
	return &CartService{catalog: catalog, cart: cart, deliveryFee: deliveryFee}
}

// AddItem validates the configuration against the catalog and appends a new
// cart line. An empty sizeID picks the dish's default size (the first one)
// when the dish has sizes at all.
func (s *CartService) AddItem(dishID string, quantity int, sizeID string, optionIDs []string) (domain.CartItem, error) {
	if quantity < 1 {
		return domain.CartItem{}, ErrInvalidQuantity
	}

	dish, ok := s.catalog.GetDish(dishID)
	if !ok {
		return domain.CartItem{}, ErrDishNotFound
	}

	size, err := resolveSize(dish, sizeID)
	if err != nil {
		return domain.CartItem{}, err
	}

	options, err := resolveOptions(dish, optionIDs)
	if err != nil {
		return domain.CartItem{}, err
	}

	return s.cart.AddItem(dish, quantity, size, options), nil
}

func resolveSize(dish domain.Dish, sizeID string) (*domain.DishSize, error) {
	if len(dish.Sizes) == 0 {
		if sizeID != "" {
			return nil, ErrSizeNotFound
		}
		return nil, nil
	}
	if sizeID == "" {
		size := dish.Sizes[0]
		return &size, nil
	}
	for _, size := range dish.Sizes {
		if size.ID == sizeID {
			size := size
			return &size, nil
		}
	}
	return nil, ErrSizeNotFound
}

func resolveOptions(dish domain.Dish, optionIDs []string) ([]domain.DishOption, error) {
	if len(optionIDs) == 0 {
		return nil, nil
	}

	var options []domain.DishOption
	seen := make(map[string]bool, len(optionIDs))
	for _, id := range optionIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		found := false
		for _, opt := range dish.Options {
			if opt.ID == id {
				options = append(options, opt)
				found = true
				break
			}
		}
		if !found {
			return nil, ErrOptionNotFound
		}
	}
	return options, nil
}

func (s *CartService) UpdateQuantity(itemID string, quantity int) {
	s.cart.UpdateQuantity(itemID, quantity)
}

func (s *CartService) RemoveItem(itemID string) {
	s.cart.RemoveItem(itemID)
}

// Clear empties the cart and drops any applied promo code.
func (s *CartService) Clear() {
	s.cart.Clear()

	s.mu.Lock()
	s.appliedPromo = ""
	s.mu.Unlock()
}

func (s *CartService) Items() []domain.CartItem {
	return s.cart.Items()
}

func (s *CartService) ItemsCount() int {
	return s.cart.ItemsCount()
}

// ApplyPromo activates a promo code, replacing any previously applied one.
// Unknown codes leave the cart untouched.
func (s *CartService) ApplyPromo(code string) (CartSummary, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := PromoCodes[code]; !ok {
		return CartSummary{}, ErrInvalidPromoCode
	}

	s.mu.Lock()
	s.appliedPromo = code
	s.mu.Unlock()

	return s.Summary(), nil
}

func (s *CartService) RemovePromo() CartSummary {
	s.mu.Lock()
	s.appliedPromo = ""
	s.mu.Unlock()

	return s.Summary()
}

// Summary derives the current price breakdown. The total is rounded to the
// nearest integer currency unit.
func (s *CartService) Summary() CartSummary {
	s.mu.Lock()
	promo := s.appliedPromo
	s.mu.Unlock()

	subtotal := s.cart.Total()
	discount := subtotal * PromoCodes[promo]

	return CartSummary{
		Subtotal:    subtotal,
		DeliveryFee: s.deliveryFee,
		Discount:    discount,
		Total:       math.Round(subtotal + s.deliveryFee - discount),
		PromoCode:   promo,
		ItemsCount:  s.cart.ItemsCount(),
	}
}

var _ CartServiceInterface = (*CartService)(nil)
