package service

import (
	"errors"
	"time"

	"quickbite/internal/domain"
)

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrAddressNotFound       = errors.New("address not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrOrderNotFound         = errors.New("order not found")
)

// asapEstimate is shown when the user asked for the nearest slot; a
// scheduled delivery time is passed through verbatim instead.
const asapEstimate = "30-40 мин"

type CheckoutRequest struct {
	AddressID       string `json:"address_id"`
	PaymentMethodID string `json:"payment_method_id"`
	DeliveryTime    string `json:"delivery_time"`
	Comment         string `json:"comment,omitempty"`
}

type OrderService struct {
	catalog CatalogRepository
	cart    CartServiceInterface
	orders  OrderRepository
	ids     IDGenerator
	qr      QRGenerator
}

func NewOrderService(catalog CatalogRepository, cart CartServiceInterface, orders OrderRepository, ids IDGenerator, qr QRGenerator) *OrderService {
	return &OrderService{catalog: catalog, cart: cart, orders: orders, ids: ids, qr: qr}
}

// Checkout snapshots the cart plus the chosen address and payment method
// into a confirmed order, stores it and clears the cart. The order is never
// mutated afterwards; there is no backend to advance its status.
func (s *OrderService) Checkout(req CheckoutRequest) (domain.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	address, ok := s.catalog.GetAddress(req.AddressID)
	if !ok {
		return domain.Order{}, ErrAddressNotFound
	}

	payment, ok := s.catalog.GetPaymentMethod(req.PaymentMethodID)
	if !ok {
		return domain.Order{}, ErrPaymentMethodNotFound
	}

	deliveryTime := req.DeliveryTime
	if deliveryTime == "" {
		deliveryTime = domain.DeliveryTimeASAP
	}
	estimate := deliveryTime
	if deliveryTime == domain.DeliveryTimeASAP {
		estimate = asapEstimate
	}

	summary := s.cart.Summary()
	order := domain.Order{
		ID:                    s.ids.NewID(),
		Items:                 items,
		Subtotal:              summary.Subtotal,
		DeliveryFee:           summary.DeliveryFee,
		Discount:              summary.Discount,
		Total:                 summary.Total,
		Address:               address,
		PaymentMethod:         payment,
		DeliveryTime:          deliveryTime,
		Comment:               req.Comment,
		Status:                domain.OrderStatusConfirmed,
		EstimatedDeliveryTime: estimate,
		CreatedAt:             time.Now(),
	}

	s.orders.Add(order)
	s.cart.Clear()

	return order, nil
}

func (s *OrderService) Get(id string) (domain.Order, error) {
	order, ok := s.orders.GetByID(id)
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) List() []domain.Order {
	return s.orders.List()
}

// QRCode renders a scannable link back to the order resource.
func (s *OrderService) QRCode(orderID string) ([]byte, error) {
	if _, ok := s.orders.GetByID(orderID); !ok {
		return nil, ErrOrderNotFound
	}
	return s.qr.Generate(orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
