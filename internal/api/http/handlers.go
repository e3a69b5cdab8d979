package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"quickbite/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog   service.CatalogServiceInterface
	Cart      service.CartServiceInterface
	Orders    service.OrderServiceInterface
	Favorites service.FavoritesServiceInterface
}

func NewHandler(catalog service.CatalogServiceInterface, cart service.CartServiceInterface, orders service.OrderServiceInterface, favorites service.FavoritesServiceInterface) *Handler {
	return &Handler{Catalog: catalog, Cart: cart, Orders: orders, Favorites: favorites}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/dishes", h.getRestaurantDishes).Methods("GET")
	r.HandleFunc("/api/dishes/{id}", h.getDish).Methods("GET")
	r.HandleFunc("/api/addresses", h.getAddresses).Methods("GET")
	r.HandleFunc("/api/payment-methods", h.getPaymentMethods).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.updateCartItem).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart/summary", h.getCartSummary).Methods("GET")
	r.HandleFunc("/api/cart/promo", h.applyPromo).Methods("POST")
	r.HandleFunc("/api/cart/promo", h.removePromo).Methods("DELETE")

	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/favorites", h.getFavorites).Methods("GET")
	r.HandleFunc("/api/favorites/{restaurantId}", h.toggleFavorite).Methods("POST")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "quickbite",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Categories())
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	writeJSON(w, http.StatusOK, h.Catalog.Restaurants(query, category))
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.Restaurant(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getRestaurantDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Catalog.RestaurantDishes(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	dish, err := h.Catalog.Dish(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) getAddresses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Addresses())
}

func (h *Handler) getPaymentMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.PaymentMethods())
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":   h.Cart.Items(),
		"summary": h.Cart.Summary(),
	})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DishID    string   `json:"dish_id"`
		Quantity  int      `json:"quantity"`
		SizeID    string   `json:"size_id"`
		OptionIDs []string `json:"option_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.Cart.AddItem(payload.DishID, payload.Quantity, payload.SizeID, payload.OptionIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDishNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Unknown ids are a silent no-op; zero or negative quantity removes the line.
	h.Cart.UpdateQuantity(mux.Vars(r)["id"], payload.Quantity)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":   h.Cart.Items(),
		"summary": h.Cart.Summary(),
	})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.Cart.RemoveItem(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCartSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Cart.Summary())
}

func (h *Handler) applyPromo(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.Cart.ApplyPromo(payload.Code)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) removePromo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Cart.RemovePromo())
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Checkout(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAddressNotFound), errors.Is(err, service.ErrPaymentMethodNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Orders.List())
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.QRCode(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Favorites.List())
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	favorite, err := h.Favorites.Toggle(mux.Vars(r)["restaurantId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"favorite": favorite})
}
