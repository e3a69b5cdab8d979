package service

import (
	"errors"
	"strings"

	"quickbite/internal/domain"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrDishNotFound       = errors.New("dish not found")
)

type CatalogService struct {
	catalog CatalogRepository
}

func NewCatalogService(catalog CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) Categories() []domain.Category {
	return s.catalog.Categories()
}

// Restaurants lists restaurants, optionally narrowed by a free-text query
// (matched against name and cuisine) and a cuisine category.
func (s *CatalogService) Restaurants(query, category string) []domain.Restaurant {
	all := s.catalog.Restaurants()
	if query == "" && category == "" {
		return all
	}

	query = strings.ToLower(strings.TrimSpace(query))
	filtered := []domain.Restaurant{}
	for _, rest := range all {
		if category != "" && !hasCuisine(rest, category) {
			continue
		}
		if query != "" && !matchesQuery(rest, query) {
			continue
		}
		filtered = append(filtered, rest)
	}
	return filtered
}

func hasCuisine(rest domain.Restaurant, category string) bool {
	for _, cuisine := range rest.CuisineType {
		if strings.EqualFold(cuisine, category) {
			return true
		}
	}
	return false
}

func matchesQuery(rest domain.Restaurant, query string) bool {
	if strings.Contains(strings.ToLower(rest.Name), query) {
		return true
	}
	for _, cuisine := range rest.CuisineType {
		if strings.Contains(strings.ToLower(cuisine), query) {
			return true
		}
	}
	return false
}

func (s *CatalogService) Restaurant(id string) (domain.Restaurant, error) {
	rest, ok := s.catalog.GetRestaurant(id)
	if !ok {
		return domain.Restaurant{}, ErrRestaurantNotFound
	}
	return rest, nil
}

func (s *CatalogService) RestaurantDishes(restaurantID string) ([]domain.Dish, error) {
	if _, ok := s.catalog.GetRestaurant(restaurantID); !ok {
		return nil, ErrRestaurantNotFound
	}
	return s.catalog.DishesByRestaurant(restaurantID), nil
}

func (s *CatalogService) Dish(id string) (domain.Dish, error) {
	dish, ok := s.catalog.GetDish(id)
	if !ok {
		return domain.Dish{}, ErrDishNotFound
	}
	return dish, nil
}

func (s *CatalogService) Addresses() []domain.Address {
	return s.catalog.Addresses()
}

func (s *CatalogService) PaymentMethods() []domain.PaymentMethod {
	return s.catalog.PaymentMethods()
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
