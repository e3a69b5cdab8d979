package service

import "quickbite/internal/domain"

type FavoritesService struct {
	catalog   CatalogRepository
	favorites FavoritesRepository
}

func NewFavoritesService(catalog CatalogRepository, favorites FavoritesRepository) *FavoritesService {
	return &FavoritesService{catalog: catalog, favorites: favorites}
}

// Toggle flips the favorite flag for a known restaurant and reports the new
// state.
func (s *FavoritesService) Toggle(restaurantID string) (bool, error) {
	if _, ok := s.catalog.GetRestaurant(restaurantID); !ok {
		return false, ErrRestaurantNotFound
	}
	return s.favorites.Toggle(restaurantID), nil
}

func (s *FavoritesService) List() []domain.Restaurant {
	restaurants := []domain.Restaurant{}
	for _, id := range s.favorites.List() {
		if rest, ok := s.catalog.GetRestaurant(id); ok {
			restaurants = append(restaurants, rest)
		}
	}
	return restaurants
}

var _ FavoritesServiceInterface = (*FavoritesService)(nil)
