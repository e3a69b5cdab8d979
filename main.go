package main

import (
	"log"
	"net/http"

	"quickbite/config"
	httpapi "quickbite/internal/api/http"
	"quickbite/internal/service"
	"quickbite/internal/storage"
)

func main() {
	cfg := config.Load()

	catalog := storage.DefaultCatalog()
	ids := storage.UUIDGenerator{}
	cartStore := storage.NewCartStore(ids)
	ordersStore := storage.NewOrdersStore()
	favoritesStore := storage.NewFavoritesStore()

	catalogSvc := service.NewCatalogService(catalog)
	cartSvc := service.NewCartService(catalog, cartStore, cfg.Delivery.Fee)
	orderSvc := service.NewOrderService(catalog, cartSvc, ordersStore, ids, service.DefaultQRGenerator{BaseURL: cfg.QR.BaseURL})
	favoritesSvc := service.NewFavoritesService(catalog, favoritesStore)

	handler := httpapi.NewHandler(catalogSvc, cartSvc, orderSvc, favoritesSvc)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpapi.NewRouter(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("[quickbite] starting on port %s", cfg.Server.Port)
	log.Fatal(server.ListenAndServe())
}
