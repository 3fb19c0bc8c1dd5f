package handlers

import (
	"seastore/internal/api"
	"seastore/internal/cache"
	"seastore/internal/config"
	"seastore/internal/services"
	"seastore/internal/session"
)

type Deps struct {
	HomeHandler     *HomeHandler
	CategoryHandler *CategoryHandler
	CartHandler     *CartHandler
	WishlistHandler *WishlistHandler
	OrderHandler    *OrderHandler
	AddressHandler  *AddressHandler
	AdminHandler    *AdminHandler
}

func NewDeps(cfg config.Config, client *api.Client, sessions *session.Store, caches *cache.Registry) *Deps {
	catalogSvc := services.NewCatalogService(client)
	cartSvc := services.NewCartService(client)
	wishSvc := services.NewWishlistService(client)
	orderSvc := services.NewOrderService(client)
	adminSvc := services.NewAdminService(client)

	return &Deps{
		HomeHandler:     &HomeHandler{Catalog: catalogSvc},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc, Cart: cartSvc, Wish: wishSvc, Caches: caches, AdminEmail: cfg.AdminEmail},
		CartHandler:     &CartHandler{Cart: cartSvc, Orders: orderSvc, Caches: caches},
		WishlistHandler: &WishlistHandler{Wish: wishSvc, Cart: cartSvc, Caches: caches},
		OrderHandler:    &OrderHandler{Orders: orderSvc},
		AddressHandler:  &AddressHandler{},
		AdminHandler:    &AdminHandler{Admin: adminSvc, Catalog: catalogSvc},
	}
}
