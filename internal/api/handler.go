// Package api maps the portal's navigation surface onto REST routes.
package api

import (
	"logisa-be/internal/address"
	"logisa-be/internal/cart"
	"logisa-be/internal/catalog"
	"logisa-be/internal/checkout"
	"logisa-be/internal/collection"
	"logisa-be/internal/order"
	"logisa-be/internal/report"
	"logisa-be/internal/shipment"
	"logisa-be/internal/user"
)

type Handlers struct {
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Order    *OrderHandler
	Address  *AddressHandler
	Admin    *AdminHandler
}

type Services struct {
	User       user.Service
	Catalog    catalog.Service
	Cart       cart.Service
	Checkout   checkout.Service
	Order      order.Service
	Address    address.Service
	Shipment   shipment.Service
	Collection collection.Service
	Report     report.Service
}

func NewHandlers(svc Services) *Handlers {
	return &Handlers{
		Auth:     &AuthHandler{users: svc.User},
		Catalog:  &CatalogHandler{catalog: svc.Catalog},
		Cart:     &CartHandler{cart: svc.Cart},
		Checkout: &CheckoutHandler{checkout: svc.Checkout},
		Order:    &OrderHandler{orders: svc.Order},
		Address:  &AddressHandler{addresses: svc.Address},
		Admin: &AdminHandler{
			orders:      svc.Order,
			shipments:   svc.Shipment,
			collections: svc.Collection,
			reports:     svc.Report,
		},
	}
}
