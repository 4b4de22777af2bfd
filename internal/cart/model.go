package cart

import (
	"logisa-be/internal/address"
	"logisa-be/internal/catalog"
	"logisa-be/internal/delivery"
)

// CartItem denormalizes the Material at add time. A later catalog price
// change must not alter lines already in a cart or an order.
type CartItem struct {
	MaterialID string           `json:"material_id"`
	Material   catalog.Material `json:"material"`
	Quantity   int              `json:"quantity"`
}

// State is the whole cart for one user. It is persisted in full after every
// transition and reloaded on first touch.
type State struct {
	Items           []CartItem       `json:"items"`
	SelectedAddress *address.Address `json:"selected_address,omitempty"`
	DeliveryMethod  delivery.Method  `json:"delivery_method,omitempty"`
}

// Subtotal is derived on read, never stored.
func (s State) Subtotal() float64 {
	var sum float64
	for _, item := range s.Items {
		sum += item.Material.Price * float64(item.Quantity)
	}
	return sum
}

func (s State) Find(materialID string) (CartItem, bool) {
	for _, item := range s.Items {
		if item.MaterialID == materialID {
			return item, true
		}
	}
	return CartItem{}, false
}
