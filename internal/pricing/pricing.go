// Package pricing holds the cart/checkout money derivations. Amounts are
// GBP; totals are recomputed on read and frozen only when an order is cut.
package pricing

import (
	"logisa-be/internal/cart"
	"logisa-be/internal/delivery"
)

// Promotional rule: carts at or above the threshold show one free unit of
// the designated material on the summary. Display-only; the free line is
// never merged into the cart's real item list.
const (
	FreeItemThreshold  = 50.00
	FreeItemMaterialID = "m8"
)

func Subtotal(items []cart.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Material.Price * float64(item.Quantity)
	}
	return sum
}

// Total adds the delivery surcharge. Callers must guard an unselected
// method; an unknown one fails rather than pricing at zero.
func Total(items []cart.CartItem, method delivery.Method) (float64, error) {
	opt, err := delivery.Lookup(method)
	if err != nil {
		return 0, err
	}
	return Subtotal(items) + opt.Price, nil
}

func QualifiesForFreeItem(subtotal float64) bool {
	return subtotal >= FreeItemThreshold
}
