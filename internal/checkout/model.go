package checkout

import (
	"logisa-be/internal/cart"
	"logisa-be/internal/delivery"
)

// Step identifies a page of the checkout flow. Each step carries entry
// guards; violating one yields a *RedirectError naming where to go instead.
type Step string

const (
	StepCart         Step = "cart"
	StepAddress      Step = "address"
	StepReview       Step = "review"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// Session is the per-user checkout progress, persisted alongside the cart.
// CartCleared guards the confirmation side effect so it fires at most once
// per order.
type Session struct {
	Step        Step   `json:"step"`
	OrderID     string `json:"order_id,omitempty"`
	CartCleared bool   `json:"cart_cleared,omitempty"`
}

// SummaryLine is a display-only row on the review summary, used for the
// promotional free item. It is never merged into the cart's real items.
type SummaryLine struct {
	MaterialID string  `json:"material_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type Summary struct {
	Items          []cart.CartItem `json:"items"`
	Subtotal       float64         `json:"subtotal"`
	DeliveryMethod delivery.Method `json:"delivery_method,omitempty"`
	DeliveryPrice  float64         `json:"delivery_price"`
	Total          float64         `json:"total"`
	FreeItem       *SummaryLine    `json:"free_item,omitempty"`
}
