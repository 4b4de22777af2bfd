package order

import (
	"time"

	"logisa-be/internal/address"
	"logisa-be/internal/cart"
	"logisa-be/internal/delivery"
	"logisa-be/internal/user"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

// Order freezes the cart at checkout: items, address and total are
// snapshots and are never recomputed from the live catalog.
type Order struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	User           *user.User      `json:"user,omitempty"`
	CompanyID      string          `json:"company_id"`
	Items          []cart.CartItem `json:"items"`
	Address        address.Address `json:"address"`
	DeliveryMethod delivery.Method `json:"delivery_method"`
	Status         Status          `json:"status"`
	Total          float64         `json:"total"`
	CreatedAt      time.Time       `json:"created_at"`
	ApprovedByID   string          `json:"approved_by_id,omitempty"`
	ApprovedBy     *user.User      `json:"approved_by,omitempty"`
}

// transitions is the full status chain; approval decisions are single-shot
// and irreversible.
var transitions = map[Status][]Status{
	StatusPending:    {StatusApproved, StatusRejected},
	StatusApproved:   {StatusProcessing},
	StatusProcessing: {StatusShipped},
	StatusShipped:    {StatusDelivered},
}

func ValidTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// GroupByStatus partitions orders into status buckets, preserving the
// original relative order inside each bucket.
func GroupByStatus(orders []Order) map[Status][]Order {
	grouped := make(map[Status][]Order)
	for _, o := range orders {
		grouped[o.Status] = append(grouped[o.Status], o)
	}
	return grouped
}
