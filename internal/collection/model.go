package collection

import (
	"time"

	"logisa-be/internal/address"
	"logisa-be/internal/user"
)

type Status string

const (
	StatusProcessing       Status = "processing"
	StatusAwaitingQuote    Status = "awaiting quote"
	StatusAwaitingApproval Status = "awaiting approval"
	StatusApproved         Status = "approved"
	StatusRejected         Status = "rejected"
	StatusCollected        Status = "collected"
	StatusCompleted        Status = "completed"
	StatusCancelled        Status = "cancelled"
)

// CollectionDetails is a waste/returns collection request with an optional
// quote round-trip before approval.
type CollectionDetails struct {
	ID                   string          `json:"id"`
	UserID               string          `json:"user_id"`
	User                 *user.User      `json:"user,omitempty"`
	CompanyID            string          `json:"company_id"`
	Status               Status          `json:"status"`
	RequestedQuote       bool            `json:"requested_quote"`
	CollectionDate       time.Time       `json:"collection_date"`
	ActualCollectionDate *time.Time      `json:"actual_collection_date,omitempty"`
	Price                float64         `json:"price"`
	CollectionAddress    address.Address `json:"collection_address"`
	QuoteBy              string          `json:"quote_by,omitempty"`
	QuoteDate            *time.Time      `json:"quote_date,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

var transitions = map[Status][]Status{
	StatusProcessing:       {StatusAwaitingApproval, StatusCollected, StatusCancelled},
	StatusAwaitingQuote:    {StatusAwaitingApproval, StatusCancelled},
	StatusAwaitingApproval: {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:         {StatusCollected, StatusCancelled},
	StatusCollected:        {StatusCompleted},
}

func ValidTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
