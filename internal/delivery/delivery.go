// Package delivery holds the fixed set of shipping speed tiers.
package delivery

import (
	"errors"
	"fmt"
)

type Method string

const (
	MethodNextDay  Method = "next-day"
	MethodTwoDay   Method = "two-day"
	MethodStandard Method = "standard"
)

type Option struct {
	ID            Method  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	EstimatedDays string  `json:"estimated_days"`
}

var ErrMethodNotFound = errors.New("delivery method not found")

var options = []Option{
	{
		ID:            MethodNextDay,
		Name:          "Next Day Delivery",
		Description:   "Delivered by end of next business day",
		Price:         19.99,
		EstimatedDays: "1 business day",
	},
	{
		ID:            MethodTwoDay,
		Name:          "2-Day Delivery",
		Description:   "Delivered within 2 business days",
		Price:         9.99,
		EstimatedDays: "2 business days",
	},
	{
		ID:            MethodStandard,
		Name:          "Standard Shipping",
		Description:   "Delivered within 3-5 business days",
		Price:         4.99,
		EstimatedDays: "3-5 business days",
	},
}

// Options returns all tiers in display order.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Lookup resolves a method id. Callers must guard a nil/empty method before
// calling; an unknown id is a NotFound error, never a zero-priced option.
func Lookup(m Method) (Option, error) {
	for _, opt := range options {
		if opt.ID == m {
			return opt, nil
		}
	}
	return Option{}, fmt.Errorf("%w: %s", ErrMethodNotFound, m)
}
