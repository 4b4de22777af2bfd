package cart

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrItemNotFound    = errors.New("cart item not found")
)

// StockExceededError rejects a request that would push a line past the
// available stock; it carries the limiting quantity for the caller.
type StockExceededError struct {
	MaterialID string
	Available  int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: only %d units available", e.MaterialID, e.Available)
}
