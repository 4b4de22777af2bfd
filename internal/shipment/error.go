package shipment

import "errors"

var (
	ErrNotificationNotFound = errors.New("ship notification not found")
	ErrShipItemNotFound     = errors.New("ship item not found")
	ErrMissingField         = errors.New("missing required field")
	ErrInvalidStatus        = errors.New("invalid ship notification status change")
	ErrInvalidStockStatus   = errors.New("invalid stock status")
)
