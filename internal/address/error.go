package address

import "errors"

var (
	ErrAddressNotFound = errors.New("address not found")
	ErrMissingField    = errors.New("missing required address field")
)
