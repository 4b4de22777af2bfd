package collection

import "errors"

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidTransition  = errors.New("invalid collection status transition")
)
