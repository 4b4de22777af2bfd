package catalog

import "errors"

var (
	ErrMaterialNotFound = errors.New("material not found")
	ErrGroupNotFound    = errors.New("material group not found")
)
