package catalog

import "errors"

var (
	ErrNotFound      = errors.New("catalog: not found")
	ErrCategoryInUse = errors.New("catalog: category still has products")
)
