package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrBatchNotFound   = errors.New("production batch not found")
)
