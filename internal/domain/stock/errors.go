package stock

import "errors"

var (
	ErrMovementNotFound = errors.New("stock movement not found")
)
