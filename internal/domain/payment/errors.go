package payment

import "errors"

var (
	ErrPaymentNotFound      = errors.New("payment record not found")
	ErrInvalidPaymentType   = errors.New("invalid payment type")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	// ErrTypeImmutable: editing a payment never changes its type. Re-typing a
	// persisted record is an unsupported operation, not a silent overwrite.
	ErrTypeImmutable = errors.New("payment type cannot be changed after creation")
)
