package delivery

import "errors"

var (
	ErrDeliveryNotFound         = errors.New("delivery not found")
	ErrSettlementNotFound       = errors.New("settlement not found")
	ErrInvalidTransition        = errors.New("invalid delivery status transition")
	ErrSettlementAlreadyDecided = errors.New("settlement has already been approved or rejected")
	ErrNoDeliveredForPeriod     = errors.New("no delivered deliveries for this driver and month")
	ErrSettlementAlreadyExists  = errors.New("settlement already exists for this driver and month")
)
