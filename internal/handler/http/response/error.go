package response

import (
	"errors"
	"net/http"

	"github.com/cosmedis/backoffice-go/internal/domain/delivery"
	"github.com/cosmedis/backoffice-go/internal/domain/employee"
	"github.com/cosmedis/backoffice-go/internal/domain/payment"
	"github.com/cosmedis/backoffice-go/internal/domain/presence"
	"github.com/cosmedis/backoffice-go/internal/domain/product"
	"github.com/cosmedis/backoffice-go/internal/domain/stock"
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Presence domain errors
	case errors.Is(err, presence.ErrPresenceRecordNotFound):
		NotFound(w, "Presence record not found")

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, payment.ErrInvalidPaymentType):
		BadRequest(w, "Invalid payment type", nil)
	case errors.Is(err, payment.ErrInvalidPaymentMethod):
		BadRequest(w, "Invalid payment method", nil)
	case errors.Is(err, payment.ErrTypeImmutable):
		Conflict(w, "Payment type cannot be changed after creation")

	// Product domain errors
	case errors.Is(err, product.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, product.ErrBatchNotFound):
		NotFound(w, "Production batch not found")

	// Stock domain errors
	case errors.Is(err, stock.ErrMovementNotFound):
		NotFound(w, "Stock movement not found")

	// Delivery domain errors
	case errors.Is(err, delivery.ErrDeliveryNotFound):
		NotFound(w, "Delivery not found")
	case errors.Is(err, delivery.ErrSettlementNotFound):
		NotFound(w, "Settlement not found")
	case errors.Is(err, delivery.ErrInvalidTransition):
		Conflict(w, "Invalid delivery status transition")
	case errors.Is(err, delivery.ErrSettlementAlreadyDecided):
		Conflict(w, "Settlement has already been decided")
	case errors.Is(err, delivery.ErrSettlementAlreadyExists):
		Conflict(w, "Settlement already exists for this driver and month")
	case errors.Is(err, delivery.ErrNoDeliveredForPeriod):
		BadRequest(w, "No delivered deliveries for this driver and month", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
