package payment

import "context"

type PaymentService interface {
	// Calculate returns the salary breakdown for an employee and month. It is
	// pure with respect to stored state: nothing is persisted, and identical
	// inputs always produce the identical breakdown.
	Calculate(ctx context.Context, employeeID, month string) (BreakdownResponse, error)

	CreatePayment(ctx context.Context, req CreatePaymentRequest) (PaymentResponse, error)
	CreateFromCalculation(ctx context.Context, req CreateFromCalculationRequest) (PaymentResponse, error)
	GetPayment(ctx context.Context, id string) (PaymentResponse, error)
	ListPayments(ctx context.Context, filter PaymentFilter) (ListPaymentResponse, error)
	UpdatePayment(ctx context.Context, req UpdatePaymentRequest) (PaymentResponse, error)
	DeletePayment(ctx context.Context, id string) error
}
