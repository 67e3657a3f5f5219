package payment

import "context"

type PaymentRepository interface {
	Create(ctx context.Context, record PaymentRecord) (PaymentRecord, error)
	GetByID(ctx context.Context, id string) (PaymentRecord, error)
	List(ctx context.Context, filter PaymentFilter) ([]PaymentRecord, int64, error)

	// Update persists a fully derived record; the service recomputes the
	// amounts before calling it, repositories never re-derive.
	Update(ctx context.Context, record PaymentRecord) error
	Delete(ctx context.Context, id string) error
}
