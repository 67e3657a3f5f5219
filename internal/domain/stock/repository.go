package stock

import "context"

type StockRepository interface {
	Create(ctx context.Context, movement Movement) (Movement, error)
	GetByID(ctx context.Context, id string) (Movement, error)
	List(ctx context.Context, filter MovementFilter) ([]Movement, int64, error)
	Delete(ctx context.Context, id string) error

	// Levels aggregates inbound minus outbound per location for one product.
	Levels(ctx context.Context, productID string) ([]Level, error)
}
