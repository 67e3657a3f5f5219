package stock

import "context"

type StockService interface {
	RecordMovement(ctx context.Context, req CreateMovementRequest) (MovementResponse, error)
	GetMovement(ctx context.Context, id string) (MovementResponse, error)
	ListMovements(ctx context.Context, filter MovementFilter) (ListMovementResponse, error)
	DeleteMovement(ctx context.Context, id string) error
	GetLevels(ctx context.Context, productID string) ([]LevelResponse, error)
}
