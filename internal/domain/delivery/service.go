package delivery

import "context"

type DeliveryService interface {
	CreateDelivery(ctx context.Context, req CreateDeliveryRequest) (DeliveryResponse, error)
	GetDelivery(ctx context.Context, id string) (DeliveryResponse, error)
	ListDeliveries(ctx context.Context, filter DeliveryFilter) (ListDeliveryResponse, error)

	// Transition advances a delivery along the pipeline; invalid moves fail
	// with ErrInvalidTransition.
	Transition(ctx context.Context, req TransitionRequest) (DeliveryResponse, error)

	// CreateSettlement snapshots the driver's delivered totals for a month.
	CreateSettlement(ctx context.Context, req CreateSettlementRequest) (SettlementResponse, error)
	GetSettlement(ctx context.Context, id string) (SettlementResponse, error)
	ListSettlements(ctx context.Context, driverID *string) ([]SettlementResponse, error)

	// DecideSettlement approves or rejects a pending settlement exactly once.
	DecideSettlement(ctx context.Context, req DecideSettlementRequest) (SettlementResponse, error)
}
