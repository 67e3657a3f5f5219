package delivery

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryRepository interface {
	Create(ctx context.Context, d Delivery) (Delivery, error)
	GetByID(ctx context.Context, id string) (Delivery, error)
	Update(ctx context.Context, d Delivery) error
	List(ctx context.Context, filter DeliveryFilter) ([]Delivery, int64, error)

	// SumDeliveredByDriver totals delivered amounts for one driver in [start, end).
	SumDeliveredByDriver(ctx context.Context, driverID string, start, end time.Time) (decimal.Decimal, int, error)

	CreateSettlement(ctx context.Context, s Settlement) (Settlement, error)
	GetSettlementByID(ctx context.Context, id string) (Settlement, error)
	GetSettlementByDriverMonth(ctx context.Context, driverID, month string) (Settlement, error)
	UpdateSettlement(ctx context.Context, s Settlement) error
	ListSettlements(ctx context.Context, driverID *string) ([]Settlement, error)
}
