package delivery

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryStatus enum. Transitions only move forward through the pipeline;
// delivered and returned are terminal.
type DeliveryStatus string

const (
	StatusPending   DeliveryStatus = "pending"
	StatusAssigned  DeliveryStatus = "assigned"
	StatusInTransit DeliveryStatus = "in_transit"
	StatusDelivered DeliveryStatus = "delivered"
	StatusReturned  DeliveryStatus = "returned"
)

// CanTransition reports whether a delivery may move from s to next.
func (s DeliveryStatus) CanTransition(next DeliveryStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusAssigned
	case StatusAssigned:
		return next == StatusInTransit
	case StatusInTransit:
		return next == StatusDelivered || next == StatusReturned
	}
	return false
}

type Delivery struct {
	ID       string
	OrderRef string
	DriverID *string
	// Destination is free text; GPS tracking is out of scope.
	Destination *string
	Amount      decimal.Decimal
	Status      DeliveryStatus
	Date        time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	DriverName *string
}

// SettlementStatus enum
type SettlementStatus string

const (
	SettlementPending  SettlementStatus = "pending"
	SettlementApproved SettlementStatus = "approved"
	SettlementRejected SettlementStatus = "rejected"
)

// Settlement totals a driver's collected amounts for one month and tracks its
// approval. A settlement is decided at most once.
type Settlement struct {
	ID             string
	DriverID       string
	Month          string // YYYY-MM
	TotalCollected decimal.Decimal
	DeliveryCount  int
	Status         SettlementStatus
	DecidedBy      *string
	DecisionNote   *string
	DecidedAt      *time.Time
	CreatedAt      time.Time

	// Joined fields
	DriverName *string
}
