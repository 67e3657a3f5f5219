package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType enum
type MovementType string

const (
	MovementIn       MovementType = "in"
	MovementOut      MovementType = "out"
	MovementTransfer MovementType = "transfer"
)

func (t MovementType) Valid() bool {
	switch t {
	case MovementIn, MovementOut, MovementTransfer:
		return true
	}
	return false
}

// Movement is one stock event. "in" fills ToLocation, "out" drains
// FromLocation, "transfer" uses both on a single record so the two sides
// cannot drift apart.
type Movement struct {
	ID           string
	ProductID    string
	Type         MovementType
	FromLocation *string
	ToLocation   *string
	Quantity     decimal.Decimal
	Date         time.Time
	Note         *string
	CreatedAt    time.Time
}

// Level is the computed quantity of one product at one location. Negative
// levels are reported as-is; stock corrections go through movements.
type Level struct {
	ProductID string
	Location  string
	Quantity  decimal.Decimal
}
