package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product carries the three price tiers commission entries are keyed on.
type Product struct {
	ID        string
	Name      string
	SKU       *string
	Prix1     decimal.Decimal
	Prix2     decimal.Decimal
	Prix3     decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductionBatch records the cost of producing a quantity of one product.
// UnitCost = (MaterialCost + LaborCost + OverheadCost) / Quantity.
type ProductionBatch struct {
	ID           string
	ProductID    string
	Date         time.Time
	Quantity     decimal.Decimal
	MaterialCost decimal.Decimal
	LaborCost    decimal.Decimal
	OverheadCost decimal.Decimal
	UnitCost     decimal.Decimal
	Note         *string
	CreatedAt    time.Time
}
