package commission

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is the commission owed to one employee for selling one product, as a
// flat MAD amount per price tier (C1..C3 match the product's prix1..prix3).
// Absence of an entry means zero commission for that pair.
type Entry struct {
	EmployeeID string
	ProductID  string
	C1         decimal.Decimal
	C2         decimal.Decimal
	C3         decimal.Decimal
	UpdatedAt  time.Time
}
