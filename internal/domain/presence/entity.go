package presence

import (
	"time"

	"github.com/shopspring/decimal"
)

// PresenceRecord is a signed day/hour adjustment for one employee on one date.
// Several records may exist for the same employee and date. EmployeeID is nil
// for orphaned rows whose employee was deleted; such rows are kept and simply
// never match an aggregation.
//
// Magnitudes are intentionally unbounded: admins use large values as flexible
// pay corrections, not literal attendance (seed data carries daysAdj of 120
// and hoursAdj of -300).
type PresenceRecord struct {
	ID         string
	EmployeeID *string
	Date       time.Time
	DaysAdj    decimal.Decimal
	HoursAdj   decimal.Decimal
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
