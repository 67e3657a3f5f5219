package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID       string
	FullName string
	Role     string
	Business string
	Salary   decimal.Decimal
	Active   bool
	// Permission labels shown in the admin UI. Stored only, never enforced.
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
