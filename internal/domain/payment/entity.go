package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType enum. The type is chosen at creation and immutable afterwards;
// it selects how basic/commission/deduction/net are derived.
type PaymentType string

const (
	// TypeSalaire is a regular monthly salary payment.
	TypeSalaire PaymentType = "Salaire"
	// TypeAvance is a cash advance against future pay, recorded as negative net.
	TypeAvance PaymentType = "Avance"
	// TypePrime is a bonus outside normal salary, recorded as positive net.
	TypePrime PaymentType = "Prime"
)

func (t PaymentType) Valid() bool {
	switch t {
	case TypeSalaire, TypeAvance, TypePrime:
		return true
	}
	return false
}

// PaymentMethod enum
type PaymentMethod string

const (
	MethodVirement PaymentMethod = "Virement"
	MethodEspeces  PaymentMethod = "Espèces"
	MethodCheque   PaymentMethod = "Chèque"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodVirement, MethodEspeces, MethodCheque:
		return true
	}
	return false
}

// PaymentRecord is one payment event for an employee in a month.
// Invariant: Net = Basic + Commission - Deduction, for every type.
type PaymentRecord struct {
	ID         string
	EmployeeID string
	Month      string // YYYY-MM
	Date       time.Time
	Type       PaymentType
	Basic      decimal.Decimal
	Commission decimal.Decimal
	Deduction  decimal.Decimal
	Net        decimal.Decimal
	Method     PaymentMethod
	ProofURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// Breakdown is the audit view the calculator produces for one employee and
// month. Net is not part of it; the lifecycle derives net from the breakdown.
type Breakdown struct {
	Basic      decimal.Decimal
	DailyRate  decimal.Decimal
	HourlyRate decimal.Decimal
	Commission decimal.Decimal
	Deduction  decimal.Decimal
}
