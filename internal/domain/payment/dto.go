package payment

import (
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest is a manual payment entry. The amount field depends on
// the type: Basic for Salaire, Amount for Avance and Prime.
type CreatePaymentRequest struct {
	EmployeeID string           `json:"employee_id"`
	Month      string           `json:"month"` // YYYY-MM
	Date       *string          `json:"date,omitempty"`
	Type       string           `json:"type"`
	Basic      *decimal.Decimal `json:"basic,omitempty"`
	Commission *decimal.Decimal `json:"commission,omitempty"`
	Deduction  *decimal.Decimal `json:"deduction,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Method     string           `json:"method"`
	ProofURL   *string          `json:"proof_url,omitempty"`
}

func (r *CreatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a valid YYYY-MM month"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
		}
	}

	switch PaymentType(r.Type) {
	case TypeSalaire:
		if r.Basic == nil {
			errs = append(errs, validator.ValidationError{Field: "basic", Message: "is required for Salaire"})
		}
	case TypeAvance, TypePrime:
		if r.Amount == nil {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "is required for " + r.Type})
		} else if !r.Amount.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be Salaire, Avance or Prime"})
	}

	if !PaymentMethod(r.Method).Valid() {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "must be Virement, Espèces or Chèque"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateFromCalculationRequest persists a Salaire record straight from the
// calculator's breakdown for the employee and month.
type CreateFromCalculationRequest struct {
	EmployeeID string  `json:"employee_id"`
	Month      string  `json:"month"`
	Date       *string `json:"date,omitempty"`
	Method     string  `json:"method"`
	ProofURL   *string `json:"proof_url,omitempty"`
}

func (r *CreateFromCalculationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a valid YYYY-MM month"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
		}
	}
	if !PaymentMethod(r.Method).Valid() {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "must be Virement, Espèces or Chèque"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePaymentRequest struct {
	ID string `json:"-"`
	// Type is accepted only so a mismatch can be rejected explicitly.
	Type       *string          `json:"type,omitempty"`
	Date       *string          `json:"date,omitempty"`
	Basic      *decimal.Decimal `json:"basic,omitempty"`
	Commission *decimal.Decimal `json:"commission,omitempty"`
	Deduction  *decimal.Decimal `json:"deduction,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Method     *string          `json:"method,omitempty"`
	ProofURL   *string          `json:"proof_url,omitempty"`
}

func (r *UpdatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
		}
	}
	if r.Method != nil && !PaymentMethod(*r.Method).Valid() {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "must be Virement, Espèces or Chèque"})
	}
	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Month        string          `json:"month"`
	Date         string          `json:"date"`
	Type         string          `json:"type"`
	Basic        decimal.Decimal `json:"basic"`
	Commission   decimal.Decimal `json:"commission"`
	Deduction    decimal.Decimal `json:"deduction"`
	Net          decimal.Decimal `json:"net"`
	Method       string          `json:"method"`
	ProofURL     *string         `json:"proof_url,omitempty"`
}

// BreakdownResponse mirrors Breakdown for display; net is left to the caller.
type BreakdownResponse struct {
	EmployeeID string          `json:"employee_id"`
	Month      string          `json:"month"`
	Basic      decimal.Decimal `json:"basic"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Commission decimal.Decimal `json:"commission"`
	Deduction  decimal.Decimal `json:"deduction"`
}

type PaymentFilter struct {
	EmployeeID *string
	Month      *string
	Type       *string
	Page       int
	Limit      int
}

type ListPaymentResponse struct {
	Data       []PaymentResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
