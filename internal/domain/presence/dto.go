package presence

import (
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePresenceRequest struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"` // YYYY-MM-DD
	DaysAdj    decimal.Decimal `json:"days_adj"`
	HoursAdj   decimal.Decimal `json:"hours_adj"`
	Note       *string         `json:"note,omitempty"`
}

func (r *CreatePresenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePresenceRequest struct {
	ID       string           `json:"-"`
	Date     *string          `json:"date,omitempty"`
	DaysAdj  *decimal.Decimal `json:"days_adj,omitempty"`
	HoursAdj *decimal.Decimal `json:"hours_adj,omitempty"`
	Note     *string          `json:"note,omitempty"`
}

func (r *UpdatePresenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PresenceResponse struct {
	ID         string          `json:"id"`
	EmployeeID *string         `json:"employee_id,omitempty"`
	Date       string          `json:"date"`
	DaysAdj    decimal.Decimal `json:"days_adj"`
	HoursAdj   decimal.Decimal `json:"hours_adj"`
	Note       *string         `json:"note,omitempty"`
}

// PresenceImpact is one record decomposed against the employee's rates for
// audit display. DayImpact and HourImpact keep the sign of the adjustment.
type PresenceImpact struct {
	RecordID   string          `json:"record_id"`
	Date       string          `json:"date"`
	DaysAdj    decimal.Decimal `json:"days_adj"`
	HoursAdj   decimal.Decimal `json:"hours_adj"`
	DayImpact  decimal.Decimal `json:"day_impact"`
	HourImpact decimal.Decimal `json:"hour_impact"`
	Note       *string         `json:"note,omitempty"`
}

type MonthlySummaryResponse struct {
	EmployeeID    string           `json:"employee_id"`
	Month         string           `json:"month"`
	TotalDaysAdj  decimal.Decimal  `json:"total_days_adj"`
	TotalHoursAdj decimal.Decimal  `json:"total_hours_adj"`
	Records       []PresenceImpact `json:"records"`
}

type PresenceFilter struct {
	EmployeeID *string
	Month      *string // YYYY-MM
	Page       int
	Limit      int
}

type ListPresenceResponse struct {
	Data       []PresenceResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
