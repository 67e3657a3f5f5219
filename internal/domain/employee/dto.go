package employee

import (
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName    string          `json:"full_name"`
	Role        string          `json:"role"`
	Business    string          `json:"business"`
	Salary      decimal.Decimal `json:"salary"`
	Permissions []string        `json:"permissions,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	FullName    *string          `json:"full_name,omitempty"`
	Role        *string          `json:"role,omitempty"`
	Business    *string          `json:"business,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	Active      *bool            `json:"active,omitempty"`
	Permissions *[]string        `json:"permissions,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	Role        string          `json:"role"`
	Business    string          `json:"business"`
	Salary      decimal.Decimal `json:"salary"`
	Active      bool            `json:"active"`
	Permissions []string        `json:"permissions"`
}
