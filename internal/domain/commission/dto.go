package commission

import (
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SetEntryRequest struct {
	EmployeeID string          `json:"employee_id"`
	ProductID  string          `json:"product_id"`
	C1         decimal.Decimal `json:"c1"`
	C2         decimal.Decimal `json:"c2"`
	C3         decimal.Decimal `json:"c3"`
}

func (r *SetEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ProductID) {
		errs = append(errs, validator.ValidationError{Field: "product_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkApplyRequest writes the provided tiers to every product for one
// employee. A nil tier is left untouched on each product entry; at least one
// tier must be provided.
type BulkApplyRequest struct {
	EmployeeID string           `json:"-"`
	C1         *decimal.Decimal `json:"c1,omitempty"`
	C2         *decimal.Decimal `json:"c2,omitempty"`
	C3         *decimal.Decimal `json:"c3,omitempty"`
}

func (r *BulkApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.C1 == nil && r.C2 == nil && r.C3 == nil {
		errs = append(errs, validator.ValidationError{Field: "tiers", Message: "at least one of c1, c2, c3 is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	EmployeeID string          `json:"employee_id"`
	ProductID  string          `json:"product_id"`
	C1         decimal.Decimal `json:"c1"`
	C2         decimal.Decimal `json:"c2"`
	C3         decimal.Decimal `json:"c3"`
}

type BulkApplyResponse struct {
	EmployeeID      string `json:"employee_id"`
	ProductsUpdated int    `json:"products_updated"`
}
