package product

import (
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name  string          `json:"name"`
	SKU   *string         `json:"sku,omitempty"`
	Prix1 decimal.Decimal `json:"prix1"`
	Prix2 decimal.Decimal `json:"prix2"`
	Prix3 decimal.Decimal `json:"prix3"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	for field, p := range map[string]decimal.Decimal{"prix1": r.Prix1, "prix2": r.Prix2, "prix3": r.Prix3} {
		if p.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProductRequest struct {
	ID     string           `json:"-"`
	Name   *string          `json:"name,omitempty"`
	SKU    *string          `json:"sku,omitempty"`
	Prix1  *decimal.Decimal `json:"prix1,omitempty"`
	Prix2  *decimal.Decimal `json:"prix2,omitempty"`
	Prix3  *decimal.Decimal `json:"prix3,omitempty"`
	Active *bool            `json:"active,omitempty"`
}

type ProductResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	SKU    *string         `json:"sku,omitempty"`
	Prix1  decimal.Decimal `json:"prix1"`
	Prix2  decimal.Decimal `json:"prix2"`
	Prix3  decimal.Decimal `json:"prix3"`
	Active bool            `json:"active"`
}

type CreateBatchRequest struct {
	ProductID    string          `json:"product_id"`
	Date         string          `json:"date"`
	Quantity     decimal.Decimal `json:"quantity"`
	MaterialCost decimal.Decimal `json:"material_cost"`
	LaborCost    decimal.Decimal `json:"labor_cost"`
	OverheadCost decimal.Decimal `json:"overhead_cost"`
	Note         *string         `json:"note,omitempty"`
}

func (r *CreateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProductID) {
		errs = append(errs, validator.ValidationError{Field: "product_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if !r.Quantity.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be positive"})
	}
	for field, c := range map[string]decimal.Decimal{"material_cost": r.MaterialCost, "labor_cost": r.LaborCost, "overhead_cost": r.OverheadCost} {
		if c.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Date         string          `json:"date"`
	Quantity     decimal.Decimal `json:"quantity"`
	MaterialCost decimal.Decimal `json:"material_cost"`
	LaborCost    decimal.Decimal `json:"labor_cost"`
	OverheadCost decimal.Decimal `json:"overhead_cost"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Note         *string         `json:"note,omitempty"`
}
