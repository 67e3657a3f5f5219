package stock

import (
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateMovementRequest struct {
	ProductID    string          `json:"product_id"`
	Type         string          `json:"type"`
	FromLocation *string         `json:"from_location,omitempty"`
	ToLocation   *string         `json:"to_location,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Date         string          `json:"date"`
	Note         *string         `json:"note,omitempty"`
}

func (r *CreateMovementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProductID) {
		errs = append(errs, validator.ValidationError{Field: "product_id", Message: "is required"})
	}
	if !r.Quantity.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}

	switch MovementType(r.Type) {
	case MovementIn:
		if r.ToLocation == nil || validator.IsEmpty(*r.ToLocation) {
			errs = append(errs, validator.ValidationError{Field: "to_location", Message: "is required for inbound movements"})
		}
	case MovementOut:
		if r.FromLocation == nil || validator.IsEmpty(*r.FromLocation) {
			errs = append(errs, validator.ValidationError{Field: "from_location", Message: "is required for outbound movements"})
		}
	case MovementTransfer:
		if r.FromLocation == nil || validator.IsEmpty(*r.FromLocation) {
			errs = append(errs, validator.ValidationError{Field: "from_location", Message: "is required for transfers"})
		}
		if r.ToLocation == nil || validator.IsEmpty(*r.ToLocation) {
			errs = append(errs, validator.ValidationError{Field: "to_location", Message: "is required for transfers"})
		}
		if r.FromLocation != nil && r.ToLocation != nil && *r.FromLocation == *r.ToLocation {
			errs = append(errs, validator.ValidationError{Field: "to_location", Message: "must differ from from_location"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be in, out or transfer"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MovementResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Type         string          `json:"type"`
	FromLocation *string         `json:"from_location,omitempty"`
	ToLocation   *string         `json:"to_location,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Date         string          `json:"date"`
	Note         *string         `json:"note,omitempty"`
}

type LevelResponse struct {
	ProductID string          `json:"product_id"`
	Location  string          `json:"location"`
	Quantity  decimal.Decimal `json:"quantity"`
}

type MovementFilter struct {
	ProductID *string
	Location  *string
	Type      *string
	Page      int
	Limit     int
}

type ListMovementResponse struct {
	Data       []MovementResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
