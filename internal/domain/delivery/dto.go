package delivery

import (
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateDeliveryRequest struct {
	OrderRef    string          `json:"order_ref"`
	DriverID    *string         `json:"driver_id,omitempty"`
	Destination *string         `json:"destination,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

func (r *CreateDeliveryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OrderRef) {
		errs = append(errs, validator.ValidationError{Field: "order_ref", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransitionRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
	// DriverID is required when assigning.
	DriverID *string `json:"driver_id,omitempty"`
}

func (r *TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	switch DeliveryStatus(r.Status) {
	case StatusAssigned:
		if r.DriverID == nil || validator.IsEmpty(*r.DriverID) {
			errs = append(errs, validator.ValidationError{Field: "driver_id", Message: "is required when assigning"})
		}
	case StatusInTransit, StatusDelivered, StatusReturned:
	default:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be assigned, in_transit, delivered or returned"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeliveryResponse struct {
	ID          string          `json:"id"`
	OrderRef    string          `json:"order_ref"`
	DriverID    *string         `json:"driver_id,omitempty"`
	DriverName  *string         `json:"driver_name,omitempty"`
	Destination *string         `json:"destination,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Date        string          `json:"date"`
	DeliveredAt *string         `json:"delivered_at,omitempty"`
}

type DeliveryFilter struct {
	DriverID *string
	Status   *string
	Month    *string
	Page     int
	Limit    int
}

type ListDeliveryResponse struct {
	Data       []DeliveryResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

type CreateSettlementRequest struct {
	DriverID string `json:"driver_id"`
	Month    string `json:"month"`
}

func (r *CreateSettlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DriverID) {
		errs = append(errs, validator.ValidationError{Field: "driver_id", Message: "is required"})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a valid YYYY-MM month"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideSettlementRequest struct {
	ID        string  `json:"-"`
	Approve   bool    `json:"approve"`
	DecidedBy string  `json:"decided_by"`
	Note      *string `json:"note,omitempty"`
}

func (r *DecideSettlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DecidedBy) {
		errs = append(errs, validator.ValidationError{Field: "decided_by", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettlementResponse struct {
	ID             string          `json:"id"`
	DriverID       string          `json:"driver_id"`
	DriverName     *string         `json:"driver_name,omitempty"`
	Month          string          `json:"month"`
	TotalCollected decimal.Decimal `json:"total_collected"`
	DeliveryCount  int             `json:"delivery_count"`
	Status         string          `json:"status"`
	DecidedBy      *string         `json:"decided_by,omitempty"`
	DecisionNote   *string         `json:"decision_note,omitempty"`
	DecidedAt      *string         `json:"decided_at,omitempty"`
}
