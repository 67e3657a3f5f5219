package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cosmedis/backoffice-go/internal/domain/delivery"
	"github.com/cosmedis/backoffice-go/internal/domain/employee"
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type DeliveryServiceImpl struct {
	deliveryRepo delivery.DeliveryRepository
	employeeRepo employee.EmployeeRepository
}

func NewDeliveryService(
	deliveryRepo delivery.DeliveryRepository,
	employeeRepo employee.EmployeeRepository,
) delivery.DeliveryService {
	return &DeliveryServiceImpl{
		deliveryRepo: deliveryRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *DeliveryServiceImpl) CreateDelivery(ctx context.Context, req delivery.CreateDeliveryRequest) (delivery.DeliveryResponse, error) {
	if err := req.Validate(); err != nil {
		return delivery.DeliveryResponse{}, err
	}

	newDelivery := delivery.Delivery{
		ID:          uuid.NewString(),
		OrderRef:    req.OrderRef,
		Destination: req.Destination,
		Amount:      req.Amount,
		Status:      delivery.StatusPending,
	}
	newDelivery.Date, _ = validator.IsValidDate(req.Date)

	// A delivery may be created pre-assigned; the driver must exist.
	if req.DriverID != nil {
		driverID := validator.CanonicalID(*req.DriverID)
		if _, err := s.employeeRepo.GetByID(ctx, driverID); err != nil {
			return delivery.DeliveryResponse{}, err
		}
		newDelivery.DriverID = &driverID
		newDelivery.Status = delivery.StatusAssigned
	}

	created, err := s.deliveryRepo.Create(ctx, newDelivery)
	if err != nil {
		return delivery.DeliveryResponse{}, fmt.Errorf("failed to create delivery: %w", err)
	}

	return mapToDeliveryResponse(created), nil
}

func (s *DeliveryServiceImpl) GetDelivery(ctx context.Context, id string) (delivery.DeliveryResponse, error) {
	d, err := s.deliveryRepo.GetByID(ctx, validator.CanonicalID(id))
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}
	return mapToDeliveryResponse(d), nil
}

func (s *DeliveryServiceImpl) ListDeliveries(ctx context.Context, filter delivery.DeliveryFilter) (delivery.ListDeliveryResponse, error) {
	deliveries, totalCount, err := s.deliveryRepo.List(ctx, filter)
	if err != nil {
		return delivery.ListDeliveryResponse{}, err
	}

	result := make([]delivery.DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		result = append(result, mapToDeliveryResponse(d))
	}

	return delivery.ListDeliveryResponse{
		Data:       result,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Transition moves a delivery one step along the pipeline. The pipeline only
// goes forward: pending -> assigned -> in_transit -> delivered | returned.
func (s *DeliveryServiceImpl) Transition(ctx context.Context, req delivery.TransitionRequest) (delivery.DeliveryResponse, error) {
	if err := req.Validate(); err != nil {
		return delivery.DeliveryResponse{}, err
	}

	d, err := s.deliveryRepo.GetByID(ctx, validator.CanonicalID(req.ID))
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}

	next := delivery.DeliveryStatus(req.Status)
	if !d.Status.CanTransition(next) {
		return delivery.DeliveryResponse{}, fmt.Errorf("%w: %s -> %s", delivery.ErrInvalidTransition, d.Status, next)
	}

	if next == delivery.StatusAssigned {
		driverID := validator.CanonicalID(*req.DriverID)
		if _, err := s.employeeRepo.GetByID(ctx, driverID); err != nil {
			return delivery.DeliveryResponse{}, err
		}
		d.DriverID = &driverID
	}
	if next == delivery.StatusDelivered {
		now := time.Now()
		d.DeliveredAt = &now
	}
	d.Status = next

	if err := s.deliveryRepo.Update(ctx, d); err != nil {
		return delivery.DeliveryResponse{}, fmt.Errorf("failed to update delivery: %w", err)
	}

	return mapToDeliveryResponse(d), nil
}

// CreateSettlement snapshots a driver's delivered totals for one month. The
// snapshot is taken at creation; later deliveries do not change it.
func (s *DeliveryServiceImpl) CreateSettlement(ctx context.Context, req delivery.CreateSettlementRequest) (delivery.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return delivery.SettlementResponse{}, err
	}

	driverID := validator.CanonicalID(req.DriverID)
	if _, err := s.employeeRepo.GetByID(ctx, driverID); err != nil {
		return delivery.SettlementResponse{}, err
	}

	if _, err := s.deliveryRepo.GetSettlementByDriverMonth(ctx, driverID, req.Month); err == nil {
		return delivery.SettlementResponse{}, delivery.ErrSettlementAlreadyExists
	} else if !errors.Is(err, delivery.ErrSettlementNotFound) {
		return delivery.SettlementResponse{}, fmt.Errorf("failed to check existing settlement: %w", err)
	}

	start, end, _ := validator.MonthRange(req.Month)
	total, count, err := s.deliveryRepo.SumDeliveredByDriver(ctx, driverID, start, end)
	if err != nil {
		return delivery.SettlementResponse{}, fmt.Errorf("failed to total delivered amounts: %w", err)
	}
	if count == 0 {
		return delivery.SettlementResponse{}, delivery.ErrNoDeliveredForPeriod
	}

	created, err := s.deliveryRepo.CreateSettlement(ctx, delivery.Settlement{
		ID:             uuid.NewString(),
		DriverID:       driverID,
		Month:          req.Month,
		TotalCollected: total,
		DeliveryCount:  count,
		Status:         delivery.SettlementPending,
	})
	if err != nil {
		return delivery.SettlementResponse{}, fmt.Errorf("failed to create settlement: %w", err)
	}

	return mapToSettlementResponse(created), nil
}

func (s *DeliveryServiceImpl) GetSettlement(ctx context.Context, id string) (delivery.SettlementResponse, error) {
	settlement, err := s.deliveryRepo.GetSettlementByID(ctx, validator.CanonicalID(id))
	if err != nil {
		return delivery.SettlementResponse{}, err
	}
	return mapToSettlementResponse(settlement), nil
}

func (s *DeliveryServiceImpl) ListSettlements(ctx context.Context, driverID *string) ([]delivery.SettlementResponse, error) {
	if driverID != nil {
		canonical := validator.CanonicalID(*driverID)
		driverID = &canonical
	}

	settlements, err := s.deliveryRepo.ListSettlements(ctx, driverID)
	if err != nil {
		return nil, err
	}

	result := make([]delivery.SettlementResponse, 0, len(settlements))
	for _, settlement := range settlements {
		result = append(result, mapToSettlementResponse(settlement))
	}
	return result, nil
}

// DecideSettlement approves or rejects a pending settlement. A settlement is
// decided at most once; re-deciding fails with ErrSettlementAlreadyDecided.
func (s *DeliveryServiceImpl) DecideSettlement(ctx context.Context, req delivery.DecideSettlementRequest) (delivery.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return delivery.SettlementResponse{}, err
	}

	settlement, err := s.deliveryRepo.GetSettlementByID(ctx, validator.CanonicalID(req.ID))
	if err != nil {
		return delivery.SettlementResponse{}, err
	}
	if settlement.Status != delivery.SettlementPending {
		return delivery.SettlementResponse{}, delivery.ErrSettlementAlreadyDecided
	}

	if req.Approve {
		settlement.Status = delivery.SettlementApproved
	} else {
		settlement.Status = delivery.SettlementRejected
	}
	now := time.Now()
	decidedBy := req.DecidedBy
	settlement.DecidedBy = &decidedBy
	settlement.DecisionNote = req.Note
	settlement.DecidedAt = &now

	if err := s.deliveryRepo.UpdateSettlement(ctx, settlement); err != nil {
		return delivery.SettlementResponse{}, fmt.Errorf("failed to update settlement: %w", err)
	}

	return mapToSettlementResponse(settlement), nil
}

func mapToDeliveryResponse(d delivery.Delivery) delivery.DeliveryResponse {
	resp := delivery.DeliveryResponse{
		ID:          d.ID,
		OrderRef:    d.OrderRef,
		DriverID:    d.DriverID,
		DriverName:  d.DriverName,
		Destination: d.Destination,
		Amount:      d.Amount,
		Status:      string(d.Status),
		Date:        d.Date.Format("2006-01-02"),
	}
	if d.DeliveredAt != nil {
		deliveredAt := d.DeliveredAt.Format(time.RFC3339)
		resp.DeliveredAt = &deliveredAt
	}
	return resp
}

func mapToSettlementResponse(s delivery.Settlement) delivery.SettlementResponse {
	resp := delivery.SettlementResponse{
		ID:             s.ID,
		DriverID:       s.DriverID,
		DriverName:     s.DriverName,
		Month:          s.Month,
		TotalCollected: s.TotalCollected,
		DeliveryCount:  s.DeliveryCount,
		Status:         string(s.Status),
		DecidedBy:      s.DecidedBy,
		DecisionNote:   s.DecisionNote,
	}
	if s.DecidedAt != nil {
		decidedAt := s.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}
