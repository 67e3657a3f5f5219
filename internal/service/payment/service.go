package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/cosmedis/backoffice-go/internal/domain/employee"
	"github.com/cosmedis/backoffice-go/internal/domain/payment"
	"github.com/cosmedis/backoffice-go/internal/domain/presence"
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentServiceImpl struct {
	calc         *Calculator
	paymentRepo  payment.PaymentRepository
	presenceRepo presence.PresenceRepository
	employeeRepo employee.EmployeeRepository
}

func NewPaymentService(
	calc *Calculator,
	paymentRepo payment.PaymentRepository,
	presenceRepo presence.PresenceRepository,
	employeeRepo employee.EmployeeRepository,
) payment.PaymentService {
	return &PaymentServiceImpl{
		calc:         calc,
		paymentRepo:  paymentRepo,
		presenceRepo: presenceRepo,
		employeeRepo: employeeRepo,
	}
}

// Calculate builds the breakdown for one employee and month. It never writes;
// the caller decides whether to persist a payment from it.
func (s *PaymentServiceImpl) Calculate(ctx context.Context, employeeID, month string) (payment.BreakdownResponse, error) {
	employeeID = validator.CanonicalID(employeeID)
	if employeeID == "" {
		return payment.BreakdownResponse{}, validator.ValidationErrors{{Field: "employee_id", Message: "is required"}}
	}

	start, end, ok := validator.MonthRange(month)
	if !ok {
		return payment.BreakdownResponse{}, validator.ValidationErrors{{Field: "month", Message: "must be a valid YYYY-MM month"}}
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payment.BreakdownResponse{}, err
	}

	records, err := s.presenceRepo.GetByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return payment.BreakdownResponse{}, fmt.Errorf("failed to load presence records: %w", err)
	}

	b := s.calc.BuildBreakdown(emp.Salary, records)

	return payment.BreakdownResponse{
		EmployeeID: employeeID,
		Month:      month,
		Basic:      b.Basic,
		DailyRate:  b.DailyRate,
		HourlyRate: b.HourlyRate,
		Commission: b.Commission,
		Deduction:  b.Deduction,
	}, nil
}

func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, req payment.CreatePaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	employeeID := validator.CanonicalID(req.EmployeeID)
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		// No partial write: a missing employee aborts before anything persists.
		return payment.PaymentResponse{}, err
	}

	t := payment.PaymentType(req.Type)

	basic := decimal.Zero
	commission := decimal.Zero
	deduction := decimal.Zero
	amount := decimal.Zero
	switch t {
	case payment.TypeSalaire:
		basic = *req.Basic
		if req.Commission != nil {
			commission = *req.Commission
		}
		if req.Deduction != nil {
			deduction = *req.Deduction
		}
	case payment.TypeAvance, payment.TypePrime:
		amount = *req.Amount
	}

	b, com, ded, net := s.calc.Derive(t, basic, commission, deduction, amount)

	record := payment.PaymentRecord{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Month:      req.Month,
		Date:       paymentDate(req.Date),
		Type:       t,
		Basic:      b,
		Commission: com,
		Deduction:  ded,
		Net:        net,
		Method:     payment.PaymentMethod(req.Method),
		ProofURL:   req.ProofURL,
	}

	created, err := s.paymentRepo.Create(ctx, record)
	if err != nil {
		return payment.PaymentResponse{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return mapToPaymentResponse(created), nil
}

// CreateFromCalculation runs the calculator for the employee and month and
// persists the resulting Salaire record in one step.
func (s *PaymentServiceImpl) CreateFromCalculation(ctx context.Context, req payment.CreateFromCalculationRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	breakdown, err := s.Calculate(ctx, req.EmployeeID, req.Month)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	b, com, ded, net := s.calc.Derive(payment.TypeSalaire, breakdown.Basic, breakdown.Commission, breakdown.Deduction, decimal.Zero)

	record := payment.PaymentRecord{
		ID:         uuid.NewString(),
		EmployeeID: breakdown.EmployeeID,
		Month:      req.Month,
		Date:       paymentDate(req.Date),
		Type:       payment.TypeSalaire,
		Basic:      b,
		Commission: com,
		Deduction:  ded,
		Net:        net,
		Method:     payment.PaymentMethod(req.Method),
		ProofURL:   req.ProofURL,
	}

	created, err := s.paymentRepo.Create(ctx, record)
	if err != nil {
		return payment.PaymentResponse{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return mapToPaymentResponse(created), nil
}

func (s *PaymentServiceImpl) GetPayment(ctx context.Context, id string) (payment.PaymentResponse, error) {
	record, err := s.paymentRepo.GetByID(ctx, validator.CanonicalID(id))
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	return mapToPaymentResponse(record), nil
}

func (s *PaymentServiceImpl) ListPayments(ctx context.Context, filter payment.PaymentFilter) (payment.ListPaymentResponse, error) {
	records, totalCount, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		return payment.ListPaymentResponse{}, err
	}

	result := make([]payment.PaymentResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToPaymentResponse(r))
	}

	return payment.ListPaymentResponse{
		Data:       result,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PaymentServiceImpl) UpdatePayment(ctx context.Context, req payment.UpdatePaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	record, err := s.paymentRepo.GetByID(ctx, validator.CanonicalID(req.ID))
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	if req.Type != nil && payment.PaymentType(*req.Type) != record.Type {
		return payment.PaymentResponse{}, payment.ErrTypeImmutable
	}

	switch record.Type {
	case payment.TypeSalaire:
		if req.Basic != nil {
			record.Basic = *req.Basic
		}
		if req.Commission != nil {
			record.Commission = *req.Commission
		}
		if req.Deduction != nil {
			record.Deduction = *req.Deduction
		}
		_, _, _, record.Net = s.calc.Derive(record.Type, record.Basic, record.Commission, record.Deduction, decimal.Zero)
	case payment.TypeAvance, payment.TypePrime:
		if req.Amount != nil {
			record.Basic, record.Commission, record.Deduction, record.Net = s.calc.Derive(record.Type, decimal.Zero, decimal.Zero, decimal.Zero, *req.Amount)
		}
	}

	if req.Date != nil {
		record.Date = paymentDate(req.Date)
	}
	if req.Method != nil {
		record.Method = payment.PaymentMethod(*req.Method)
	}
	if req.ProofURL != nil {
		record.ProofURL = req.ProofURL
	}

	if err := s.paymentRepo.Update(ctx, record); err != nil {
		return payment.PaymentResponse{}, fmt.Errorf("failed to update payment: %w", err)
	}

	return s.GetPayment(ctx, record.ID)
}

func (s *PaymentServiceImpl) DeletePayment(ctx context.Context, id string) error {
	return s.paymentRepo.Delete(ctx, validator.CanonicalID(id))
}

// ========== HELPERS ==========

func paymentDate(dateStr *string) time.Time {
	if dateStr != nil {
		if parsed, ok := validator.IsValidDate(*dateStr); ok {
			return parsed
		}
	}
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func mapToPaymentResponse(r payment.PaymentRecord) payment.PaymentResponse {
	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}

	return payment.PaymentResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
		Month:        r.Month,
		Date:         r.Date.Format("2006-01-02"),
		Type:         string(r.Type),
		Basic:        r.Basic,
		Commission:   r.Commission,
		Deduction:    r.Deduction,
		Net:          r.Net,
		Method:       string(r.Method),
		ProofURL:     r.ProofURL,
	}
}
