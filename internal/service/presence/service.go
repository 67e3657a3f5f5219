package presence

import (
	"context"
	"fmt"

	"github.com/cosmedis/backoffice-go/internal/domain/employee"
	"github.com/cosmedis/backoffice-go/internal/domain/presence"
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	paymentService "github.com/cosmedis/backoffice-go/internal/service/payment"
	"github.com/google/uuid"
)

type PresenceServiceImpl struct {
	calc         *paymentService.Calculator
	presenceRepo presence.PresenceRepository
	employeeRepo employee.EmployeeRepository
}

func NewPresenceService(
	calc *paymentService.Calculator,
	presenceRepo presence.PresenceRepository,
	employeeRepo employee.EmployeeRepository,
) presence.PresenceService {
	return &PresenceServiceImpl{
		calc:         calc,
		presenceRepo: presenceRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *PresenceServiceImpl) CreateRecord(ctx context.Context, req presence.CreatePresenceRequest) (presence.PresenceResponse, error) {
	if err := req.Validate(); err != nil {
		return presence.PresenceResponse{}, err
	}

	employeeID := validator.CanonicalID(req.EmployeeID)
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return presence.PresenceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	record := presence.PresenceRecord{
		ID:         uuid.NewString(),
		EmployeeID: &employeeID,
		Date:       date,
		DaysAdj:    req.DaysAdj,
		HoursAdj:   req.HoursAdj,
		Note:       req.Note,
	}

	created, err := s.presenceRepo.Create(ctx, record)
	if err != nil {
		return presence.PresenceResponse{}, fmt.Errorf("failed to create presence record: %w", err)
	}

	return mapToPresenceResponse(created), nil
}

func (s *PresenceServiceImpl) GetRecord(ctx context.Context, id string) (presence.PresenceResponse, error) {
	record, err := s.presenceRepo.GetByID(ctx, validator.CanonicalID(id))
	if err != nil {
		return presence.PresenceResponse{}, err
	}
	return mapToPresenceResponse(record), nil
}

func (s *PresenceServiceImpl) UpdateRecord(ctx context.Context, req presence.UpdatePresenceRequest) (presence.PresenceResponse, error) {
	if err := req.Validate(); err != nil {
		return presence.PresenceResponse{}, err
	}

	req.ID = validator.CanonicalID(req.ID)
	if _, err := s.presenceRepo.GetByID(ctx, req.ID); err != nil {
		return presence.PresenceResponse{}, err
	}

	if err := s.presenceRepo.Update(ctx, req); err != nil {
		return presence.PresenceResponse{}, fmt.Errorf("failed to update presence record: %w", err)
	}

	return s.GetRecord(ctx, req.ID)
}

func (s *PresenceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	id = validator.CanonicalID(id)
	if _, err := s.presenceRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.presenceRepo.Delete(ctx, id)
}

func (s *PresenceServiceImpl) ListRecords(ctx context.Context, filter presence.PresenceFilter) (presence.ListPresenceResponse, error) {
	records, totalCount, err := s.presenceRepo.List(ctx, filter)
	if err != nil {
		return presence.ListPresenceResponse{}, err
	}

	result := make([]presence.PresenceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToPresenceResponse(r))
	}

	return presence.ListPresenceResponse{
		Data:       result,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// MonthlySummary totals one employee's adjustments for a month and prices
// every record against the daily and hourly rates derived from the salary.
// Nothing is skipped on sign or magnitude.
func (s *PresenceServiceImpl) MonthlySummary(ctx context.Context, employeeID, month string) (presence.MonthlySummaryResponse, error) {
	employeeID = validator.CanonicalID(employeeID)
	if employeeID == "" {
		return presence.MonthlySummaryResponse{}, validator.ValidationErrors{{Field: "employee_id", Message: "is required"}}
	}

	start, end, ok := validator.MonthRange(month)
	if !ok {
		return presence.MonthlySummaryResponse{}, validator.ValidationErrors{{Field: "month", Message: "must be a valid YYYY-MM month"}}
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return presence.MonthlySummaryResponse{}, err
	}

	records, err := s.presenceRepo.GetByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return presence.MonthlySummaryResponse{}, fmt.Errorf("failed to load presence records: %w", err)
	}

	dailyRate := s.calc.DailyRate(emp.Salary)
	hourlyRate := s.calc.HourlyRate(emp.Salary)

	summary := presence.MonthlySummaryResponse{
		EmployeeID: employeeID,
		Month:      month,
		Records:    make([]presence.PresenceImpact, 0, len(records)),
	}
	for _, r := range records {
		dayImpact, hourImpact := s.calc.Impacts(r, dailyRate, hourlyRate)
		summary.TotalDaysAdj = summary.TotalDaysAdj.Add(r.DaysAdj)
		summary.TotalHoursAdj = summary.TotalHoursAdj.Add(r.HoursAdj)
		summary.Records = append(summary.Records, presence.PresenceImpact{
			RecordID:   r.ID,
			Date:       r.Date.Format("2006-01-02"),
			DaysAdj:    r.DaysAdj,
			HoursAdj:   r.HoursAdj,
			DayImpact:  dayImpact,
			HourImpact: hourImpact,
			Note:       r.Note,
		})
	}

	return summary, nil
}

func mapToPresenceResponse(r presence.PresenceRecord) presence.PresenceResponse {
	return presence.PresenceResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date.Format("2006-01-02"),
		DaysAdj:    r.DaysAdj,
		HoursAdj:   r.HoursAdj,
		Note:       r.Note,
	}
}
