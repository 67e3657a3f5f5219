package presence

import (
	"context"
	"testing"
	"time"

	"github.com/cosmedis/backoffice-go/internal/domain/employee"
	"github.com/cosmedis/backoffice-go/internal/domain/presence"
	paymentService "github.com/cosmedis/backoffice-go/internal/service/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ===== FAKES =====

type fakePresenceRepo struct {
	records map[string]presence.PresenceRecord
}

func newFakePresenceRepo() *fakePresenceRepo {
	return &fakePresenceRepo{records: map[string]presence.PresenceRecord{}}
}

func (f *fakePresenceRepo) Create(ctx context.Context, record presence.PresenceRecord) (presence.PresenceRecord, error) {
	f.records[record.ID] = record
	return record, nil
}

func (f *fakePresenceRepo) GetByID(ctx context.Context, id string) (presence.PresenceRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return presence.PresenceRecord{}, presence.ErrPresenceRecordNotFound
	}
	return record, nil
}

func (f *fakePresenceRepo) Update(ctx context.Context, req presence.UpdatePresenceRequest) error {
	record, ok := f.records[req.ID]
	if !ok {
		return presence.ErrPresenceRecordNotFound
	}
	if req.DaysAdj != nil {
		record.DaysAdj = *req.DaysAdj
	}
	if req.HoursAdj != nil {
		record.HoursAdj = *req.HoursAdj
	}
	if req.Note != nil {
		record.Note = req.Note
	}
	f.records[req.ID] = record
	return nil
}

func (f *fakePresenceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return presence.ErrPresenceRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakePresenceRepo) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]presence.PresenceRecord, error) {
	var result []presence.PresenceRecord
	for _, r := range f.records {
		if r.EmployeeID == nil || *r.EmployeeID != employeeID {
			continue
		}
		if r.Date.Before(start) || !r.Date.Before(end) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (f *fakePresenceRepo) List(ctx context.Context, filter presence.PresenceFilter) ([]presence.PresenceRecord, int64, error) {
	var result []presence.PresenceRecord
	for _, r := range f.records {
		result = append(result, r)
	}
	return result, int64(len(result)), nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetAll(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func setupPresenceTest() (presence.PresenceService, *fakePresenceRepo) {
	repo := newFakePresenceRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Rachida El Amrani", Salary: dec("12000"), Active: true},
	}}
	return NewPresenceService(paymentService.NewCalculator(), repo, employeeRepo), repo
}

func seedRecord(repo *fakePresenceRepo, id, employeeID, date, daysAdj, hoursAdj string) {
	day, _ := time.Parse("2006-01-02", date)
	repo.records[id] = presence.PresenceRecord{
		ID:         id,
		EmployeeID: &employeeID,
		Date:       day,
		DaysAdj:    dec(daysAdj),
		HoursAdj:   dec(hoursAdj),
	}
}

// ===== TESTS =====

func TestPresenceService_CreateRecord_UnknownEmployee(t *testing.T) {
	service, repo := setupPresenceTest()

	_, err := service.CreateRecord(context.Background(), presence.CreatePresenceRequest{
		EmployeeID: "missing",
		Date:       "2025-03-10",
		DaysAdj:    dec("1"),
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, repo.records)
}

func TestPresenceService_MonthlySummary(t *testing.T) {
	service, repo := setupPresenceTest()
	seedRecord(repo, "r-1", "emp-1", "2025-03-08", "2", "0")
	seedRecord(repo, "r-2", "emp-1", "2025-03-21", "0", "-1")
	seedRecord(repo, "r-3", "emp-1", "2025-04-01", "5", "0") // next month, excluded

	summary, err := service.MonthlySummary(context.Background(), "emp-1", "2025-03")

	require.NoError(t, err)
	assert.Len(t, summary.Records, 2)
	assert.InDelta(t, 2, summary.TotalDaysAdj.InexactFloat64(), 0.0001)
	assert.InDelta(t, -1, summary.TotalHoursAdj.InexactFloat64(), 0.0001)

	// Impacts price against dailyRate 461.54 and hourlyRate 57.69.
	for _, r := range summary.Records {
		switch r.RecordID {
		case "r-1":
			assert.InDelta(t, 923.0769, r.DayImpact.InexactFloat64(), 0.001)
			assert.True(t, r.HourImpact.IsZero())
		case "r-2":
			assert.True(t, r.DayImpact.IsZero())
			assert.InDelta(t, -57.6923, r.HourImpact.InexactFloat64(), 0.001)
		}
	}
}

func TestPresenceService_MonthlySummary_ToleratesOrphanedRecords(t *testing.T) {
	service, repo := setupPresenceTest()
	seedRecord(repo, "r-1", "emp-1", "2025-03-08", "2", "0")

	// A record whose employee was deleted keeps a nil employee id. It must
	// never match an aggregation and must never make one fail.
	day, _ := time.Parse("2006-01-02", "2025-03-12")
	repo.records["r-orphan"] = presence.PresenceRecord{
		ID:      "r-orphan",
		Date:    day,
		DaysAdj: dec("4"),
	}

	summary, err := service.MonthlySummary(context.Background(), "emp-1", "2025-03")

	require.NoError(t, err)
	assert.Len(t, summary.Records, 1)
	assert.Equal(t, "r-1", summary.Records[0].RecordID)
	assert.InDelta(t, 2, summary.TotalDaysAdj.InexactFloat64(), 0.0001)
}

func TestPresenceService_MonthlySummary_InvalidMonth(t *testing.T) {
	service, _ := setupPresenceTest()

	_, err := service.MonthlySummary(context.Background(), "emp-1", "March 2025")
	assert.Error(t, err)
}

func TestPresenceService_MonthlySummary_EmptyMonth(t *testing.T) {
	service, _ := setupPresenceTest()

	summary, err := service.MonthlySummary(context.Background(), "emp-1", "2025-03")

	require.NoError(t, err)
	assert.Empty(t, summary.Records)
	assert.True(t, summary.TotalDaysAdj.IsZero())
	assert.True(t, summary.TotalHoursAdj.IsZero())
}
