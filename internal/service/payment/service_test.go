package payment

import (
	"context"
	"testing"
	"time"

	"github.com/cosmedis/backoffice-go/internal/domain/employee"
	"github.com/cosmedis/backoffice-go/internal/domain/payment"
	"github.com/cosmedis/backoffice-go/internal/domain/presence"
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

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
	var result []employee.Employee
	for _, emp := range f.employees {
		if !activeOnly || emp.Active {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

type fakePresenceRepo struct {
	records []presence.PresenceRecord
}

func (f *fakePresenceRepo) Create(ctx context.Context, record presence.PresenceRecord) (presence.PresenceRecord, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakePresenceRepo) GetByID(ctx context.Context, id string) (presence.PresenceRecord, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return presence.PresenceRecord{}, presence.ErrPresenceRecordNotFound
}

func (f *fakePresenceRepo) Update(ctx context.Context, req presence.UpdatePresenceRequest) error {
	return nil
}

func (f *fakePresenceRepo) Delete(ctx context.Context, id string) error { return nil }

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
	return f.records, int64(len(f.records)), nil
}

type fakePaymentRepo struct {
	payments map[string]payment.PaymentRecord
}

func (f *fakePaymentRepo) Create(ctx context.Context, record payment.PaymentRecord) (payment.PaymentRecord, error) {
	f.payments[record.ID] = record
	return record, nil
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, id string) (payment.PaymentRecord, error) {
	record, ok := f.payments[id]
	if !ok {
		return payment.PaymentRecord{}, payment.ErrPaymentNotFound
	}
	return record, nil
}

func (f *fakePaymentRepo) List(ctx context.Context, filter payment.PaymentFilter) ([]payment.PaymentRecord, int64, error) {
	var result []payment.PaymentRecord
	for _, r := range f.payments {
		result = append(result, r)
	}
	return result, int64(len(result)), nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, record payment.PaymentRecord) error {
	if _, ok := f.payments[record.ID]; !ok {
		return payment.ErrPaymentNotFound
	}
	f.payments[record.ID] = record
	return nil
}

func (f *fakePaymentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.payments[id]; !ok {
		return payment.ErrPaymentNotFound
	}
	delete(f.payments, id)
	return nil
}

// ===== SETUP =====

type serviceDeps struct {
	service      payment.PaymentService
	employeeRepo *fakeEmployeeRepo
	presenceRepo *fakePresenceRepo
	paymentRepo  *fakePaymentRepo
}

func setupServiceTest() *serviceDeps {
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Salma Idrissi", Salary: decimal.RequireFromString("12000"), Active: true},
		"emp-2": {ID: "emp-2", FullName: "Youssef Amrani", Salary: decimal.RequireFromString("2600"), Active: true},
	}}
	presenceRepo := &fakePresenceRepo{}
	paymentRepo := &fakePaymentRepo{payments: map[string]payment.PaymentRecord{}}

	return &serviceDeps{
		service:      NewPaymentService(NewCalculator(), paymentRepo, presenceRepo, employeeRepo),
		employeeRepo: employeeRepo,
		presenceRepo: presenceRepo,
		paymentRepo:  paymentRepo,
	}
}

func addPresence(deps *serviceDeps, employeeID, date, daysAdj, hoursAdj string) {
	d, _ := time.Parse("2006-01-02", date)
	deps.presenceRepo.records = append(deps.presenceRepo.records, presence.PresenceRecord{
		ID:         "rec-" + date,
		EmployeeID: &employeeID,
		Date:       d,
		DaysAdj:    decimal.RequireFromString(daysAdj),
		HoursAdj:   decimal.RequireFromString(hoursAdj),
	})
}

// ===== CALCULATE =====

func TestPaymentService_Calculate_ZeroPresence(t *testing.T) {
	deps := setupServiceTest()

	b, err := deps.service.Calculate(context.Background(), "emp-1", "2025-03")

	require.NoError(t, err)
	assert.True(t, b.Commission.IsZero())
	assert.True(t, b.Deduction.IsZero())
	assert.InDelta(t, 12000, b.Basic.InexactFloat64(), 0.0001)
}

func TestPaymentService_Calculate_WithPresence(t *testing.T) {
	deps := setupServiceTest()
	addPresence(deps, "emp-1", "2025-03-10", "2", "-1")

	b, err := deps.service.Calculate(context.Background(), "emp-1", "2025-03")

	require.NoError(t, err)
	assert.InDelta(t, 923.08, b.Commission.InexactFloat64(), 0.01)
	assert.InDelta(t, 57.69, b.Deduction.InexactFloat64(), 0.01)
}

func TestPaymentService_Calculate_IgnoresOtherMonths(t *testing.T) {
	deps := setupServiceTest()
	addPresence(deps, "emp-1", "2025-02-28", "5", "0")
	addPresence(deps, "emp-1", "2025-04-01", "5", "0")
	addPresence(deps, "emp-1", "2025-03-31", "1", "0")

	b, err := deps.service.Calculate(context.Background(), "emp-1", "2025-03")

	require.NoError(t, err)
	// Only the March record counts: 1 day at 461.54.
	assert.InDelta(t, 461.54, b.Commission.InexactFloat64(), 0.01)
}

func TestPaymentService_Calculate_IgnoresOtherEmployees(t *testing.T) {
	deps := setupServiceTest()
	addPresence(deps, "emp-2", "2025-03-10", "3", "0")

	b, err := deps.service.Calculate(context.Background(), "emp-1", "2025-03")

	require.NoError(t, err)
	assert.True(t, b.Commission.IsZero())
}

func TestPaymentService_Calculate_EmployeeNotFound(t *testing.T) {
	deps := setupServiceTest()

	_, err := deps.service.Calculate(context.Background(), "missing", "2025-03")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPaymentService_Calculate_InvalidMonth(t *testing.T) {
	deps := setupServiceTest()

	_, err := deps.service.Calculate(context.Background(), "emp-1", "03-2025")

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestPaymentService_Calculate_TrimsEmployeeID(t *testing.T) {
	deps := setupServiceTest()

	b, err := deps.service.Calculate(context.Background(), "  emp-1  ", "2025-03")

	require.NoError(t, err)
	assert.Equal(t, "emp-1", b.EmployeeID)
}

// ===== CREATE =====

func TestPaymentService_CreatePayment_Salaire(t *testing.T) {
	deps := setupServiceTest()
	basic := decimal.RequireFromString("12000")
	commission := decimal.RequireFromString("500")
	deduction := decimal.RequireFromString("200")

	created, err := deps.service.CreatePayment(context.Background(), payment.CreatePaymentRequest{
		EmployeeID: "emp-1",
		Month:      "2025-03",
		Type:       "Salaire",
		Basic:      &basic,
		Commission: &commission,
		Deduction:  &deduction,
		Method:     "Virement",
	})

	require.NoError(t, err)
	assert.InDelta(t, 12300, created.Net.InexactFloat64(), 0.0001)
	assert.Equal(t, "Salaire", created.Type)
}

func TestPaymentService_CreatePayment_Avance(t *testing.T) {
	deps := setupServiceTest()
	amount := decimal.RequireFromString("500")

	created, err := deps.service.CreatePayment(context.Background(), payment.CreatePaymentRequest{
		EmployeeID: "emp-1",
		Month:      "2025-03",
		Type:       "Avance",
		Amount:     &amount,
		Method:     "Espèces",
	})

	require.NoError(t, err)
	assert.True(t, created.Basic.IsZero())
	assert.True(t, created.Commission.IsZero())
	assert.InDelta(t, 500, created.Deduction.InexactFloat64(), 0.0001)
	assert.InDelta(t, -500, created.Net.InexactFloat64(), 0.0001)
}

func TestPaymentService_CreatePayment_Prime(t *testing.T) {
	deps := setupServiceTest()
	amount := decimal.RequireFromString("300")
	note := "https://proofs.local/prime-mars.pdf"

	created, err := deps.service.CreatePayment(context.Background(), payment.CreatePaymentRequest{
		EmployeeID: "emp-1",
		Month:      "2025-03",
		Type:       "Prime",
		Amount:     &amount,
		Method:     "Chèque",
		ProofURL:   &note,
	})

	require.NoError(t, err)
	assert.True(t, created.Basic.IsZero())
	assert.True(t, created.Deduction.IsZero())
	assert.InDelta(t, 300, created.Commission.InexactFloat64(), 0.0001)
	assert.InDelta(t, 300, created.Net.InexactFloat64(), 0.0001)
}

func TestPaymentService_CreatePayment_MissingEmployee(t *testing.T) {
	deps := setupServiceTest()
	basic := decimal.RequireFromString("5000")

	_, err := deps.service.CreatePayment(context.Background(), payment.CreatePaymentRequest{
		EmployeeID: "missing",
		Month:      "2025-03",
		Type:       "Salaire",
		Basic:      &basic,
		Method:     "Virement",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, deps.paymentRepo.payments, "no record may persist when the employee is missing")
}

func TestPaymentService_CreatePayment_MissingAmount(t *testing.T) {
	deps := setupServiceTest()

	_, err := deps.service.CreatePayment(context.Background(), payment.CreatePaymentRequest{
		EmployeeID: "emp-1",
		Month:      "2025-03",
		Type:       "Avance",
		Method:     "Espèces",
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "amount")
	assert.Empty(t, deps.paymentRepo.payments)
}

func TestPaymentService_CreatePayment_MissingBasicForSalaire(t *testing.T) {
	deps := setupServiceTest()

	_, err := deps.service.CreatePayment(context.Background(), payment.CreatePaymentRequest{
		EmployeeID: "emp-1",
		Month:      "2025-03",
		Type:       "Salaire",
		Method:     "Virement",
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "basic")
}

func TestPaymentService_CreateFromCalculation(t *testing.T) {
	deps := setupServiceTest()
	addPresence(deps, "emp-1", "2025-03-10", "2", "-1")

	created, err := deps.service.CreateFromCalculation(context.Background(), payment.CreateFromCalculationRequest{
		EmployeeID: "emp-1",
		Month:      "2025-03",
		Method:     "Virement",
	})

	require.NoError(t, err)
	assert.Equal(t, "Salaire", created.Type)
	assert.InDelta(t, 12000, created.Basic.InexactFloat64(), 0.0001)
	assert.InDelta(t, 923.08, created.Commission.InexactFloat64(), 0.01)
	assert.InDelta(t, 57.69, created.Deduction.InexactFloat64(), 0.01)
	assert.InDelta(t, 12865.38, created.Net.InexactFloat64(), 0.01)
}

// ===== UPDATE =====

func TestPaymentService_UpdatePayment_TypeChangeRejected(t *testing.T) {
	deps := setupServiceTest()
	amount := decimal.RequireFromString("500")
	created, err := deps.service.CreatePayment(context.Background(), payment.CreatePaymentRequest{
		EmployeeID: "emp-1",
		Month:      "2025-03",
		Type:       "Avance",
		Amount:     &amount,
		Method:     "Espèces",
	})
	require.NoError(t, err)

	newType := "Prime"
	_, err = deps.service.UpdatePayment(context.Background(), payment.UpdatePaymentRequest{
		ID:   created.ID,
		Type: &newType,
	})

	assert.ErrorIs(t, err, payment.ErrTypeImmutable)
}

func TestPaymentService_UpdatePayment_AvanceAmount(t *testing.T) {
	deps := setupServiceTest()
	amount := decimal.RequireFromString("500")
	created, err := deps.service.CreatePayment(context.Background(), payment.CreatePaymentRequest{
		EmployeeID: "emp-1",
		Month:      "2025-03",
		Type:       "Avance",
		Amount:     &amount,
		Method:     "Espèces",
	})
	require.NoError(t, err)

	newAmount := decimal.RequireFromString("750")
	updated, err := deps.service.UpdatePayment(context.Background(), payment.UpdatePaymentRequest{
		ID:     created.ID,
		Amount: &newAmount,
	})

	require.NoError(t, err)
	assert.InDelta(t, 750, updated.Deduction.InexactFloat64(), 0.0001)
	assert.InDelta(t, -750, updated.Net.InexactFloat64(), 0.0001)
}

func TestPaymentService_UpdatePayment_SalaireRecomputesNet(t *testing.T) {
	deps := setupServiceTest()
	basic := decimal.RequireFromString("12000")
	created, err := deps.service.CreatePayment(context.Background(), payment.CreatePaymentRequest{
		EmployeeID: "emp-1",
		Month:      "2025-03",
		Type:       "Salaire",
		Basic:      &basic,
		Method:     "Virement",
	})
	require.NoError(t, err)

	deduction := decimal.RequireFromString("1000")
	updated, err := deps.service.UpdatePayment(context.Background(), payment.UpdatePaymentRequest{
		ID:        created.ID,
		Deduction: &deduction,
	})

	require.NoError(t, err)
	assert.InDelta(t, 11000, updated.Net.InexactFloat64(), 0.0001)
}

func TestPaymentService_DeletePayment_NotFound(t *testing.T) {
	deps := setupServiceTest()

	err := deps.service.DeletePayment(context.Background(), "missing")

	assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
}
