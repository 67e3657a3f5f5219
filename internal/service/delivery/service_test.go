package delivery

import (
	"context"
	"testing"
	"time"

	"github.com/cosmedis/backoffice-go/internal/domain/delivery"
	"github.com/cosmedis/backoffice-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(s string) *string { return &s }

// ===== FAKES =====

type fakeDeliveryRepo struct {
	deliveries  map[string]delivery.Delivery
	settlements map[string]delivery.Settlement
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{
		deliveries:  map[string]delivery.Delivery{},
		settlements: map[string]delivery.Settlement{},
	}
}

func (f *fakeDeliveryRepo) Create(ctx context.Context, d delivery.Delivery) (delivery.Delivery, error) {
	f.deliveries[d.ID] = d
	return d, nil
}

func (f *fakeDeliveryRepo) GetByID(ctx context.Context, id string) (delivery.Delivery, error) {
	d, ok := f.deliveries[id]
	if !ok {
		return delivery.Delivery{}, delivery.ErrDeliveryNotFound
	}
	return d, nil
}

func (f *fakeDeliveryRepo) Update(ctx context.Context, d delivery.Delivery) error {
	f.deliveries[d.ID] = d
	return nil
}

func (f *fakeDeliveryRepo) List(ctx context.Context, filter delivery.DeliveryFilter) ([]delivery.Delivery, int64, error) {
	var result []delivery.Delivery
	for _, d := range f.deliveries {
		result = append(result, d)
	}
	return result, int64(len(result)), nil
}

func (f *fakeDeliveryRepo) SumDeliveredByDriver(ctx context.Context, driverID string, start, end time.Time) (decimal.Decimal, int, error) {
	total := decimal.Zero
	count := 0
	for _, d := range f.deliveries {
		if d.Status != delivery.StatusDelivered || d.DriverID == nil || *d.DriverID != driverID {
			continue
		}
		if d.Date.Before(start) || !d.Date.Before(end) {
			continue
		}
		total = total.Add(d.Amount)
		count++
	}
	return total, count, nil
}

func (f *fakeDeliveryRepo) CreateSettlement(ctx context.Context, s delivery.Settlement) (delivery.Settlement, error) {
	f.settlements[s.ID] = s
	return s, nil
}

func (f *fakeDeliveryRepo) GetSettlementByID(ctx context.Context, id string) (delivery.Settlement, error) {
	s, ok := f.settlements[id]
	if !ok {
		return delivery.Settlement{}, delivery.ErrSettlementNotFound
	}
	return s, nil
}

func (f *fakeDeliveryRepo) GetSettlementByDriverMonth(ctx context.Context, driverID, month string) (delivery.Settlement, error) {
	for _, s := range f.settlements {
		if s.DriverID == driverID && s.Month == month {
			return s, nil
		}
	}
	return delivery.Settlement{}, delivery.ErrSettlementNotFound
}

func (f *fakeDeliveryRepo) UpdateSettlement(ctx context.Context, s delivery.Settlement) error {
	f.settlements[s.ID] = s
	return nil
}

func (f *fakeDeliveryRepo) ListSettlements(ctx context.Context, driverID *string) ([]delivery.Settlement, error) {
	var result []delivery.Settlement
	for _, s := range f.settlements {
		if driverID == nil || s.DriverID == *driverID {
			result = append(result, s)
		}
	}
	return result, nil
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

func setupDeliveryTest() (delivery.DeliveryService, *fakeDeliveryRepo) {
	repo := newFakeDeliveryRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"driver-1": {ID: "driver-1", FullName: "Hamid Bouziane", Role: "livreur", Active: true},
	}}
	return NewDeliveryService(repo, employeeRepo), repo
}

func seedDelivered(repo *fakeDeliveryRepo, id, driverID, date, amount string) {
	day, _ := time.Parse("2006-01-02", date)
	repo.deliveries[id] = delivery.Delivery{
		ID:       id,
		OrderRef: "BC-" + id,
		DriverID: &driverID,
		Amount:   dec(amount),
		Status:   delivery.StatusDelivered,
		Date:     day,
	}
}

// ===== TESTS =====

func TestDeliveryService_Transition_Pipeline(t *testing.T) {
	service, _ := setupDeliveryTest()

	created, err := service.CreateDelivery(context.Background(), delivery.CreateDeliveryRequest{
		OrderRef: "BC-1042",
		Amount:   dec("1250"),
		Date:     "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)

	assigned, err := service.Transition(context.Background(), delivery.TransitionRequest{
		ID:       created.ID,
		Status:   "assigned",
		DriverID: ptr("driver-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "assigned", assigned.Status)

	inTransit, err := service.Transition(context.Background(), delivery.TransitionRequest{
		ID:     created.ID,
		Status: "in_transit",
	})
	require.NoError(t, err)
	assert.Equal(t, "in_transit", inTransit.Status)

	delivered, err := service.Transition(context.Background(), delivery.TransitionRequest{
		ID:     created.ID,
		Status: "delivered",
	})
	require.NoError(t, err)
	assert.Equal(t, "delivered", delivered.Status)
	assert.NotNil(t, delivered.DeliveredAt)
}

func TestDeliveryService_Transition_SkippingStepsFails(t *testing.T) {
	service, _ := setupDeliveryTest()

	created, err := service.CreateDelivery(context.Background(), delivery.CreateDeliveryRequest{
		OrderRef: "BC-1043",
		Amount:   dec("600"),
		Date:     "2025-03-11",
	})
	require.NoError(t, err)

	// pending -> delivered skips assignment and transit.
	_, err = service.Transition(context.Background(), delivery.TransitionRequest{
		ID:     created.ID,
		Status: "delivered",
	})
	assert.ErrorIs(t, err, delivery.ErrInvalidTransition)
}

func TestDeliveryService_Transition_TerminalStatesAreFinal(t *testing.T) {
	service, repo := setupDeliveryTest()
	seedDelivered(repo, "d-1", "driver-1", "2025-03-05", "900")

	_, err := service.Transition(context.Background(), delivery.TransitionRequest{
		ID:     "d-1",
		Status: "in_transit",
	})
	assert.ErrorIs(t, err, delivery.ErrInvalidTransition)
}

func TestDeliveryService_Transition_AssignRequiresDriver(t *testing.T) {
	service, _ := setupDeliveryTest()

	created, err := service.CreateDelivery(context.Background(), delivery.CreateDeliveryRequest{
		OrderRef: "BC-1044",
		Amount:   dec("300"),
		Date:     "2025-03-12",
	})
	require.NoError(t, err)

	_, err = service.Transition(context.Background(), delivery.TransitionRequest{
		ID:     created.ID,
		Status: "assigned",
	})
	assert.Error(t, err)

	_, err = service.Transition(context.Background(), delivery.TransitionRequest{
		ID:       created.ID,
		Status:   "assigned",
		DriverID: ptr("missing"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeliveryService_CreateSettlement(t *testing.T) {
	service, repo := setupDeliveryTest()
	seedDelivered(repo, "d-1", "driver-1", "2025-03-05", "900")
	seedDelivered(repo, "d-2", "driver-1", "2025-03-20", "350.50")
	seedDelivered(repo, "d-3", "driver-1", "2025-04-01", "9999") // next month, excluded

	settlement, err := service.CreateSettlement(context.Background(), delivery.CreateSettlementRequest{
		DriverID: "driver-1",
		Month:    "2025-03",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, settlement.DeliveryCount)
	assert.InDelta(t, 1250.50, settlement.TotalCollected.InexactFloat64(), 0.001)
	assert.Equal(t, "pending", settlement.Status)
}

func TestDeliveryService_CreateSettlement_Duplicate(t *testing.T) {
	service, repo := setupDeliveryTest()
	seedDelivered(repo, "d-1", "driver-1", "2025-03-05", "900")

	_, err := service.CreateSettlement(context.Background(), delivery.CreateSettlementRequest{
		DriverID: "driver-1",
		Month:    "2025-03",
	})
	require.NoError(t, err)

	_, err = service.CreateSettlement(context.Background(), delivery.CreateSettlementRequest{
		DriverID: "driver-1",
		Month:    "2025-03",
	})
	assert.ErrorIs(t, err, delivery.ErrSettlementAlreadyExists)
}

func TestDeliveryService_CreateSettlement_NothingDelivered(t *testing.T) {
	service, _ := setupDeliveryTest()

	_, err := service.CreateSettlement(context.Background(), delivery.CreateSettlementRequest{
		DriverID: "driver-1",
		Month:    "2025-03",
	})
	assert.ErrorIs(t, err, delivery.ErrNoDeliveredForPeriod)
}

func TestDeliveryService_DecideSettlement_Once(t *testing.T) {
	service, repo := setupDeliveryTest()
	seedDelivered(repo, "d-1", "driver-1", "2025-03-05", "900")

	settlement, err := service.CreateSettlement(context.Background(), delivery.CreateSettlementRequest{
		DriverID: "driver-1",
		Month:    "2025-03",
	})
	require.NoError(t, err)

	decided, err := service.DecideSettlement(context.Background(), delivery.DecideSettlementRequest{
		ID:        settlement.ID,
		Approve:   true,
		DecidedBy: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", decided.Status)
	assert.NotNil(t, decided.DecidedAt)

	// Second decision is rejected regardless of direction.
	_, err = service.DecideSettlement(context.Background(), delivery.DecideSettlementRequest{
		ID:        settlement.ID,
		Approve:   false,
		DecidedBy: "admin",
	})
	assert.ErrorIs(t, err, delivery.ErrSettlementAlreadyDecided)
}
