package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cosmedis/backoffice-go/internal/domain/employee"
	"github.com/cosmedis/backoffice-go/internal/domain/presence"
	"github.com/cosmedis/backoffice-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceRepository_OrphanedAfterEmployeeDelete(t *testing.T) {
	setup, err := NewTestDatabase()
	require.NoError(t, err)
	if setup == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
	t.Cleanup(setup.Close)

	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	emp, err := employeeRepo.Create(ctx, employee.Employee{
		ID:       uuid.NewString(),
		FullName: "Karim Benjelloun",
		Salary:   decimal.NewFromInt(5200),
		Active:   true,
	})
	require.NoError(t, err)

	presenceRepo := postgresql.NewPresenceRepository(setup.DB)
	record, err := presenceRepo.Create(ctx, presence.PresenceRecord{
		ID:         uuid.NewString(),
		EmployeeID: &emp.ID,
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DaysAdj:    decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	require.NoError(t, employeeRepo.Delete(ctx, emp.ID))

	// The row survives the delete with a NULL employee_id.
	orphan, err := presenceRepo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.EmployeeID)

	// And it never matches a per-employee aggregation.
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	records, err := presenceRepo.GetByEmployeeAndRange(ctx, emp.ID, start, start.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Empty(t, records)
}
