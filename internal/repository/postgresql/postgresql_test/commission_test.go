package postgresql_test

import (
	"context"
	"testing"

	"github.com/cosmedis/backoffice-go/internal/domain/commission"
	"github.com/cosmedis/backoffice-go/internal/domain/employee"
	"github.com/cosmedis/backoffice-go/internal/domain/product"
	"github.com/cosmedis/backoffice-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCommissionFixtures(t *testing.T) (*TestDatabaseSetup, string, string) {
	t.Helper()

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
		FullName: "Rachida El Amrani",
		Salary:   decimal.NewFromInt(12000),
		Active:   true,
	})
	require.NoError(t, err)

	productRepo := postgresql.NewProductRepository(setup.DB)
	prod, err := productRepo.Create(ctx, product.Product{
		ID:     uuid.NewString(),
		Name:   "Crème hydratante 50ml",
		Active: true,
	})
	require.NoError(t, err)

	return setup, emp.ID, prod.ID
}

func TestCommissionRepository_UpsertAndGet(t *testing.T) {
	setup, employeeID, productID := setupCommissionFixtures(t)
	ctx := context.Background()
	repo := postgresql.NewCommissionRepository(setup.DB)

	_, found, err := repo.GetEntry(ctx, employeeID, productID)
	require.NoError(t, err)
	assert.False(t, found)

	saved, err := repo.Upsert(ctx, commission.Entry{
		EmployeeID: employeeID,
		ProductID:  productID,
		C1:         decimal.NewFromInt(15),
		C2:         decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.True(t, saved.C1.Equal(decimal.NewFromInt(15)))

	// Upsert on the same pair replaces, it does not duplicate.
	saved, err = repo.Upsert(ctx, commission.Entry{
		EmployeeID: employeeID,
		ProductID:  productID,
		C1:         decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	assert.True(t, saved.C1.Equal(decimal.NewFromInt(20)))
	assert.True(t, saved.C2.IsZero())

	entries, err := repo.GetByEmployee(ctx, employeeID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCommissionRepository_UpsertAll(t *testing.T) {
	setup, employeeID, productID := setupCommissionFixtures(t)
	ctx := context.Background()
	repo := postgresql.NewCommissionRepository(setup.DB)

	err := repo.UpsertAll(ctx, []commission.Entry{
		{EmployeeID: employeeID, ProductID: productID, C1: decimal.NewFromInt(50)},
	})
	require.NoError(t, err)

	entry, found, err := repo.GetEntry(ctx, employeeID, productID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, entry.C1.Equal(decimal.NewFromInt(50)))
}
