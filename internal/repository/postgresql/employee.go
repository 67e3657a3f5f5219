package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cosmedis/backoffice-go/internal/domain/employee"
	"github.com/cosmedis/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, full_name, role, business, salary, active, permissions, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.Role, &emp.Business, &emp.Salary,
		&emp.Active, &emp.Permissions, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return emp, nil
}

func (e *employeeRepositoryImpl) GetAll(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, full_name, role, business, salary, active, permissions, created_at, updated_at
		FROM employees
	`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.Role, &emp.Business, &emp.Salary,
			&emp.Active, &emp.Permissions, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, full_name, role, business, salary, active, permissions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, full_name, role, business, salary, active, permissions, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.FullName, newEmployee.Role, newEmployee.Business,
		newEmployee.Salary, newEmployee.Active, newEmployee.Permissions,
	).Scan(
		&created.ID, &created.FullName, &created.Role, &created.Business, &created.Salary,
		&created.Active, &created.Permissions, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	builder := psql.Update("employees").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID})

	if req.FullName != nil {
		builder = builder.Set("full_name", *req.FullName)
	}
	if req.Role != nil {
		builder = builder.Set("role", *req.Role)
	}
	if req.Business != nil {
		builder = builder.Set("business", *req.Business)
	}
	if req.Salary != nil {
		builder = builder.Set("salary", *req.Salary)
	}
	if req.Active != nil {
		builder = builder.Set("active", *req.Active)
	}
	if req.Permissions != nil {
		builder = builder.Set("permissions", *req.Permissions)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build employee update: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete removes the employee row. Presence rows keep a NULL employee_id via
// ON DELETE SET NULL so historical adjustments survive as orphans.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
