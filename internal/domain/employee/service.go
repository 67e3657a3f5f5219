package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeactivateEmployee flips the active flag off without touching history.
	DeactivateEmployee(ctx context.Context, id string) error

	// DeleteEmployee removes the row permanently. Presence and payment history
	// referencing the employee is kept; orphaned rows are tolerated downstream.
	DeleteEmployee(ctx context.Context, id string) error
}
