package employee

import (
	"context"
	"fmt"

	"github.com/cosmedis/backoffice-go/internal/domain/employee"
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		ID:          uuid.NewString(),
		FullName:    req.FullName,
		Role:        req.Role,
		Business:    req.Business,
		Salary:      req.Salary,
		Active:      true,
		Permissions: req.Permissions,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, validator.CanonicalID(id))
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToEmployeeResponse(emp))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	req.ID = validator.CanonicalID(req.ID)
	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.GetEmployee(ctx, req.ID)
}

func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	inactive := false
	_, err := s.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:     id,
		Active: &inactive,
	})
	return err
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	id = validator.CanonicalID(id)
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	permissions := emp.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	return employee.EmployeeResponse{
		ID:          emp.ID,
		FullName:    emp.FullName,
		Role:        emp.Role,
		Business:    emp.Business,
		Salary:      emp.Salary,
		Active:      emp.Active,
		Permissions: permissions,
	}
}
