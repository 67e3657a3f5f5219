package commission

import (
	"context"
	"fmt"

	"github.com/cosmedis/backoffice-go/internal/domain/commission"
	"github.com/cosmedis/backoffice-go/internal/domain/employee"
	"github.com/cosmedis/backoffice-go/internal/domain/product"
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CommissionServiceImpl struct {
	commissionRepo commission.CommissionRepository
	employeeRepo   employee.EmployeeRepository
	productRepo    product.ProductRepository
}

func NewCommissionService(
	commissionRepo commission.CommissionRepository,
	employeeRepo employee.EmployeeRepository,
	productRepo product.ProductRepository,
) commission.CommissionService {
	return &CommissionServiceImpl{
		commissionRepo: commissionRepo,
		employeeRepo:   employeeRepo,
		productRepo:    productRepo,
	}
}

// ResolveEntry returns all-zero tiers for a pair with no stored entry;
// absence means zero commission, never an error.
func (s *CommissionServiceImpl) ResolveEntry(ctx context.Context, employeeID, productID string) (commission.EntryResponse, error) {
	employeeID = validator.CanonicalID(employeeID)
	productID = validator.CanonicalID(productID)

	entry, found, err := s.commissionRepo.GetEntry(ctx, employeeID, productID)
	if err != nil {
		return commission.EntryResponse{}, fmt.Errorf("failed to resolve commission entry: %w", err)
	}
	if !found {
		return commission.EntryResponse{
			EmployeeID: employeeID,
			ProductID:  productID,
			C1:         decimal.Zero,
			C2:         decimal.Zero,
			C3:         decimal.Zero,
		}, nil
	}

	return mapToEntryResponse(entry), nil
}

func (s *CommissionServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]commission.EntryResponse, error) {
	employeeID = validator.CanonicalID(employeeID)
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	entries, err := s.commissionRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]commission.EntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, mapToEntryResponse(e))
	}
	return result, nil
}

func (s *CommissionServiceImpl) SetEntry(ctx context.Context, req commission.SetEntryRequest) (commission.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return commission.EntryResponse{}, err
	}

	employeeID := validator.CanonicalID(req.EmployeeID)
	productID := validator.CanonicalID(req.ProductID)

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return commission.EntryResponse{}, err
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return commission.EntryResponse{}, err
	}

	entry, err := s.commissionRepo.Upsert(ctx, commission.Entry{
		EmployeeID: employeeID,
		ProductID:  productID,
		C1:         req.C1,
		C2:         req.C2,
		C3:         req.C3,
	})
	if err != nil {
		return commission.EntryResponse{}, fmt.Errorf("failed to set commission entry: %w", err)
	}

	return mapToEntryResponse(entry), nil
}

// BulkApply writes the provided tiers to every product for one employee.
// Tiers absent from the payload keep their stored value per product; the
// whole apply is one transaction in the repository.
func (s *CommissionServiceImpl) BulkApply(ctx context.Context, req commission.BulkApplyRequest) (commission.BulkApplyResponse, error) {
	if err := req.Validate(); err != nil {
		return commission.BulkApplyResponse{}, err
	}

	employeeID := validator.CanonicalID(req.EmployeeID)
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return commission.BulkApplyResponse{}, err
	}

	products, err := s.productRepo.GetAll(ctx, false)
	if err != nil {
		return commission.BulkApplyResponse{}, fmt.Errorf("failed to load products: %w", err)
	}

	existing, err := s.commissionRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return commission.BulkApplyResponse{}, fmt.Errorf("failed to load commission entries: %w", err)
	}
	existingByProduct := make(map[string]commission.Entry, len(existing))
	for _, e := range existing {
		existingByProduct[e.ProductID] = e
	}

	entries := make([]commission.Entry, 0, len(products))
	for _, p := range products {
		current := existingByProduct[p.ID]
		current.EmployeeID = employeeID
		current.ProductID = p.ID
		entries = append(entries, mergeTiers(current, req))
	}

	if err := s.commissionRepo.UpsertAll(ctx, entries); err != nil {
		return commission.BulkApplyResponse{}, fmt.Errorf("failed to bulk apply commission entries: %w", err)
	}

	return commission.BulkApplyResponse{
		EmployeeID:      employeeID,
		ProductsUpdated: len(entries),
	}, nil
}

// mergeTiers overlays the bulk payload on one product's stored entry: a nil
// tier keeps the current value, a set tier replaces it.
func mergeTiers(current commission.Entry, req commission.BulkApplyRequest) commission.Entry {
	if req.C1 != nil {
		current.C1 = *req.C1
	}
	if req.C2 != nil {
		current.C2 = *req.C2
	}
	if req.C3 != nil {
		current.C3 = *req.C3
	}
	return current
}

func mapToEntryResponse(e commission.Entry) commission.EntryResponse {
	return commission.EntryResponse{
		EmployeeID: e.EmployeeID,
		ProductID:  e.ProductID,
		C1:         e.C1,
		C2:         e.C2,
		C3:         e.C3,
	}
}
