package commission

import "context"

type CommissionService interface {
	// ResolveEntry never fails on absence: a missing pair resolves to
	// all-zero tiers.
	ResolveEntry(ctx context.Context, employeeID, productID string) (EntryResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]EntryResponse, error)
	SetEntry(ctx context.Context, req SetEntryRequest) (EntryResponse, error)
	BulkApply(ctx context.Context, req BulkApplyRequest) (BulkApplyResponse, error)
}
