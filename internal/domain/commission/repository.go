package commission

import "context"

type CommissionRepository interface {
	// GetEntry returns the stored entry or ErrNoRows mapped to a zero entry by
	// the service; repositories report absence, resolution happens above.
	GetEntry(ctx context.Context, employeeID, productID string) (Entry, bool, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]Entry, error)
	Upsert(ctx context.Context, entry Entry) (Entry, error)

	// UpsertAll replaces the given entries in one transaction so a crash
	// mid-apply cannot leave a half-updated table.
	UpsertAll(ctx context.Context, entries []Entry) error
}
