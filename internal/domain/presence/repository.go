package presence

import (
	"context"
	"time"
)

type PresenceRepository interface {
	Create(ctx context.Context, record PresenceRecord) (PresenceRecord, error)
	GetByID(ctx context.Context, id string) (PresenceRecord, error)
	Update(ctx context.Context, req UpdatePresenceRequest) error
	Delete(ctx context.Context, id string) error

	// GetByEmployeeAndRange returns the records for one employee whose date
	// falls in [start, end). Orphaned rows (NULL employee_id) never match.
	GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]PresenceRecord, error)

	List(ctx context.Context, filter PresenceFilter) ([]PresenceRecord, int64, error)
}
