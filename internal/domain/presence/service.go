package presence

import "context"

type PresenceService interface {
	CreateRecord(ctx context.Context, req CreatePresenceRequest) (PresenceResponse, error)
	GetRecord(ctx context.Context, id string) (PresenceResponse, error)
	UpdateRecord(ctx context.Context, req UpdatePresenceRequest) (PresenceResponse, error)
	DeleteRecord(ctx context.Context, id string) error
	ListRecords(ctx context.Context, filter PresenceFilter) (ListPresenceResponse, error)

	// MonthlySummary aggregates an employee's adjustments for a YYYY-MM month
	// and prices each record against the employee's daily and hourly rates.
	MonthlySummary(ctx context.Context, employeeID, month string) (MonthlySummaryResponse, error)
}
