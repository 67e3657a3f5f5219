package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cosmedis/backoffice-go/internal/domain/presence"
	"github.com/cosmedis/backoffice-go/internal/pkg/database"
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

type presenceRepositoryImpl struct {
	db *database.DB
}

func NewPresenceRepository(db *database.DB) presence.PresenceRepository {
	return &presenceRepositoryImpl{db: db}
}

func (p *presenceRepositoryImpl) Create(ctx context.Context, record presence.PresenceRecord) (presence.PresenceRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO presence_records (id, employee_id, date, days_adj, hours_adj, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, date, days_adj, hours_adj, note, created_at, updated_at
	`

	var created presence.PresenceRecord
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Date, record.DaysAdj, record.HoursAdj, record.Note,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.DaysAdj,
		&created.HoursAdj, &created.Note, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return presence.PresenceRecord{}, fmt.Errorf("failed to create presence record: %w", err)
	}
	return created, nil
}

func (p *presenceRepositoryImpl) GetByID(ctx context.Context, id string) (presence.PresenceRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, date, days_adj, hours_adj, note, created_at, updated_at
		FROM presence_records
		WHERE id = $1
	`

	var record presence.PresenceRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.DaysAdj,
		&record.HoursAdj, &record.Note, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return presence.PresenceRecord{}, presence.ErrPresenceRecordNotFound
		}
		return presence.PresenceRecord{}, fmt.Errorf("failed to get presence record %s: %w", id, err)
	}
	return record, nil
}

func (p *presenceRepositoryImpl) Update(ctx context.Context, req presence.UpdatePresenceRequest) error {
	q := GetQuerier(ctx, p.db)

	builder := psql.Update("presence_records").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID})

	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		builder = builder.Set("date", date)
	}
	if req.DaysAdj != nil {
		builder = builder.Set("days_adj", *req.DaysAdj)
	}
	if req.HoursAdj != nil {
		builder = builder.Set("hours_adj", *req.HoursAdj)
	}
	if req.Note != nil {
		builder = builder.Set("note", *req.Note)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build presence update: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update presence record %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return presence.ErrPresenceRecordNotFound
	}
	return nil
}

func (p *presenceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM presence_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete presence record %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return presence.ErrPresenceRecordNotFound
	}
	return nil
}

// GetByEmployeeAndRange returns records in [start, end). Orphaned rows carry a
// NULL employee_id and never match.
func (p *presenceRepositoryImpl) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]presence.PresenceRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, date, days_adj, hours_adj, note, created_at, updated_at
		FROM presence_records
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date, created_at
	`

	var records []presence.PresenceRecord
	if err := pgxscan.Select(ctx, q, &records, query, employeeID, start, end); err != nil {
		return nil, fmt.Errorf("failed to list presence records: %w", err)
	}
	return records, nil
}

func (p *presenceRepositoryImpl) List(ctx context.Context, filter presence.PresenceFilter) ([]presence.PresenceRecord, int64, error) {
	q := GetQuerier(ctx, p.db)

	base := psql.Select().From("presence_records")
	if filter.EmployeeID != nil {
		base = base.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.Month != nil {
		start, end, ok := validator.MonthRange(*filter.Month)
		if ok {
			base = base.Where(squirrel.GtOrEq{"date": start}).Where(squirrel.Lt{"date": end})
		}
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build presence count: %w", err)
	}
	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count presence records: %w", err)
	}

	listBuilder := base.
		Columns("id", "employee_id", "date", "days_adj", "hours_adj", "note", "created_at", "updated_at").
		OrderBy("date DESC", "created_at DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(uint64(filter.Limit))
		if filter.Page > 1 {
			listBuilder = listBuilder.Offset(uint64((filter.Page - 1) * filter.Limit))
		}
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build presence list: %w", err)
	}

	var records []presence.PresenceRecord
	if err := pgxscan.Select(ctx, q, &records, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list presence records: %w", err)
	}
	return records, totalCount, nil
}
