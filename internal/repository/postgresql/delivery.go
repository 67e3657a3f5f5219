package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cosmedis/backoffice-go/internal/domain/delivery"
	"github.com/cosmedis/backoffice-go/internal/pkg/database"
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type deliveryRepositoryImpl struct {
	db *database.DB
}

func NewDeliveryRepository(db *database.DB) delivery.DeliveryRepository {
	return &deliveryRepositoryImpl{db: db}
}

func (d *deliveryRepositoryImpl) Create(ctx context.Context, newDelivery delivery.Delivery) (delivery.Delivery, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO deliveries (id, order_ref, driver_id, destination, amount, status, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, order_ref, driver_id, destination, amount, status, date, delivered_at, created_at, updated_at
	`

	var created delivery.Delivery
	err := q.QueryRow(ctx, query,
		newDelivery.ID, newDelivery.OrderRef, newDelivery.DriverID, newDelivery.Destination,
		newDelivery.Amount, newDelivery.Status, newDelivery.Date,
	).Scan(
		&created.ID, &created.OrderRef, &created.DriverID, &created.Destination,
		&created.Amount, &created.Status, &created.Date, &created.DeliveredAt,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return delivery.Delivery{}, fmt.Errorf("failed to create delivery: %w", err)
	}
	return created, nil
}

func (d *deliveryRepositoryImpl) GetByID(ctx context.Context, id string) (delivery.Delivery, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT d.id, d.order_ref, d.driver_id, d.destination, d.amount, d.status, d.date,
			d.delivered_at, d.created_at, d.updated_at, e.full_name AS driver_name
		FROM deliveries d
		LEFT JOIN employees e ON e.id = d.driver_id
		WHERE d.id = $1
	`

	var found delivery.Delivery
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.OrderRef, &found.DriverID, &found.Destination,
		&found.Amount, &found.Status, &found.Date, &found.DeliveredAt,
		&found.CreatedAt, &found.UpdatedAt, &found.DriverName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return delivery.Delivery{}, delivery.ErrDeliveryNotFound
		}
		return delivery.Delivery{}, fmt.Errorf("failed to get delivery %s: %w", id, err)
	}
	return found, nil
}

func (d *deliveryRepositoryImpl) Update(ctx context.Context, updated delivery.Delivery) error {
	q := GetQuerier(ctx, d.db)

	query := `
		UPDATE deliveries
		SET driver_id = $1, destination = $2, amount = $3, status = $4,
			delivered_at = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		updated.DriverID, updated.Destination, updated.Amount, updated.Status,
		updated.DeliveredAt, updated.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update delivery %s: %w", updated.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

func (d *deliveryRepositoryImpl) List(ctx context.Context, filter delivery.DeliveryFilter) ([]delivery.Delivery, int64, error) {
	q := GetQuerier(ctx, d.db)

	base := psql.Select().From("deliveries d")
	if filter.DriverID != nil {
		base = base.Where(squirrel.Eq{"d.driver_id": *filter.DriverID})
	}
	if filter.Status != nil {
		base = base.Where(squirrel.Eq{"d.status": *filter.Status})
	}
	if filter.Month != nil {
		start, end, ok := validator.MonthRange(*filter.Month)
		if ok {
			base = base.Where(squirrel.GtOrEq{"d.date": start}).Where(squirrel.Lt{"d.date": end})
		}
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build delivery count: %w", err)
	}
	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count deliveries: %w", err)
	}

	listBuilder := base.
		Columns(
			"d.id", "d.order_ref", "d.driver_id", "d.destination", "d.amount", "d.status",
			"d.date", "d.delivered_at", "d.created_at", "d.updated_at",
			"e.full_name AS driver_name",
		).
		LeftJoin("employees e ON e.id = d.driver_id").
		OrderBy("d.date DESC", "d.created_at DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(uint64(filter.Limit))
		if filter.Page > 1 {
			listBuilder = listBuilder.Offset(uint64((filter.Page - 1) * filter.Limit))
		}
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build delivery list: %w", err)
	}

	var deliveries []delivery.Delivery
	if err := pgxscan.Select(ctx, q, &deliveries, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list deliveries: %w", err)
	}
	return deliveries, totalCount, nil
}

// SumDeliveredByDriver totals delivered amounts for one driver in [start, end).
func (d *deliveryRepositoryImpl) SumDeliveredByDriver(ctx context.Context, driverID string, start, end time.Time) (decimal.Decimal, int, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM deliveries
		WHERE driver_id = $1 AND status = $2 AND date >= $3 AND date < $4
	`

	var total decimal.Decimal
	var count int
	err := q.QueryRow(ctx, query, driverID, delivery.StatusDelivered, start, end).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to sum delivered amounts: %w", err)
	}
	return total, count, nil
}

func (d *deliveryRepositoryImpl) CreateSettlement(ctx context.Context, s delivery.Settlement) (delivery.Settlement, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO driver_settlements (id, driver_id, month, total_collected, delivery_count, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, driver_id, month, total_collected, delivery_count, status,
			decided_by, decision_note, decided_at, created_at
	`

	var created delivery.Settlement
	err := q.QueryRow(ctx, query,
		s.ID, s.DriverID, s.Month, s.TotalCollected, s.DeliveryCount, s.Status,
	).Scan(
		&created.ID, &created.DriverID, &created.Month, &created.TotalCollected,
		&created.DeliveryCount, &created.Status, &created.DecidedBy,
		&created.DecisionNote, &created.DecidedAt, &created.CreatedAt,
	)
	if err != nil {
		return delivery.Settlement{}, fmt.Errorf("failed to create settlement: %w", err)
	}
	return created, nil
}

func (d *deliveryRepositoryImpl) GetSettlementByID(ctx context.Context, id string) (delivery.Settlement, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT s.id, s.driver_id, s.month, s.total_collected, s.delivery_count, s.status,
			s.decided_by, s.decision_note, s.decided_at, s.created_at, e.full_name AS driver_name
		FROM driver_settlements s
		LEFT JOIN employees e ON e.id = s.driver_id
		WHERE s.id = $1
	`

	var found delivery.Settlement
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.DriverID, &found.Month, &found.TotalCollected,
		&found.DeliveryCount, &found.Status, &found.DecidedBy,
		&found.DecisionNote, &found.DecidedAt, &found.CreatedAt, &found.DriverName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return delivery.Settlement{}, delivery.ErrSettlementNotFound
		}
		return delivery.Settlement{}, fmt.Errorf("failed to get settlement %s: %w", id, err)
	}
	return found, nil
}

func (d *deliveryRepositoryImpl) GetSettlementByDriverMonth(ctx context.Context, driverID, month string) (delivery.Settlement, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, driver_id, month, total_collected, delivery_count, status,
			decided_by, decision_note, decided_at, created_at
		FROM driver_settlements
		WHERE driver_id = $1 AND month = $2
	`

	var found delivery.Settlement
	err := q.QueryRow(ctx, query, driverID, month).Scan(
		&found.ID, &found.DriverID, &found.Month, &found.TotalCollected,
		&found.DeliveryCount, &found.Status, &found.DecidedBy,
		&found.DecisionNote, &found.DecidedAt, &found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return delivery.Settlement{}, delivery.ErrSettlementNotFound
		}
		return delivery.Settlement{}, fmt.Errorf("failed to get settlement for driver %s month %s: %w", driverID, month, err)
	}
	return found, nil
}

func (d *deliveryRepositoryImpl) UpdateSettlement(ctx context.Context, s delivery.Settlement) error {
	q := GetQuerier(ctx, d.db)

	query := `
		UPDATE driver_settlements
		SET status = $1, decided_by = $2, decision_note = $3, decided_at = $4
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, s.Status, s.DecidedBy, s.DecisionNote, s.DecidedAt, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update settlement %s: %w", s.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return delivery.ErrSettlementNotFound
	}
	return nil
}

func (d *deliveryRepositoryImpl) ListSettlements(ctx context.Context, driverID *string) ([]delivery.Settlement, error) {
	q := GetQuerier(ctx, d.db)

	base := psql.Select(
		"s.id", "s.driver_id", "s.month", "s.total_collected", "s.delivery_count", "s.status",
		"s.decided_by", "s.decision_note", "s.decided_at", "s.created_at",
		"e.full_name AS driver_name",
	).
		From("driver_settlements s").
		LeftJoin("employees e ON e.id = s.driver_id").
		OrderBy("s.month DESC", "s.created_at DESC")
	if driverID != nil {
		base = base.Where(squirrel.Eq{"s.driver_id": *driverID})
	}

	query, args, err := base.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build settlement list: %w", err)
	}

	var settlements []delivery.Settlement
	if err := pgxscan.Select(ctx, q, &settlements, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	return settlements, nil
}
