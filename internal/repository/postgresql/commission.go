package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cosmedis/backoffice-go/internal/domain/commission"
	"github.com/cosmedis/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type commissionRepositoryImpl struct {
	db *database.DB
}

func NewCommissionRepository(db *database.DB) commission.CommissionRepository {
	return &commissionRepositoryImpl{db: db}
}

func (c *commissionRepositoryImpl) GetEntry(ctx context.Context, employeeID, productID string) (commission.Entry, bool, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT employee_id, product_id, c1, c2, c3, updated_at
		FROM commission_entries
		WHERE employee_id = $1 AND product_id = $2
	`

	var entry commission.Entry
	err := q.QueryRow(ctx, query, employeeID, productID).Scan(
		&entry.EmployeeID, &entry.ProductID, &entry.C1, &entry.C2, &entry.C3, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return commission.Entry{}, false, nil
		}
		return commission.Entry{}, false, fmt.Errorf("failed to get commission entry: %w", err)
	}
	return entry, true, nil
}

func (c *commissionRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]commission.Entry, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT employee_id, product_id, c1, c2, c3, updated_at
		FROM commission_entries
		WHERE employee_id = $1
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list commission entries: %w", err)
	}
	defer rows.Close()

	var entries []commission.Entry
	for rows.Next() {
		var entry commission.Entry
		err := rows.Scan(&entry.EmployeeID, &entry.ProductID, &entry.C1, &entry.C2, &entry.C3, &entry.UpdatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (c *commissionRepositoryImpl) Upsert(ctx context.Context, entry commission.Entry) (commission.Entry, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO commission_entries (employee_id, product_id, c1, c2, c3)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, product_id)
		DO UPDATE SET c1 = EXCLUDED.c1, c2 = EXCLUDED.c2, c3 = EXCLUDED.c3, updated_at = NOW()
		RETURNING employee_id, product_id, c1, c2, c3, updated_at
	`

	var saved commission.Entry
	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.ProductID, entry.C1, entry.C2, entry.C3,
	).Scan(&saved.EmployeeID, &saved.ProductID, &saved.C1, &saved.C2, &saved.C3, &saved.UpdatedAt)
	if err != nil {
		return commission.Entry{}, fmt.Errorf("failed to upsert commission entry: %w", err)
	}
	return saved, nil
}

// UpsertAll writes every entry inside one transaction so a bulk apply either
// lands completely or not at all.
func (c *commissionRepositoryImpl) UpsertAll(ctx context.Context, entries []commission.Entry) error {
	return WithTransaction(ctx, c.db, func(txCtx context.Context) error {
		for _, entry := range entries {
			if _, err := c.Upsert(txCtx, entry); err != nil {
				return err
			}
		}
		return nil
	})
}
