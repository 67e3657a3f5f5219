package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cosmedis/backoffice-go/internal/domain/payment"
	"github.com/cosmedis/backoffice-go/internal/pkg/database"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

func (p *paymentRepositoryImpl) Create(ctx context.Context, record payment.PaymentRecord) (payment.PaymentRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payments (id, employee_id, month, date, type, basic, commission, deduction, net, method, proof_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, employee_id, month, date, type, basic, commission, deduction, net, method, proof_url, created_at, updated_at
	`

	var created payment.PaymentRecord
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Month, record.Date, record.Type,
		record.Basic, record.Commission, record.Deduction, record.Net, record.Method, record.ProofURL,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Month, &created.Date, &created.Type,
		&created.Basic, &created.Commission, &created.Deduction, &created.Net,
		&created.Method, &created.ProofURL, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return payment.PaymentRecord{}, fmt.Errorf("failed to create payment: %w", err)
	}
	return created, nil
}

func (p *paymentRepositoryImpl) GetByID(ctx context.Context, id string) (payment.PaymentRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT p.id, p.employee_id, p.month, p.date, p.type, p.basic, p.commission, p.deduction,
			p.net, p.method, p.proof_url, p.created_at, p.updated_at, e.full_name AS employee_name
		FROM payments p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var record payment.PaymentRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.Month, &record.Date, &record.Type,
		&record.Basic, &record.Commission, &record.Deduction, &record.Net,
		&record.Method, &record.ProofURL, &record.CreatedAt, &record.UpdatedAt, &record.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.PaymentRecord{}, payment.ErrPaymentNotFound
		}
		return payment.PaymentRecord{}, fmt.Errorf("failed to get payment %s: %w", id, err)
	}
	return record, nil
}

func (p *paymentRepositoryImpl) List(ctx context.Context, filter payment.PaymentFilter) ([]payment.PaymentRecord, int64, error) {
	q := GetQuerier(ctx, p.db)

	base := psql.Select().From("payments p")
	if filter.EmployeeID != nil {
		base = base.Where(squirrel.Eq{"p.employee_id": *filter.EmployeeID})
	}
	if filter.Month != nil {
		base = base.Where(squirrel.Eq{"p.month": *filter.Month})
	}
	if filter.Type != nil {
		base = base.Where(squirrel.Eq{"p.type": *filter.Type})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build payment count: %w", err)
	}
	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	listBuilder := base.
		Columns(
			"p.id", "p.employee_id", "p.month", "p.date", "p.type", "p.basic", "p.commission",
			"p.deduction", "p.net", "p.method", "p.proof_url", "p.created_at", "p.updated_at",
			"e.full_name AS employee_name",
		).
		LeftJoin("employees e ON e.id = p.employee_id").
		OrderBy("p.date DESC", "p.created_at DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(uint64(filter.Limit))
		if filter.Page > 1 {
			listBuilder = listBuilder.Offset(uint64((filter.Page - 1) * filter.Limit))
		}
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build payment list: %w", err)
	}

	var records []payment.PaymentRecord
	if err := pgxscan.Select(ctx, q, &records, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	return records, totalCount, nil
}

// Update persists an already derived record; amounts arrive final.
func (p *paymentRepositoryImpl) Update(ctx context.Context, record payment.PaymentRecord) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payments
		SET date = $1, basic = $2, commission = $3, deduction = $4, net = $5,
			method = $6, proof_url = $7, updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		record.Date, record.Basic, record.Commission, record.Deduction, record.Net,
		record.Method, record.ProofURL, record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", record.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}

func (p *paymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}
