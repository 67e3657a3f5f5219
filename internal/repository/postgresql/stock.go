package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cosmedis/backoffice-go/internal/domain/stock"
	"github.com/cosmedis/backoffice-go/internal/pkg/database"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

type stockRepositoryImpl struct {
	db *database.DB
}

func NewStockRepository(db *database.DB) stock.StockRepository {
	return &stockRepositoryImpl{db: db}
}

func (s *stockRepositoryImpl) Create(ctx context.Context, movement stock.Movement) (stock.Movement, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO stock_movements (id, product_id, type, from_location, to_location, quantity, date, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, product_id, type, from_location, to_location, quantity, date, note, created_at
	`

	var created stock.Movement
	err := q.QueryRow(ctx, query,
		movement.ID, movement.ProductID, movement.Type, movement.FromLocation,
		movement.ToLocation, movement.Quantity, movement.Date, movement.Note,
	).Scan(
		&created.ID, &created.ProductID, &created.Type, &created.FromLocation,
		&created.ToLocation, &created.Quantity, &created.Date, &created.Note, &created.CreatedAt,
	)
	if err != nil {
		return stock.Movement{}, fmt.Errorf("failed to create stock movement: %w", err)
	}
	return created, nil
}

func (s *stockRepositoryImpl) GetByID(ctx context.Context, id string) (stock.Movement, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, product_id, type, from_location, to_location, quantity, date, note, created_at
		FROM stock_movements
		WHERE id = $1
	`

	var movement stock.Movement
	err := q.QueryRow(ctx, query, id).Scan(
		&movement.ID, &movement.ProductID, &movement.Type, &movement.FromLocation,
		&movement.ToLocation, &movement.Quantity, &movement.Date, &movement.Note, &movement.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return stock.Movement{}, stock.ErrMovementNotFound
		}
		return stock.Movement{}, fmt.Errorf("failed to get stock movement %s: %w", id, err)
	}
	return movement, nil
}

func (s *stockRepositoryImpl) List(ctx context.Context, filter stock.MovementFilter) ([]stock.Movement, int64, error) {
	q := GetQuerier(ctx, s.db)

	base := psql.Select().From("stock_movements")
	if filter.ProductID != nil {
		base = base.Where(squirrel.Eq{"product_id": *filter.ProductID})
	}
	if filter.Type != nil {
		base = base.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Location != nil {
		base = base.Where(squirrel.Or{
			squirrel.Eq{"from_location": *filter.Location},
			squirrel.Eq{"to_location": *filter.Location},
		})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build stock count: %w", err)
	}
	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count stock movements: %w", err)
	}

	listBuilder := base.
		Columns("id", "product_id", "type", "from_location", "to_location", "quantity", "date", "note", "created_at").
		OrderBy("date DESC", "created_at DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(uint64(filter.Limit))
		if filter.Page > 1 {
			listBuilder = listBuilder.Offset(uint64((filter.Page - 1) * filter.Limit))
		}
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build stock list: %w", err)
	}

	var movements []stock.Movement
	if err := pgxscan.Select(ctx, q, &movements, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list stock movements: %w", err)
	}
	return movements, totalCount, nil
}

func (s *stockRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM stock_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stock movement %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return stock.ErrMovementNotFound
	}
	return nil
}

// Levels folds the movement history into a per-location balance. A transfer
// contributes to both of its locations; negative balances come out as-is.
func (s *stockRepositoryImpl) Levels(ctx context.Context, productID string) ([]stock.Level, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT product_id, location, SUM(quantity) AS quantity
		FROM (
			SELECT product_id, to_location AS location, quantity
			FROM stock_movements
			WHERE product_id = $1 AND to_location IS NOT NULL
			UNION ALL
			SELECT product_id, from_location AS location, -quantity
			FROM stock_movements
			WHERE product_id = $1 AND from_location IS NOT NULL
		) sides
		GROUP BY product_id, location
		ORDER BY location
	`

	var levels []stock.Level
	if err := pgxscan.Select(ctx, q, &levels, query, productID); err != nil {
		return nil, fmt.Errorf("failed to compute stock levels: %w", err)
	}
	return levels, nil
}
