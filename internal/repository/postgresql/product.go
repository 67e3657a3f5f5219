package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cosmedis/backoffice-go/internal/domain/product"
	"github.com/cosmedis/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type productRepositoryImpl struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) product.ProductRepository {
	return &productRepositoryImpl{db: db}
}

func (p *productRepositoryImpl) GetByID(ctx context.Context, id string) (product.Product, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, sku, prix1, prix2, prix3, active, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var prod product.Product
	err := q.QueryRow(ctx, query, id).Scan(
		&prod.ID, &prod.Name, &prod.SKU, &prod.Prix1, &prod.Prix2, &prod.Prix3,
		&prod.Active, &prod.CreatedAt, &prod.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrProductNotFound
		}
		return product.Product{}, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return prod, nil
}

func (p *productRepositoryImpl) GetAll(ctx context.Context, activeOnly bool) ([]product.Product, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, sku, prix1, prix2, prix3, active, created_at, updated_at
		FROM products
	`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		var prod product.Product
		err := rows.Scan(
			&prod.ID, &prod.Name, &prod.SKU, &prod.Prix1, &prod.Prix2, &prod.Prix3,
			&prod.Active, &prod.CreatedAt, &prod.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, prod)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (p *productRepositoryImpl) Create(ctx context.Context, newProduct product.Product) (product.Product, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO products (id, name, sku, prix1, prix2, prix3, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, sku, prix1, prix2, prix3, active, created_at, updated_at
	`

	var created product.Product
	err := q.QueryRow(ctx, query,
		newProduct.ID, newProduct.Name, newProduct.SKU,
		newProduct.Prix1, newProduct.Prix2, newProduct.Prix3, newProduct.Active,
	).Scan(
		&created.ID, &created.Name, &created.SKU, &created.Prix1, &created.Prix2,
		&created.Prix3, &created.Active, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return product.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

func (p *productRepositoryImpl) Update(ctx context.Context, req product.UpdateProductRequest) error {
	q := GetQuerier(ctx, p.db)

	builder := psql.Update("products").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID})

	if req.Name != nil {
		builder = builder.Set("name", *req.Name)
	}
	if req.SKU != nil {
		builder = builder.Set("sku", *req.SKU)
	}
	if req.Prix1 != nil {
		builder = builder.Set("prix1", *req.Prix1)
	}
	if req.Prix2 != nil {
		builder = builder.Set("prix2", *req.Prix2)
	}
	if req.Prix3 != nil {
		builder = builder.Set("prix3", *req.Prix3)
	}
	if req.Active != nil {
		builder = builder.Set("active", *req.Active)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build product update: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func (p *productRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func (p *productRepositoryImpl) CreateBatch(ctx context.Context, batch product.ProductionBatch) (product.ProductionBatch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO production_batches (id, product_id, date, quantity, material_cost, labor_cost, overhead_cost, unit_cost, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, product_id, date, quantity, material_cost, labor_cost, overhead_cost, unit_cost, note, created_at
	`

	var created product.ProductionBatch
	err := q.QueryRow(ctx, query,
		batch.ID, batch.ProductID, batch.Date, batch.Quantity,
		batch.MaterialCost, batch.LaborCost, batch.OverheadCost, batch.UnitCost, batch.Note,
	).Scan(
		&created.ID, &created.ProductID, &created.Date, &created.Quantity,
		&created.MaterialCost, &created.LaborCost, &created.OverheadCost,
		&created.UnitCost, &created.Note, &created.CreatedAt,
	)
	if err != nil {
		return product.ProductionBatch{}, fmt.Errorf("failed to create production batch: %w", err)
	}
	return created, nil
}

func (p *productRepositoryImpl) GetBatchesByProduct(ctx context.Context, productID string) ([]product.ProductionBatch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, product_id, date, quantity, material_cost, labor_cost, overhead_cost, unit_cost, note, created_at
		FROM production_batches
		WHERE product_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list production batches: %w", err)
	}
	defer rows.Close()

	var batches []product.ProductionBatch
	for rows.Next() {
		var batch product.ProductionBatch
		err := rows.Scan(
			&batch.ID, &batch.ProductID, &batch.Date, &batch.Quantity,
			&batch.MaterialCost, &batch.LaborCost, &batch.OverheadCost,
			&batch.UnitCost, &batch.Note, &batch.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}
