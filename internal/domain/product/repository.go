package product

import "context"

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (Product, error)
	GetAll(ctx context.Context, activeOnly bool) ([]Product, error)
	Create(ctx context.Context, newProduct Product) (Product, error)
	Update(ctx context.Context, req UpdateProductRequest) error
	Delete(ctx context.Context, id string) error

	CreateBatch(ctx context.Context, batch ProductionBatch) (ProductionBatch, error)
	GetBatchesByProduct(ctx context.Context, productID string) ([]ProductionBatch, error)
}
