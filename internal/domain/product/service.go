package product

import "context"

type ProductService interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	GetProduct(ctx context.Context, id string) (ProductResponse, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]ProductResponse, error)
	UpdateProduct(ctx context.Context, req UpdateProductRequest) (ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error

	// RecordBatch derives the unit cost from the batch's cost components.
	RecordBatch(ctx context.Context, req CreateBatchRequest) (BatchResponse, error)
	ListBatches(ctx context.Context, productID string) ([]BatchResponse, error)
}
