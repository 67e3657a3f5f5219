package product

import (
	"context"
	"fmt"

	"github.com/cosmedis/backoffice-go/internal/domain/product"
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductServiceImpl struct {
	productRepo product.ProductRepository
}

func NewProductService(productRepo product.ProductRepository) product.ProductService {
	return &ProductServiceImpl{productRepo: productRepo}
}

func (s *ProductServiceImpl) CreateProduct(ctx context.Context, req product.CreateProductRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	newProduct := product.Product{
		ID:     uuid.NewString(),
		Name:   req.Name,
		SKU:    req.SKU,
		Prix1:  req.Prix1,
		Prix2:  req.Prix2,
		Prix3:  req.Prix3,
		Active: true,
	}

	created, err := s.productRepo.Create(ctx, newProduct)
	if err != nil {
		return product.ProductResponse{}, fmt.Errorf("failed to create product: %w", err)
	}

	return mapToProductResponse(created), nil
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, id string) (product.ProductResponse, error) {
	p, err := s.productRepo.GetByID(ctx, validator.CanonicalID(id))
	if err != nil {
		return product.ProductResponse{}, err
	}
	return mapToProductResponse(p), nil
}

func (s *ProductServiceImpl) ListProducts(ctx context.Context, activeOnly bool) ([]product.ProductResponse, error) {
	products, err := s.productRepo.GetAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]product.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, mapToProductResponse(p))
	}
	return result, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, req product.UpdateProductRequest) (product.ProductResponse, error) {
	req.ID = validator.CanonicalID(req.ID)
	if _, err := s.productRepo.GetByID(ctx, req.ID); err != nil {
		return product.ProductResponse{}, err
	}

	if err := s.productRepo.Update(ctx, req); err != nil {
		return product.ProductResponse{}, fmt.Errorf("failed to update product: %w", err)
	}

	return s.GetProduct(ctx, req.ID)
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	id = validator.CanonicalID(id)
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// RecordBatch derives the unit cost before persisting:
// unitCost = (material + labor + overhead) / quantity.
func (s *ProductServiceImpl) RecordBatch(ctx context.Context, req product.CreateBatchRequest) (product.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return product.BatchResponse{}, err
	}

	productID := validator.CanonicalID(req.ProductID)
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return product.BatchResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	batch := product.ProductionBatch{
		ID:           uuid.NewString(),
		ProductID:    productID,
		Date:         date,
		Quantity:     req.Quantity,
		MaterialCost: req.MaterialCost,
		LaborCost:    req.LaborCost,
		OverheadCost: req.OverheadCost,
		UnitCost:     UnitCost(req.Quantity, req.MaterialCost, req.LaborCost, req.OverheadCost),
		Note:         req.Note,
	}

	created, err := s.productRepo.CreateBatch(ctx, batch)
	if err != nil {
		return product.BatchResponse{}, fmt.Errorf("failed to record production batch: %w", err)
	}

	return mapToBatchResponse(created), nil
}

func (s *ProductServiceImpl) ListBatches(ctx context.Context, productID string) ([]product.BatchResponse, error) {
	productID = validator.CanonicalID(productID)
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	batches, err := s.productRepo.GetBatchesByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	result := make([]product.BatchResponse, 0, len(batches))
	for _, b := range batches {
		result = append(result, mapToBatchResponse(b))
	}
	return result, nil
}

// UnitCost spreads the batch's total cost over its quantity. Quantity is
// validated positive before this runs.
func UnitCost(quantity, material, labor, overhead decimal.Decimal) decimal.Decimal {
	if quantity.IsZero() {
		return decimal.Zero
	}
	return material.Add(labor).Add(overhead).Div(quantity)
}

func mapToProductResponse(p product.Product) product.ProductResponse {
	return product.ProductResponse{
		ID:     p.ID,
		Name:   p.Name,
		SKU:    p.SKU,
		Prix1:  p.Prix1,
		Prix2:  p.Prix2,
		Prix3:  p.Prix3,
		Active: p.Active,
	}
}

func mapToBatchResponse(b product.ProductionBatch) product.BatchResponse {
	return product.BatchResponse{
		ID:           b.ID,
		ProductID:    b.ProductID,
		Date:         b.Date.Format("2006-01-02"),
		Quantity:     b.Quantity,
		MaterialCost: b.MaterialCost,
		LaborCost:    b.LaborCost,
		OverheadCost: b.OverheadCost,
		UnitCost:     b.UnitCost,
		Note:         b.Note,
	}
}
