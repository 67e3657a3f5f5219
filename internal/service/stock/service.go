package stock

import (
	"context"
	"fmt"

	"github.com/cosmedis/backoffice-go/internal/domain/product"
	"github.com/cosmedis/backoffice-go/internal/domain/stock"
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type StockServiceImpl struct {
	stockRepo   stock.StockRepository
	productRepo product.ProductRepository
}

func NewStockService(stockRepo stock.StockRepository, productRepo product.ProductRepository) stock.StockService {
	return &StockServiceImpl{stockRepo: stockRepo, productRepo: productRepo}
}

func (s *StockServiceImpl) RecordMovement(ctx context.Context, req stock.CreateMovementRequest) (stock.MovementResponse, error) {
	if err := req.Validate(); err != nil {
		return stock.MovementResponse{}, err
	}

	productID := validator.CanonicalID(req.ProductID)
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return stock.MovementResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	movement := stock.Movement{
		ID:           uuid.NewString(),
		ProductID:    productID,
		Type:         stock.MovementType(req.Type),
		FromLocation: req.FromLocation,
		ToLocation:   req.ToLocation,
		Quantity:     req.Quantity,
		Date:         date,
		Note:         req.Note,
	}

	created, err := s.stockRepo.Create(ctx, movement)
	if err != nil {
		return stock.MovementResponse{}, fmt.Errorf("failed to record stock movement: %w", err)
	}

	return mapToMovementResponse(created), nil
}

func (s *StockServiceImpl) GetMovement(ctx context.Context, id string) (stock.MovementResponse, error) {
	movement, err := s.stockRepo.GetByID(ctx, validator.CanonicalID(id))
	if err != nil {
		return stock.MovementResponse{}, err
	}
	return mapToMovementResponse(movement), nil
}

func (s *StockServiceImpl) ListMovements(ctx context.Context, filter stock.MovementFilter) (stock.ListMovementResponse, error) {
	movements, totalCount, err := s.stockRepo.List(ctx, filter)
	if err != nil {
		return stock.ListMovementResponse{}, err
	}

	result := make([]stock.MovementResponse, 0, len(movements))
	for _, m := range movements {
		result = append(result, mapToMovementResponse(m))
	}

	return stock.ListMovementResponse{
		Data:       result,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *StockServiceImpl) DeleteMovement(ctx context.Context, id string) error {
	id = validator.CanonicalID(id)
	if _, err := s.stockRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.stockRepo.Delete(ctx, id)
}

// GetLevels returns per-location balances for one product, computed from the
// movement history. Negative balances surface as-is.
func (s *StockServiceImpl) GetLevels(ctx context.Context, productID string) ([]stock.LevelResponse, error) {
	productID = validator.CanonicalID(productID)
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	levels, err := s.stockRepo.Levels(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stock levels: %w", err)
	}

	result := make([]stock.LevelResponse, 0, len(levels))
	for _, l := range levels {
		result = append(result, stock.LevelResponse{
			ProductID: l.ProductID,
			Location:  l.Location,
			Quantity:  l.Quantity,
		})
	}
	return result, nil
}

func mapToMovementResponse(m stock.Movement) stock.MovementResponse {
	return stock.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		Type:         string(m.Type),
		FromLocation: m.FromLocation,
		ToLocation:   m.ToLocation,
		Quantity:     m.Quantity,
		Date:         m.Date.Format("2006-01-02"),
		Note:         m.Note,
	}
}
