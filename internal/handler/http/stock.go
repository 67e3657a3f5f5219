package http

import (
	"encoding/json"
	"net/http"

	"github.com/cosmedis/backoffice-go/internal/domain/stock"
	"github.com/cosmedis/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StockHandler interface {
	RecordMovement(w http.ResponseWriter, r *http.Request)
	GetMovement(w http.ResponseWriter, r *http.Request)
	ListMovements(w http.ResponseWriter, r *http.Request)
	DeleteMovement(w http.ResponseWriter, r *http.Request)
	GetLevels(w http.ResponseWriter, r *http.Request)
}

type stockHandlerImpl struct {
	stockService stock.StockService
}

func NewStockHandler(stockService stock.StockService) StockHandler {
	return &stockHandlerImpl{stockService: stockService}
}

// RecordMovement implements StockHandler
func (h *stockHandlerImpl) RecordMovement(w http.ResponseWriter, r *http.Request) {
	var req stock.CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.stockService.RecordMovement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Stock movement recorded", result)
}

// GetMovement implements StockHandler
func (h *stockHandlerImpl) GetMovement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Movement ID is required", nil)
		return
	}

	result, err := h.stockService.GetMovement(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMovements implements StockHandler
func (h *stockHandlerImpl) ListMovements(w http.ResponseWriter, r *http.Request) {
	filter := stock.MovementFilter{
		Page:  parsePage(r),
		Limit: parseLimit(r),
	}
	if productID := r.URL.Query().Get("product_id"); productID != "" {
		filter.ProductID = &productID
	}
	if location := r.URL.Query().Get("location"); location != "" {
		filter.Location = &location
	}
	if movementType := r.URL.Query().Get("type"); movementType != "" {
		filter.Type = &movementType
	}

	result, err := h.stockService.ListMovements(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages(result.TotalCount, result.Limit),
	})
}

// DeleteMovement implements StockHandler
func (h *stockHandlerImpl) DeleteMovement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Movement ID is required", nil)
		return
	}

	if err := h.stockService.DeleteMovement(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stock movement deleted", nil)
}

// GetLevels implements StockHandler
func (h *stockHandlerImpl) GetLevels(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		response.BadRequest(w, "Product ID is required", nil)
		return
	}

	results, err := h.stockService.GetLevels(r.Context(), productID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
