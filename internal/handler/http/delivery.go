package http

import (
	"encoding/json"
	"net/http"

	"github.com/cosmedis/backoffice-go/internal/domain/delivery"
	"github.com/cosmedis/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DeliveryHandler interface {
	CreateDelivery(w http.ResponseWriter, r *http.Request)
	GetDelivery(w http.ResponseWriter, r *http.Request)
	ListDeliveries(w http.ResponseWriter, r *http.Request)
	Transition(w http.ResponseWriter, r *http.Request)
	CreateSettlement(w http.ResponseWriter, r *http.Request)
	GetSettlement(w http.ResponseWriter, r *http.Request)
	ListSettlements(w http.ResponseWriter, r *http.Request)
	DecideSettlement(w http.ResponseWriter, r *http.Request)
}

type deliveryHandlerImpl struct {
	deliveryService delivery.DeliveryService
}

func NewDeliveryHandler(deliveryService delivery.DeliveryService) DeliveryHandler {
	return &deliveryHandlerImpl{deliveryService: deliveryService}
}

// CreateDelivery implements DeliveryHandler
func (h *deliveryHandlerImpl) CreateDelivery(w http.ResponseWriter, r *http.Request) {
	var req delivery.CreateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.deliveryService.CreateDelivery(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Delivery created", result)
}

// GetDelivery implements DeliveryHandler
func (h *deliveryHandlerImpl) GetDelivery(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Delivery ID is required", nil)
		return
	}

	result, err := h.deliveryService.GetDelivery(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDeliveries implements DeliveryHandler
func (h *deliveryHandlerImpl) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	filter := delivery.DeliveryFilter{
		Page:  parsePage(r),
		Limit: parseLimit(r),
	}
	if driverID := r.URL.Query().Get("driver_id"); driverID != "" {
		filter.DriverID = &driverID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}

	result, err := h.deliveryService.ListDeliveries(r.Context(), filter)
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

// Transition implements DeliveryHandler
func (h *deliveryHandlerImpl) Transition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Delivery ID is required", nil)
		return
	}

	var req delivery.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.deliveryService.Transition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateSettlement implements DeliveryHandler
func (h *deliveryHandlerImpl) CreateSettlement(w http.ResponseWriter, r *http.Request) {
	var req delivery.CreateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.deliveryService.CreateSettlement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Settlement created", result)
}

// GetSettlement implements DeliveryHandler
func (h *deliveryHandlerImpl) GetSettlement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Settlement ID is required", nil)
		return
	}

	result, err := h.deliveryService.GetSettlement(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSettlements implements DeliveryHandler
func (h *deliveryHandlerImpl) ListSettlements(w http.ResponseWriter, r *http.Request) {
	var driverID *string
	if d := r.URL.Query().Get("driver_id"); d != "" {
		driverID = &d
	}

	results, err := h.deliveryService.ListSettlements(r.Context(), driverID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DecideSettlement implements DeliveryHandler
func (h *deliveryHandlerImpl) DecideSettlement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Settlement ID is required", nil)
		return
	}

	var req delivery.DecideSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.deliveryService.DecideSettlement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
