package http

import (
	"encoding/json"
	"net/http"

	"github.com/cosmedis/backoffice-go/internal/domain/payment"
	"github.com/cosmedis/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PaymentHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	CreatePayment(w http.ResponseWriter, r *http.Request)
	CreateFromCalculation(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	UpdatePayment(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandlerImpl{paymentService: paymentService}
}

// Calculate implements PaymentHandler. Read-only: the breakdown is computed
// on the fly and never persisted.
func (h *paymentHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	month := r.URL.Query().Get("month")

	result, err := h.paymentService.Calculate(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreatePayment implements PaymentHandler
func (h *paymentHandlerImpl) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req payment.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.paymentService.CreatePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment created", result)
}

// CreateFromCalculation implements PaymentHandler
func (h *paymentHandlerImpl) CreateFromCalculation(w http.ResponseWriter, r *http.Request) {
	var req payment.CreateFromCalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.paymentService.CreateFromCalculation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment created from calculation", result)
}

// GetPayment implements PaymentHandler
func (h *paymentHandlerImpl) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	result, err := h.paymentService.GetPayment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPayments implements PaymentHandler
func (h *paymentHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	filter := payment.PaymentFilter{
		Page:  parsePage(r),
		Limit: parseLimit(r),
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}
	if paymentType := r.URL.Query().Get("type"); paymentType != "" {
		filter.Type = &paymentType
	}

	result, err := h.paymentService.ListPayments(r.Context(), filter)
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

// UpdatePayment implements PaymentHandler
func (h *paymentHandlerImpl) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	var req payment.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.paymentService.UpdatePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeletePayment implements PaymentHandler
func (h *paymentHandlerImpl) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	if err := h.paymentService.DeletePayment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment deleted", nil)
}
