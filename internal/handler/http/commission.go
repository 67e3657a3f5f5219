package http

import (
	"encoding/json"
	"net/http"

	"github.com/cosmedis/backoffice-go/internal/domain/commission"
	"github.com/cosmedis/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CommissionHandler interface {
	ResolveEntry(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	SetEntry(w http.ResponseWriter, r *http.Request)
	BulkApply(w http.ResponseWriter, r *http.Request)
}

type commissionHandlerImpl struct {
	commissionService commission.CommissionService
}

func NewCommissionHandler(commissionService commission.CommissionService) CommissionHandler {
	return &commissionHandlerImpl{commissionService: commissionService}
}

// ResolveEntry implements CommissionHandler
func (h *commissionHandlerImpl) ResolveEntry(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	productID := chi.URLParam(r, "productId")
	if employeeID == "" || productID == "" {
		response.BadRequest(w, "Employee ID and product ID are required", nil)
		return
	}

	result, err := h.commissionService.ResolveEntry(r.Context(), employeeID, productID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByEmployee implements CommissionHandler
func (h *commissionHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	results, err := h.commissionService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// SetEntry implements CommissionHandler
func (h *commissionHandlerImpl) SetEntry(w http.ResponseWriter, r *http.Request) {
	var req commission.SetEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.commissionService.SetEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// BulkApply implements CommissionHandler
func (h *commissionHandlerImpl) BulkApply(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req commission.BulkApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.commissionService.BulkApply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Commission entries applied", result)
}
