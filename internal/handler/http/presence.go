package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cosmedis/backoffice-go/internal/domain/presence"
	"github.com/cosmedis/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PresenceHandler interface {
	CreateRecord(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	UpdateRecord(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type presenceHandlerImpl struct {
	presenceService presence.PresenceService
}

func NewPresenceHandler(presenceService presence.PresenceService) PresenceHandler {
	return &presenceHandlerImpl{presenceService: presenceService}
}

// CreateRecord implements PresenceHandler
func (h *presenceHandlerImpl) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req presence.CreatePresenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.presenceService.CreateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Presence record created", result)
}

// GetRecord implements PresenceHandler
func (h *presenceHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Presence record ID is required", nil)
		return
	}

	result, err := h.presenceService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRecords implements PresenceHandler
func (h *presenceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter := presence.PresenceFilter{
		Page:  parsePage(r),
		Limit: parseLimit(r),
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}

	result, err := h.presenceService.ListRecords(r.Context(), filter)
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

// UpdateRecord implements PresenceHandler
func (h *presenceHandlerImpl) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Presence record ID is required", nil)
		return
	}

	var req presence.UpdatePresenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.presenceService.UpdateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteRecord implements PresenceHandler
func (h *presenceHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Presence record ID is required", nil)
		return
	}

	if err := h.presenceService.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Presence record deleted", nil)
}

// MonthlySummary implements PresenceHandler
func (h *presenceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	month := r.URL.Query().Get("month")

	result, err := h.presenceService.MonthlySummary(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parsePage(r *http.Request) int {
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		return p
	}
	return 1
}

func parseLimit(r *http.Request) int {
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= 100 {
		return l
	}
	return 20
}

func totalPages(totalItems int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := totalItems / int64(limit)
	if totalItems%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
