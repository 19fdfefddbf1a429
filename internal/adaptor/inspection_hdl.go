package adaptor

import (
	"net/http"
	"strings"

	"phi-inspection/internal/dto/request"
	"phi-inspection/internal/usecase"
	"phi-inspection/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InspectionHandler struct {
	service usecase.InspectionService
	log     *zap.Logger
}

func NewInspectionHandler(service usecase.InspectionService, log *zap.Logger) *InspectionHandler {
	return &InspectionHandler{
		service: service,
		log:     log,
	}
}

// CreateInspection handles POST /api/inspections
func (h *InspectionHandler) CreateInspection(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req request.CreateInspectionRequest
	if !decodeJSON(w, r, &req) || !validate(w, req) {
		return
	}

	inspection, err := h.service.Create(r.Context(), caller, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create inspection")
		return
	}

	utils.ResponseCreated(w, "Inspection created successfully", inspection)
}

// GetInspections handles GET /api/inspections
func (h *InspectionHandler) GetInspections(w http.ResponseWriter, r *http.Request) {
	inspections, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list inspections")
		return
	}

	utils.ResponseSuccess(w, "Inspections retrieved successfully", inspections)
}

// GetInspection handles GET /api/inspections/{id}, where id is the public INS- identifier.
func (h *InspectionHandler) GetInspection(w http.ResponseWriter, r *http.Request) {
	publicID := strings.TrimSpace(chi.URLParam(r, "id"))
	if publicID == "" {
		utils.ResponseBadRequest(w, "Inspection ID is required", nil)
		return
	}

	inspection, err := h.service.Get(r.Context(), publicID)
	if err != nil {
		writeServiceError(w, h.log, err, "get inspection")
		return
	}

	utils.ResponseSuccess(w, "Inspection retrieved successfully", inspection)
}

// UpdateInspection handles PUT /api/inspections/{id}, where id is the storage identifier.
func (h *InspectionHandler) UpdateInspection(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "inspection")
	if !ok {
		return
	}

	var req request.UpdateInspectionRequest
	if !decodeJSON(w, r, &req) || !validate(w, req) {
		return
	}

	inspection, err := h.service.Update(r.Context(), caller, id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update inspection")
		return
	}

	utils.ResponseSuccess(w, "Inspection updated successfully", inspection)
}

// DeleteInspection handles DELETE /api/inspections/{id}
func (h *InspectionHandler) DeleteInspection(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "inspection")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), caller, id); err != nil {
		writeServiceError(w, h.log, err, "delete inspection")
		return
	}

	utils.ResponseSuccess(w, "Inspection deleted successfully", nil)
}
