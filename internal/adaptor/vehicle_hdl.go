package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/usecase"
	"transfer-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VehicleHandler struct {
	service usecase.VehicleService
	log     *zap.Logger
}

func NewVehicleHandler(service usecase.VehicleService, log *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		service: service,
		log:     log.With(zap.String("handler", "vehicle")),
	}
}

// GetVehicles handles GET /api/admin/vehicles (admin only)
func (h *VehicleHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	vehicles, err := h.service.GetVehicles(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get vehicles")
		return
	}

	utils.ResponseSuccess(w, "success", vehicles)
}

// GetVehicleByID handles GET /api/admin/vehicles/{id} (admin only)
func (h *VehicleHandler) GetVehicleByID(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	vehicle, err := h.service.GetVehicleByID(r.Context(), vehicleID)
	if err != nil {
		h.handleServiceError(w, err, "get vehicle by ID")
		return
	}

	utils.ResponseSuccess(w, "success", vehicle)
}

// CreateVehicle handles POST /api/admin/vehicles (admin only)
func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req request.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	vehicle, err := h.service.CreateVehicle(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create vehicle")
		return
	}

	utils.ResponseCreated(w, "success", vehicle)
}

// UpdateVehicle handles PUT /api/admin/vehicles/{id} (admin only)
func (h *VehicleHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	var req request.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	vehicle, err := h.service.UpdateVehicle(r.Context(), vehicleID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update vehicle")
		return
	}

	utils.ResponseSuccess(w, "success", vehicle)
}

// DeleteVehicle handles DELETE /api/admin/vehicles/{id} (admin only)
func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	if err := h.service.DeleteVehicle(r.Context(), vehicleID); err != nil {
		h.handleServiceError(w, err, "delete vehicle")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError handles errors for vehicle operations
func (h *VehicleHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad request",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
