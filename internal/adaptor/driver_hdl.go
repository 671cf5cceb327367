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

type DriverHandler struct {
	service usecase.DriverService
	log     *zap.Logger
}

func NewDriverHandler(service usecase.DriverService, log *zap.Logger) *DriverHandler {
	return &DriverHandler{
		service: service,
		log:     log.With(zap.String("handler", "driver")),
	}
}

// GetDrivers handles GET /api/admin/drivers (admin only)
func (h *DriverHandler) GetDrivers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	drivers, err := h.service.GetDrivers(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get drivers")
		return
	}

	utils.ResponseSuccess(w, "success", drivers)
}

// GetDriverByID handles GET /api/admin/drivers/{id} (admin only)
func (h *DriverHandler) GetDriverByID(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "id")
	if driverID == "" {
		utils.ResponseBadRequest(w, "Driver ID is required", nil)
		return
	}

	driver, err := h.service.GetDriverByID(r.Context(), driverID)
	if err != nil {
		h.handleServiceError(w, err, "get driver by ID")
		return
	}

	utils.ResponseSuccess(w, "success", driver)
}

// CreateDriver handles POST /api/admin/drivers (admin only)
func (h *DriverHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req request.DriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	driver, err := h.service.CreateDriver(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create driver")
		return
	}

	utils.ResponseCreated(w, "success", driver)
}

// UpdateDriver handles PUT /api/admin/drivers/{id} (admin only)
func (h *DriverHandler) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "id")
	if driverID == "" {
		utils.ResponseBadRequest(w, "Driver ID is required", nil)
		return
	}

	var req request.DriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	driver, err := h.service.UpdateDriver(r.Context(), driverID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update driver")
		return
	}

	utils.ResponseSuccess(w, "success", driver)
}

// DeleteDriver handles DELETE /api/admin/drivers/{id} (admin only)
func (h *DriverHandler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "id")
	if driverID == "" {
		utils.ResponseBadRequest(w, "Driver ID is required", nil)
		return
	}

	if err := h.service.DeleteDriver(r.Context(), driverID); err != nil {
		h.handleServiceError(w, err, "delete driver")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError handles errors for driver operations
func (h *DriverHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "does not have"):
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
