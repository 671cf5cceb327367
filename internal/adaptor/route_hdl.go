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

type RouteHandler struct {
	service usecase.RouteService
	log     *zap.Logger
}

func NewRouteHandler(service usecase.RouteService, log *zap.Logger) *RouteHandler {
	return &RouteHandler{
		service: service,
		log:     log.With(zap.String("handler", "route")),
	}
}

// GetRouteList handles GET /api/routes (public). Returns the funnel
// selector payload: {"ok":true,"routes":[{"id":...,"title":...}]}.
func (h *RouteHandler) GetRouteList(w http.ResponseWriter, r *http.Request) {
	routes, err := h.service.GetRouteList(r.Context())
	if err != nil {
		h.log.Error("Failed to list routes", zap.Error(err))
		utils.PublicError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.PublicOK(w, http.StatusOK, map[string]any{
		"routes": routes,
	})
}

// GetRouteBySlug handles GET /api/routes/{slug} (public)
func (h *RouteHandler) GetRouteBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.PublicError(w, http.StatusBadRequest, "route slug is required")
		return
	}

	route, err := h.service.GetRouteBySlug(r.Context(), slug)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.PublicError(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.Error("Failed to get route", zap.Error(err), zap.String("slug", slug))
		utils.PublicError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.PublicOK(w, http.StatusOK, map[string]any{
		"route": route,
	})
}

// ==================== ADMIN METHODS ====================

// GetRoutes handles GET /api/admin/routes (admin only)
func (h *RouteHandler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	routes, err := h.service.GetRoutes(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get routes")
		return
	}

	utils.ResponseSuccess(w, "success", routes)
}

// GetRouteByID handles GET /api/admin/routes/{id} (admin only)
func (h *RouteHandler) GetRouteByID(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "id")
	if routeID == "" {
		utils.ResponseBadRequest(w, "Route ID is required", nil)
		return
	}

	route, err := h.service.GetRouteByID(r.Context(), routeID)
	if err != nil {
		h.handleServiceError(w, err, "get route by ID")
		return
	}

	utils.ResponseSuccess(w, "success", route)
}

// CreateRoute handles POST /api/admin/routes (admin only)
func (h *RouteHandler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var req request.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	route, err := h.service.CreateRoute(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create route")
		return
	}

	utils.ResponseCreated(w, "success", route)
}

// UpdateRoute handles PUT /api/admin/routes/{id} (admin only)
func (h *RouteHandler) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "id")
	if routeID == "" {
		utils.ResponseBadRequest(w, "Route ID is required", nil)
		return
	}

	var req request.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	route, err := h.service.UpdateRoute(r.Context(), routeID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update route")
		return
	}

	utils.ResponseSuccess(w, "success", route)
}

// DeleteRoute handles DELETE /api/admin/routes/{id} (admin only)
func (h *RouteHandler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "id")
	if routeID == "" {
		utils.ResponseBadRequest(w, "Route ID is required", nil)
		return
	}

	if err := h.service.DeleteRoute(r.Context(), routeID); err != nil {
		h.handleServiceError(w, err, "delete route")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError handles errors for route operations
func (h *RouteHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - conflict",
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
