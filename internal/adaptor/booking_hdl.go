package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/payment"
	"transfer-booking/internal/usecase"
	"transfer-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (public). Cash bookings arrive as
// JSON; card bookings arrive as a form POST with ?pay=true and get a
// self-submitting checkout page back instead of JSON.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("pay") == "true" {
		h.createCardBooking(w, r)
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.PublicError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handlePublicError(w, err)
		return
	}

	utils.PublicOK(w, http.StatusCreated, map[string]any{
		"orderId":    booking.OrderID,
		"totalPrice": booking.TotalPrice,
		"currency":   booking.Currency,
		"status":     booking.Status,
	})
}

func (h *BookingHandler) createCardBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.PublicError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	req := request.BookingRequestFromForm(r.PostForm)

	checkout, err := h.service.CreateCardBooking(r.Context(), req)
	if err != nil {
		h.handlePublicError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := payment.RenderCheckoutHTML(w, checkout); err != nil {
		h.log.Error("Failed to render checkout page", zap.Error(err))
	}
}

// PaymentReturn handles GET /api/payments/return (gateway redirect).
func (h *BookingHandler) PaymentReturn(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		utils.PublicError(w, http.StatusBadRequest, "missing payment token")
		return
	}

	booking, err := h.service.ConfirmPayment(r.Context(), token)
	if err != nil {
		h.handlePublicError(w, err)
		return
	}

	utils.PublicOK(w, http.StatusOK, map[string]any{
		"orderId": booking.OrderID,
		"status":  booking.Status,
	})
}

// PaymentCancel handles GET /api/payments/cancel (gateway redirect). The
// gateway signs cancellations with the same token format, so the same
// confirmation path applies; a non-paid status cancels the booking.
func (h *BookingHandler) PaymentCancel(w http.ResponseWriter, r *http.Request) {
	h.PaymentReturn(w, r)
}

// ==================== ADMIN METHODS ====================

// GetBookings handles GET /api/admin/bookings (admin only)
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	var status *string
	if s := query.Get("status"); s != "" {
		status = &s
	}

	bookings, err := h.service.GetBookings(r.Context(), req, status)
	if err != nil {
		h.handleServiceError(w, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/admin/bookings/{id} (admin only)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// AssignBooking handles PUT /api/admin/bookings/{id}/assign (admin only)
func (h *BookingHandler) AssignBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.AssignBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AssignBooking(r.Context(), bookingID, &req); err != nil {
		h.handleServiceError(w, err, "assign booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// UpdateBookingStatus handles PUT /api/admin/bookings/{id}/status (admin only)
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateBookingStatus(r.Context(), bookingID, req.Status); err != nil {
		h.handleServiceError(w, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CancelBooking handles PUT /api/admin/bookings/{id}/cancel (admin only)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingID); err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== DRIVER PORTAL ====================

// GetDriverBookings handles GET /api/driver/bookings (driver only)
func (h *BookingHandler) GetDriverBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.GetDriverBookings(r.Context(), userID.String(), req)
	if err != nil {
		h.handleServiceError(w, err, "get driver bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateDriverBookingStatus handles PUT /api/driver/bookings/{id}/status (driver only)
func (h *BookingHandler) UpdateDriverBookingStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.DriverStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateDriverBookingStatus(r.Context(), userID.String(), bookingID, req.Status); err != nil {
		h.handleServiceError(w, err, "update driver booking status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== ERROR HANDLING ====================

// handlePublicError maps service errors onto the funnel's {"error": ...}
// shape.
func (h *BookingHandler) handlePublicError(w http.ResponseWriter, err error) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn("Booking rejected", zap.Error(err))
		utils.PublicError(w, http.StatusBadRequest, errMsg)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn("Booking lookup failed", zap.Error(err))
		utils.PublicError(w, http.StatusNotFound, errMsg)

	default:
		h.log.Error("Booking operation failed", zap.Error(err))
		utils.PublicError(w, http.StatusInternalServerError, "internal server error")
	}
}

// handleServiceError handles errors for admin and driver booking operations
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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

	case strings.Contains(errMsg, "unauthorized"):
		h.log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "cannot"):
		h.log.Warn(operation+" failed - invalid state",
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
