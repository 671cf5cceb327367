package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/dto/response"
	"transfer-booking/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBookingService lets each test plug in just the method it exercises.
type stubBookingService struct {
	createBooking     func(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	createCardBooking func(ctx context.Context, req *request.CreateBookingRequest) (*payment.CheckoutRequest, error)
	confirmPayment    func(ctx context.Context, token string) (*response.BookingResponse, error)
}

func (s *stubBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	return s.createBooking(ctx, req)
}

func (s *stubBookingService) CreateCardBooking(ctx context.Context, req *request.CreateBookingRequest) (*payment.CheckoutRequest, error) {
	return s.createCardBooking(ctx, req)
}

func (s *stubBookingService) ConfirmPayment(ctx context.Context, token string) (*response.BookingResponse, error) {
	return s.confirmPayment(ctx, token)
}

func (s *stubBookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest, status *string) (*response.PaginatedResponse[response.BookingResponse], error) {
	return nil, nil
}

func (s *stubBookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	return nil, nil
}

func (s *stubBookingService) AssignBooking(ctx context.Context, bookingID string, req *request.AssignBookingRequest) error {
	return nil
}

func (s *stubBookingService) UpdateBookingStatus(ctx context.Context, bookingID, status string) error {
	return nil
}

func (s *stubBookingService) CancelBooking(ctx context.Context, bookingID string) error { return nil }

func (s *stubBookingService) GetDriverBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	return nil, nil
}

func (s *stubBookingService) UpdateDriverBookingStatus(ctx context.Context, userID, bookingID, status string) error {
	return nil
}

func TestCreateBookingJSON(t *testing.T) {
	service := &stubBookingService{
		createBooking: func(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
			assert.Equal(t, "airport-city", req.RouteID)
			return &response.BookingResponse{
				OrderID:    "TRF-1",
				TotalPrice: 65,
				Currency:   "EUR",
				Status:     "pending",
			}, nil
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	body := `{"routeId":"airport-city","vehicleTypeId":"sedan","paymentMethod":"cash"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["ok"])
	assert.Equal(t, "TRF-1", payload["orderId"])
	assert.Equal(t, 65.0, payload["totalPrice"])
}

func TestCreateBookingMalformedJSON(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "invalid request body", payload["error"])
}

func TestCreateBookingRejectionShape(t *testing.T) {
	service := &stubBookingService{
		createBooking: func(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
			return nil, fmt.Errorf("invalid route %q; available routes: a-b (A → B)", req.RouteID)
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	body := `{"routeId":"bogus","paymentMethod":"cash"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload["error"], "invalid route")
	assert.Contains(t, payload["error"], "a-b")
}

func TestCreateBookingCardForm(t *testing.T) {
	service := &stubBookingService{
		createCardBooking: func(ctx context.Context, req *request.CreateBookingRequest) (*payment.CheckoutRequest, error) {
			assert.Equal(t, "card", req.PaymentMethod)
			assert.Equal(t, 2, req.Adults)
			return &payment.CheckoutRequest{
				CheckoutURL: "https://pay.example.com/checkout",
				OrderID:     "TRF-2",
				Amount:      "130.00",
				Currency:    "EUR",
				Signature:   "sig",
			}, nil
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	form := url.Values{
		"routeId":       {"airport-city"},
		"vehicleTypeId": {"vclass"},
		"adults":        {"2"},
		"paymentMethod": {"card"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/bookings?pay=true", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	// The card path responds with the auto-submitting gateway form, not JSON.
	html := rec.Body.String()
	assert.Contains(t, html, `action="https://pay.example.com/checkout"`)
	assert.Contains(t, html, `name="order_id" value="TRF-2"`)
}

func TestPaymentReturn(t *testing.T) {
	service := &stubBookingService{
		confirmPayment: func(ctx context.Context, token string) (*response.BookingResponse, error) {
			assert.Equal(t, "tok-1", token)
			return &response.BookingResponse{OrderID: "TRF-3", Status: "confirmed"}, nil
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/payments/return?token=tok-1", nil)
	rec := httptest.NewRecorder()

	handler.PaymentReturn(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["ok"])
	assert.Equal(t, "confirmed", payload["status"])
}

func TestPaymentReturnMissingToken(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/payments/return", nil)
	rec := httptest.NewRecorder()

	handler.PaymentReturn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingRequestFromForm(t *testing.T) {
	form := url.Values{
		"routeId":          {"airport-city"},
		"vehicleTypeId":    {"sedan"},
		"timePeriod":       {"night"},
		"date":             {"2026-09-15"},
		"time":             {"23:30"},
		"tripType":         {"return"},
		"returnDate":       {"2026-09-20"},
		"returnTime":       {"04:00"},
		"returnTimePeriod": {"night"},
		"flightNumber":     {"CY 321"},
		"adults":           {"2"},
		"children":         {"1"},
		"baggageType":      {"extra"},
		"name":             {"Maria"},
		"phone":            {"+357 99 123456"},
		"email":            {"maria@example.com"},
		"notes":            {"child seat please"},
		"paymentMethod":    {"card"},
	}

	req := request.BookingRequestFromForm(form)

	assert.Equal(t, "airport-city", req.RouteID)
	assert.Equal(t, "night", req.TimePeriod)
	assert.Equal(t, "return", req.TripType)
	assert.Equal(t, "2026-09-20", req.ReturnDate)
	assert.Equal(t, "CY 321", req.FlightNumber)
	assert.Equal(t, 2, req.Adults)
	assert.Equal(t, 1, req.Children)
	assert.Equal(t, "child seat please", req.Notes)
	assert.Equal(t, "card", req.PaymentMethod)
}
