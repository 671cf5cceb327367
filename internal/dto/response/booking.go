package response

import (
	"time"

	"transfer-booking/internal/data/entity"
)

type BookingResponse struct {
	ID               string               `json:"id"`
	OrderID          string               `json:"orderId"`
	RouteID          string               `json:"routeId"`
	RouteTitle       string               `json:"routeTitle,omitempty"`
	VehicleTypeID    string               `json:"vehicleTypeId"`
	TimePeriod       string               `json:"timePeriod"`
	Date             string               `json:"date"`
	Time             string               `json:"time"`
	TripType         string               `json:"tripType"`
	ReturnDate       string               `json:"returnDate,omitempty"`
	ReturnTime       string               `json:"returnTime,omitempty"`
	ReturnTimePeriod string               `json:"returnTimePeriod,omitempty"`
	FlightNumber     string               `json:"flightNumber,omitempty"`
	Adults           int                  `json:"adults"`
	Children         int                  `json:"children"`
	BaggageType      string               `json:"baggageType"`
	Name             string               `json:"name"`
	Phone            string               `json:"phone"`
	Email            string               `json:"email"`
	Notes            string               `json:"notes,omitempty"`
	PaymentMethod    string               `json:"paymentMethod"`
	TotalPrice       float64              `json:"totalPrice"`
	Currency         string               `json:"currency"`
	Status           entity.BookingStatus `json:"status"`
	DriverName       string               `json:"driverName,omitempty"`
	VehicleReg       string               `json:"vehicleReg,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

type PaymentResponse struct {
	ID         string               `json:"id"`
	BookingID  string               `json:"booking_id"`
	Amount     float64              `json:"amount"`
	Currency   string               `json:"currency"`
	Status     entity.PaymentStatus `json:"status"`
	GatewayRef *string              `json:"gateway_ref,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	Payment *PaymentResponse `json:"payment,omitempty"`
}

// Helper converters

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            booking.ID.String(),
		OrderID:       booking.OrderID,
		RouteID:       booking.RouteSlug,
		VehicleTypeID: string(booking.VehicleClass),
		TimePeriod:    string(booking.TimePeriod),
		Date:          booking.TravelDate.Format("2006-01-02"),
		Time:          booking.TravelTime,
		TripType:      string(booking.TripType),
		Adults:        booking.Adults,
		Children:      booking.Children,
		BaggageType:   string(booking.BaggageType),
		Name:          booking.Name,
		Phone:         booking.Phone,
		Email:         booking.Email,
		Notes:         booking.Notes,
		PaymentMethod: string(booking.PaymentMethod),
		TotalPrice:    booking.TotalPrice,
		Currency:      booking.Currency,
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt,
	}

	if booking.ReturnDate != nil {
		resp.ReturnDate = booking.ReturnDate.Format("2006-01-02")
	}
	if booking.ReturnTime != nil {
		resp.ReturnTime = *booking.ReturnTime
	}
	if booking.ReturnTimePeriod != nil {
		resp.ReturnTimePeriod = string(*booking.ReturnTimePeriod)
	}
	if booking.FlightNumber != nil {
		resp.FlightNumber = *booking.FlightNumber
	}

	return resp
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         payment.ID.String(),
		BookingID:  payment.BookingID.String(),
		Amount:     payment.Amount,
		Currency:   payment.Currency,
		Status:     payment.Status,
		GatewayRef: payment.GatewayRef,
		CreatedAt:  payment.CreatedAt,
	}
}
