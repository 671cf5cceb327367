package request

import (
	"net/url"
	"strconv"
)

// CreateBookingRequest is the full booking draft the funnel submits. Keys
// are the camelCase names the website has always sent; the card path posts
// the same fields form-encoded through a hidden form.
type CreateBookingRequest struct {
	RouteID          string `json:"routeId" validate:"required"`
	VehicleTypeID    string `json:"vehicleTypeId" validate:"required,oneof=sedan vclass"`
	TimePeriod       string `json:"timePeriod" validate:"required,oneof=day night"`
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	Time             string `json:"time" validate:"required,datetime=15:04"`
	TripType         string `json:"tripType" validate:"required,oneof=one-way return"`
	ReturnDate       string `json:"returnDate" validate:"omitempty,datetime=2006-01-02"`
	ReturnTime       string `json:"returnTime" validate:"omitempty,datetime=15:04"`
	ReturnTimePeriod string `json:"returnTimePeriod" validate:"omitempty,oneof=day night"`
	FlightNumber     string `json:"flightNumber"`
	Adults           int    `json:"adults" validate:"required,min=1"`
	Children         int    `json:"children" validate:"min=0"`
	BaggageType      string `json:"baggageType" validate:"required,oneof=hand standard extra"`
	Name             string `json:"name" validate:"required"`
	Phone            string `json:"phone" validate:"required"`
	Email            string `json:"email" validate:"required,contains=@"`
	Notes            string `json:"notes"`
	PaymentMethod    string `json:"paymentMethod" validate:"required,oneof=cash card"`
}

// BookingRequestFromForm maps the hidden-form card POST onto the same
// request type. Explicit field-by-field mapping so a renamed form field
// fails loudly in tests rather than silently dropping data.
func BookingRequestFromForm(form url.Values) *CreateBookingRequest {
	adults, _ := strconv.Atoi(form.Get("adults"))
	children, _ := strconv.Atoi(form.Get("children"))

	return &CreateBookingRequest{
		RouteID:          form.Get("routeId"),
		VehicleTypeID:    form.Get("vehicleTypeId"),
		TimePeriod:       form.Get("timePeriod"),
		Date:             form.Get("date"),
		Time:             form.Get("time"),
		TripType:         form.Get("tripType"),
		ReturnDate:       form.Get("returnDate"),
		ReturnTime:       form.Get("returnTime"),
		ReturnTimePeriod: form.Get("returnTimePeriod"),
		FlightNumber:     form.Get("flightNumber"),
		Adults:           adults,
		Children:         children,
		BaggageType:      form.Get("baggageType"),
		Name:             form.Get("name"),
		Phone:            form.Get("phone"),
		Email:            form.Get("email"),
		Notes:            form.Get("notes"),
		PaymentMethod:    form.Get("paymentMethod"),
	}
}

// ==================== ADMIN REQUESTS ====================

type AssignBookingRequest struct {
	DriverID  string `json:"driver_id" validate:"required,uuid4"`
	VehicleID string `json:"vehicle_id" validate:"omitempty,uuid4"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=payment_pending pending confirmed assigned on_route completed cancelled"`
}

// DriverStatusRequest covers the driver portal's narrower transitions.
type DriverStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=on_route completed"`
}
