package entity

import (
	"time"

	"github.com/google/uuid"
)

type TripType string

const (
	TripTypeOneWay TripType = "one-way"
	TripTypeReturn TripType = "return"
)

// Legs is the number of travel legs the trip prices for.
func (t TripType) Legs() int {
	if t == TripTypeReturn {
		return 2
	}
	return 1
}

func (t TripType) Valid() bool {
	return t == TripTypeOneWay || t == TripTypeReturn
}

// TimePeriod is the day/night tariff bucket for a leg.
type TimePeriod string

const (
	TimePeriodDay   TimePeriod = "day"
	TimePeriodNight TimePeriod = "night"
)

func (p TimePeriod) Valid() bool {
	return p == TimePeriodDay || p == TimePeriodNight
}

type BaggageType string

const (
	BaggageHand     BaggageType = "hand"
	BaggageStandard BaggageType = "standard"
	BaggageExtra    BaggageType = "extra"
)

func (b BaggageType) Valid() bool {
	return b == BaggageHand || b == BaggageStandard || b == BaggageExtra
}

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodCard
}

type BookingStatus string

const (
	// Card bookings start here until the gateway reports the outcome.
	BookingStatusPaymentPending BookingStatus = "payment_pending"
	BookingStatusPending        BookingStatus = "pending"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusAssigned       BookingStatus = "assigned"
	BookingStatusOnRoute        BookingStatus = "on_route"
	BookingStatusCompleted      BookingStatus = "completed"
	BookingStatusCancelled      BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPaymentPending, BookingStatusPending, BookingStatusConfirmed,
		BookingStatusAssigned, BookingStatusOnRoute, BookingStatusCompleted,
		BookingStatusCancelled:
		return true
	}
	return false
}

// Booking holds a confirmed transfer request. Route slug is snapshotted so
// admin edits to the catalog do not rewrite booking history.
type Booking struct {
	Base
	OrderID          string        `db:"order_id"`
	RouteID          uuid.UUID     `db:"route_id"`
	RouteSlug        string        `db:"route_slug"`
	VehicleClass     VehicleClass  `db:"vehicle_class"`
	TimePeriod       TimePeriod    `db:"time_period"`
	TravelDate       time.Time     `db:"travel_date"`
	TravelTime       string        `db:"travel_time"`
	TripType         TripType      `db:"trip_type"`
	ReturnDate       *time.Time    `db:"return_date"`
	ReturnTime       *string       `db:"return_time"`
	ReturnTimePeriod *TimePeriod   `db:"return_time_period"`
	FlightNumber     *string       `db:"flight_number"`
	Adults           int           `db:"adults"`
	Children         int           `db:"children"`
	BaggageType      BaggageType   `db:"baggage_type"`
	Name             string        `db:"name"`
	Phone            string        `db:"phone"`
	Email            string        `db:"email"`
	Notes            string        `db:"notes"`
	PaymentMethod    PaymentMethod `db:"payment_method"`
	TotalPrice       float64       `db:"total_price"`
	Currency         string        `db:"currency"`
	Status           BookingStatus `db:"status"`
	DriverID         *uuid.UUID    `db:"driver_id"`
	VehicleID        *uuid.UUID    `db:"vehicle_id"`
}
