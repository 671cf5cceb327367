package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment tracks a card payment handed off to the hosted gateway.
type Payment struct {
	Base
	BookingID  uuid.UUID     `db:"booking_id"`
	Amount     float64       `db:"amount"`
	Currency   string        `db:"currency"`
	Status     PaymentStatus `db:"status"`
	GatewayRef *string       `db:"gateway_ref"`
}
