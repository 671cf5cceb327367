package entity

import (
	"github.com/google/uuid"
)

// Driver is an operational record; UserID links the optional portal account.
type Driver struct {
	Base
	Name          string     `db:"name"`
	Phone         string     `db:"phone"`
	Email         *string    `db:"email"`
	LicenseNumber *string    `db:"license_number"`
	UserID        *uuid.UUID `db:"user_id"`
	Active        bool       `db:"active"`
}
