package entity

import (
	"github.com/google/uuid"
)

type Vehicle struct {
	Base
	Registration string       `db:"registration"`
	VehicleClass VehicleClass `db:"vehicle_class"`
	Make         string       `db:"make"`
	Model        string       `db:"model"`
	Seats        int          `db:"seats"`
	DriverID     *uuid.UUID   `db:"driver_id"`
	Active       bool         `db:"active"`
}
