package response

import (
	"time"

	"transfer-booking/internal/data/entity"
)

type VehicleResponse struct {
	ID           string    `json:"id"`
	Registration string    `json:"registration"`
	VehicleClass string    `json:"vehicle_class"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Seats        int       `json:"seats"`
	DriverID     string    `json:"driver_id,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

func VehicleToResponse(vehicle *entity.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:           vehicle.ID.String(),
		Registration: vehicle.Registration,
		VehicleClass: string(vehicle.VehicleClass),
		Make:         vehicle.Make,
		Model:        vehicle.Model,
		Seats:        vehicle.Seats,
		Active:       vehicle.Active,
		CreatedAt:    vehicle.CreatedAt,
	}

	if vehicle.DriverID != nil {
		resp.DriverID = vehicle.DriverID.String()
	}

	return resp
}
