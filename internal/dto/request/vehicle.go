package request

type VehicleRequest struct {
	Registration string `json:"registration" validate:"required,min=2,max=20"`
	VehicleClass string `json:"vehicle_class" validate:"required,oneof=sedan vclass"`
	Make         string `json:"make" validate:"required"`
	Model        string `json:"model" validate:"required"`
	Seats        int    `json:"seats" validate:"required,min=1,max=16"`
	DriverID     string `json:"driver_id" validate:"omitempty,uuid4"`
	Active       bool   `json:"active"`
}
