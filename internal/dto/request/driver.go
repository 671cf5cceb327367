package request

type DriverRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Phone         string `json:"phone" validate:"required,min=5,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
	LicenseNumber string `json:"license_number"`
	UserID        string `json:"user_id" validate:"omitempty,uuid4"`
	Active        bool   `json:"active"`
}
