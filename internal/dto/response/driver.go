package response

import (
	"time"

	"transfer-booking/internal/data/entity"
)

type DriverResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	LicenseNumber string    `json:"license_number,omitempty"`
	UserID        string    `json:"user_id,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

func DriverToResponse(driver *entity.Driver) DriverResponse {
	resp := DriverResponse{
		ID:        driver.ID.String(),
		Name:      driver.Name,
		Phone:     driver.Phone,
		Active:    driver.Active,
		CreatedAt: driver.CreatedAt,
	}

	if driver.Email != nil {
		resp.Email = *driver.Email
	}
	if driver.LicenseNumber != nil {
		resp.LicenseNumber = *driver.LicenseNumber
	}
	if driver.UserID != nil {
		resp.UserID = driver.UserID.String()
	}

	return resp
}
