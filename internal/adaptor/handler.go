package adaptor

import (
	"transfer-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Route    *RouteHandler
	Booking  *BookingHandler
	Driver   *DriverHandler
	Vehicle  *VehicleHandler
	User     *UserHandler
	Activity *ActivityHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Route:    NewRouteHandler(service.Route, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Driver:   NewDriverHandler(service.Driver, log),
		Vehicle:  NewVehicleHandler(service.Vehicle, log),
		User:     NewUserHandler(service.User, log),
		Activity: NewActivityHandler(service.Activity, log),
	}
}
