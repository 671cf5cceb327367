package repository

import (
	"transfer-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	Session       SessionRepository
	Route         RouteRepository
	VehicleOption VehicleOptionRepository
	RouteFAQ      RouteFAQRepository
	Booking       BookingRepository
	Payment       PaymentRepository
	Driver        DriverRepository
	Vehicle       VehicleRepository
	Activity      ActivityRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Session:       NewSessionRepository(db, log),
		Route:         NewRouteRepository(db, log),
		VehicleOption: NewVehicleOptionRepository(db, log),
		RouteFAQ:      NewRouteFAQRepository(db, log),
		Booking:       NewBookingRepository(db, log),
		Payment:       NewPaymentRepository(db, log),
		Driver:        NewDriverRepository(db, log),
		Vehicle:       NewVehicleRepository(db, log),
		Activity:      NewActivityRepository(db, log),
	}
}
