package wire

import (
	"transfer-booking/internal/adaptor"
	"transfer-booking/internal/data/repository"
	"transfer-booking/pkg/middleware"
	"transfer-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Submit a booking. JSON body for cash; form body
	// with ?pay=true for card, which responds with the checkout handoff page.
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// GET /api/payments/return - Gateway redirect after a payment attempt
	r.Get("/api/payments/return", bookingHandler.PaymentReturn)

	// GET /api/payments/cancel - Gateway redirect after the customer aborts
	r.Get("/api/payments/cancel", bookingHandler.PaymentCancel)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/bookings - List bookings, optional ?status= filter
		r.Get("/", bookingHandler.GetBookings)

		// GET /api/admin/bookings/{id} - Booking details with payment info
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PUT /api/admin/bookings/{id}/assign - Assign driver and vehicle
		r.Put("/{id}/assign", bookingHandler.AssignBooking)

		// PUT /api/admin/bookings/{id}/status - Set any booking status
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)

		// PUT /api/admin/bookings/{id}/cancel - Cancel a booking
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)
	})

	// ==================== DRIVER PORTAL ====================
	r.Route("/api/driver/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Driver(repo.User, log))

		// GET /api/driver/bookings - Bookings assigned to the logged-in driver
		r.Get("/", bookingHandler.GetDriverBookings)

		// PUT /api/driver/bookings/{id}/status - on_route / completed only
		r.Put("/{id}/status", bookingHandler.UpdateDriverBookingStatus)
	})
}
