package wire

import (
	"transfer-booking/internal/adaptor"
	"transfer-booking/internal/data/repository"
	"transfer-booking/pkg/middleware"
	"transfer-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVehicle(
	r chi.Router,
	vehicleHandler *adaptor.VehicleHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/admin/vehicles", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/vehicles - List vehicles
		r.Get("/", vehicleHandler.GetVehicles)

		// POST /api/admin/vehicles - Create vehicle
		r.Post("/", vehicleHandler.CreateVehicle)

		// GET /api/admin/vehicles/{id} - Vehicle details
		r.Get("/{id}", vehicleHandler.GetVehicleByID)

		// PUT /api/admin/vehicles/{id} - Update vehicle
		r.Put("/{id}", vehicleHandler.UpdateVehicle)

		// DELETE /api/admin/vehicles/{id} - Soft-delete vehicle
		r.Delete("/{id}", vehicleHandler.DeleteVehicle)
	})
}
