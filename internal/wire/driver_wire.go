package wire

import (
	"transfer-booking/internal/adaptor"
	"transfer-booking/internal/data/repository"
	"transfer-booking/pkg/middleware"
	"transfer-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDriver(
	r chi.Router,
	driverHandler *adaptor.DriverHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/admin/drivers", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/drivers - List drivers
		r.Get("/", driverHandler.GetDrivers)

		// POST /api/admin/drivers - Create driver
		r.Post("/", driverHandler.CreateDriver)

		// GET /api/admin/drivers/{id} - Driver details
		r.Get("/{id}", driverHandler.GetDriverByID)

		// PUT /api/admin/drivers/{id} - Update driver
		r.Put("/{id}", driverHandler.UpdateDriver)

		// DELETE /api/admin/drivers/{id} - Soft-delete driver
		r.Delete("/{id}", driverHandler.DeleteDriver)
	})
}
