package wire

import (
	"transfer-booking/internal/adaptor"
	"transfer-booking/internal/data/repository"
	"transfer-booking/pkg/middleware"
	"transfer-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/users - List accounts
		r.Get("/", userHandler.GetUsers)

		// POST /api/admin/users - Create account
		r.Post("/", userHandler.CreateUser)

		// GET /api/admin/users/{id} - Account details
		r.Get("/{id}", userHandler.GetUserByID)

		// PUT /api/admin/users/{id} - Update account
		r.Put("/{id}", userHandler.UpdateUser)

		// DELETE /api/admin/users/{id} - Soft-delete account
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
