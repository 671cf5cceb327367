package wire

import (
	"transfer-booking/internal/adaptor"
	"transfer-booking/internal/data/repository"
	"transfer-booking/pkg/middleware"
	"transfer-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireActivity(
	r chi.Router,
	activityHandler *adaptor.ActivityHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/admin/activities", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/activities - Audit log, newest first
		r.Get("/", activityHandler.GetActivities)
	})
}
