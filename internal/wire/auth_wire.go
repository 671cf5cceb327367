package wire

import (
	"transfer-booking/internal/adaptor"
	"transfer-booking/internal/data/repository"
	"transfer-booking/pkg/middleware"
	"transfer-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// POST /api/auth/login - Back-office and driver portal login (public)
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/auth/logout - Revoke the current session
		r.Post("/api/auth/logout", authHandler.Logout)

		// GET /api/auth/me - Current account details
		r.Get("/api/auth/me", authHandler.Me)
	})
}
