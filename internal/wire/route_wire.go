package wire

import (
	"transfer-booking/internal/adaptor"
	"transfer-booking/internal/data/repository"
	"transfer-booking/pkg/middleware"
	"transfer-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoute(
	r chi.Router,
	routeHandler *adaptor.RouteHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/routes - Route selector for the booking funnel
	r.Get("/api/routes", routeHandler.GetRouteList)

	// GET /api/routes/{slug} - Route landing page content
	r.Get("/api/routes/{slug}", routeHandler.GetRouteBySlug)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/routes", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/routes - List all routes including inactive
		r.Get("/", routeHandler.GetRoutes)

		// POST /api/admin/routes - Create route with options and FAQs
		r.Post("/", routeHandler.CreateRoute)

		// GET /api/admin/routes/{id} - Route details
		r.Get("/{id}", routeHandler.GetRouteByID)

		// PUT /api/admin/routes/{id} - Update route, replacing options and FAQs
		r.Put("/{id}", routeHandler.UpdateRoute)

		// DELETE /api/admin/routes/{id} - Soft-delete route
		r.Delete("/{id}", routeHandler.DeleteRoute)
	})
}
