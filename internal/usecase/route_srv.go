package usecase

import (
	"context"
	"fmt"
	"time"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/data/repository"
	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/dto/response"
	"transfer-booking/internal/pricing"
	"transfer-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RouteService interface {
	// Public catalog
	GetRouteList(ctx context.Context) ([]response.RouteListItem, error)
	GetRouteBySlug(ctx context.Context, slug string) (*response.RouteResponse, error)

	// Admin CRUD
	GetRoutes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RouteResponse], error)
	GetRouteByID(ctx context.Context, routeID string) (*response.RouteResponse, error)
	CreateRoute(ctx context.Context, req *request.RouteRequest) (*response.RouteResponse, error)
	UpdateRoute(ctx context.Context, routeID string, req *request.RouteRequest) (*response.RouteResponse, error)
	DeleteRoute(ctx context.Context, routeID string) error
}

type routeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRouteService(repo *repository.Repository, log *zap.Logger) RouteService {
	return &routeService{
		repo: repo,
		log:  log.With(zap.String("service", "route")),
	}
}

// routeListLimit bounds the public selector; the catalog is a short fixed
// list, not a searchable index.
const routeListLimit = 100

func (s *routeService) GetRouteList(ctx context.Context) ([]response.RouteListItem, error) {
	routes, err := s.repo.Route.FindAll(ctx, routeListLimit, 0, true)
	if err != nil {
		s.log.Error("Failed to list routes", zap.Error(err))
		return nil, fmt.Errorf("list routes: %w", err)
	}

	items := make([]response.RouteListItem, len(routes))
	for i, route := range routes {
		items[i] = response.RouteToListItem(route)
	}

	return items, nil
}

func (s *routeService) GetRouteBySlug(ctx context.Context, slug string) (*response.RouteResponse, error) {
	route, err := s.repo.Route.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to find route", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("find route: %w", err)
	}
	if route == nil || !route.Active {
		return nil, fmt.Errorf("route %s not found", slug)
	}

	return s.loadRouteDetail(ctx, route)
}

// ==================== ADMIN METHODS ====================

func (s *routeService) GetRoutes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RouteResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	routes, err := s.repo.Route.FindAll(ctx, limit, offset, false)
	if err != nil {
		s.log.Error("Failed to get routes", zap.Error(err))
		return nil, fmt.Errorf("get routes: %w", err)
	}

	total, err := s.repo.Route.CountAll(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("count routes: %w", err)
	}

	routeResponses := make([]response.RouteResponse, len(routes))
	for i, route := range routes {
		detail, err := s.loadRouteDetail(ctx, route)
		if err != nil {
			return nil, err
		}
		routeResponses[i] = *detail
	}

	return response.NewPaginatedResponse(routeResponses, req.Page, req.PerPage, total), nil
}

func (s *routeService) GetRouteByID(ctx context.Context, routeID string) (*response.RouteResponse, error) {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s: %w", routeID, err)
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil || route == nil {
		return nil, fmt.Errorf("route %s not found", routeID)
	}

	return s.loadRouteDetail(ctx, route)
}

func (s *routeService) CreateRoute(ctx context.Context, req *request.RouteRequest) (*response.RouteResponse, error) {
	if err := s.validateRouteRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.Route.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("route slug %q already exists", req.Slug)
	}

	now := time.Now()
	route := &entity.Route{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Slug:           req.Slug,
		FromLocation:   req.FromLocation,
		ToLocation:     req.ToLocation,
		Description:    req.Description,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		Active:         req.Active,
	}

	if err := s.repo.Route.Create(ctx, route); err != nil {
		s.log.Error("Failed to create route", zap.Error(err), zap.String("slug", req.Slug))
		return nil, fmt.Errorf("create route: %w", err)
	}

	if err := s.replaceRouteChildren(ctx, route.ID, req); err != nil {
		return nil, err
	}

	s.log.Info("Route created",
		zap.String("route_id", route.ID.String()),
		zap.String("slug", route.Slug),
	)

	recordActivity(ctx, s.repo, s.log, "created", "route", route.ID.String(), route.Slug)

	return s.loadRouteDetail(ctx, route)
}

func (s *routeService) UpdateRoute(ctx context.Context, routeID string, req *request.RouteRequest) (*response.RouteResponse, error) {
	if err := s.validateRouteRequest(req); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(routeID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s: %w", routeID, err)
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil || route == nil {
		return nil, fmt.Errorf("route %s not found", routeID)
	}

	if req.Slug != route.Slug {
		existing, err := s.repo.Route.FindBySlug(ctx, req.Slug)
		if err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("route slug %q already exists", req.Slug)
		}
	}

	route.Slug = req.Slug
	route.FromLocation = req.FromLocation
	route.ToLocation = req.ToLocation
	route.Description = req.Description
	route.SEOTitle = req.SEOTitle
	route.SEODescription = req.SEODescription
	route.Active = req.Active
	route.UpdatedAt = time.Now()

	if err := s.repo.Route.Update(ctx, route); err != nil {
		s.log.Error("Failed to update route", zap.Error(err), zap.String("route_id", routeID))
		return nil, fmt.Errorf("update route %s: %w", routeID, err)
	}

	// Options and FAQs are replaced wholesale; the admin form always
	// submits the full set.
	if err := s.repo.VehicleOption.DeleteByRouteID(ctx, route.ID); err != nil {
		return nil, fmt.Errorf("replace vehicle options: %w", err)
	}
	if err := s.repo.RouteFAQ.DeleteByRouteID(ctx, route.ID); err != nil {
		return nil, fmt.Errorf("replace faqs: %w", err)
	}
	if err := s.replaceRouteChildren(ctx, route.ID, req); err != nil {
		return nil, err
	}

	s.log.Info("Route updated",
		zap.String("route_id", routeID),
		zap.String("slug", route.Slug),
	)

	recordActivity(ctx, s.repo, s.log, "updated", "route", routeID, route.Slug)

	return s.loadRouteDetail(ctx, route)
}

func (s *routeService) DeleteRoute(ctx context.Context, routeID string) error {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return fmt.Errorf("invalid route ID format %s: %w", routeID, err)
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil || route == nil {
		return fmt.Errorf("route %s not found", routeID)
	}

	if err := s.repo.Route.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete route", zap.Error(err), zap.String("route_id", routeID))
		return fmt.Errorf("delete route %s: %w", routeID, err)
	}

	s.log.Info("Route deleted",
		zap.String("route_id", routeID),
		zap.String("slug", route.Slug),
	)

	recordActivity(ctx, s.repo, s.log, "deleted", "route", routeID, route.Slug)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *routeService) validateRouteRequest(req *request.RouteRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Prices must parse before the route goes live; a malformed price
	// would break the funnel quote for every visitor.
	for _, option := range req.VehicleOptions {
		if _, err := pricing.ParsePrice(option.FixedPrice); err != nil {
			return fmt.Errorf("validation failed: invalid fixed price %q for %s", option.FixedPrice, option.VehicleClass)
		}
	}

	return nil
}

func (s *routeService) replaceRouteChildren(ctx context.Context, routeID uuid.UUID, req *request.RouteRequest) error {
	now := time.Now()

	options := make([]*entity.VehicleOption, len(req.VehicleOptions))
	for i, option := range req.VehicleOptions {
		options[i] = &entity.VehicleOption{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			RouteID:       routeID,
			VehicleClass:  entity.VehicleClass(option.VehicleClass),
			FixedPrice:    option.FixedPrice,
			MaxPassengers: option.MaxPassengers,
			IdealFor:      option.IdealFor,
			Position:      i,
		}
	}
	if err := s.repo.VehicleOption.CreateBatch(ctx, options); err != nil {
		return fmt.Errorf("create vehicle options: %w", err)
	}

	if len(req.FAQs) > 0 {
		faqs := make([]*entity.RouteFAQ, len(req.FAQs))
		for i, faq := range req.FAQs {
			faqs[i] = &entity.RouteFAQ{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				RouteID:  routeID,
				Question: faq.Question,
				Answer:   faq.Answer,
				Position: i,
			}
		}
		if err := s.repo.RouteFAQ.CreateBatch(ctx, faqs); err != nil {
			return fmt.Errorf("create faqs: %w", err)
		}
	}

	return nil
}

func (s *routeService) loadRouteDetail(ctx context.Context, route *entity.Route) (*response.RouteResponse, error) {
	options, err := s.repo.VehicleOption.FindByRouteID(ctx, route.ID)
	if err != nil {
		return nil, fmt.Errorf("load vehicle options: %w", err)
	}

	faqs, err := s.repo.RouteFAQ.FindByRouteID(ctx, route.ID)
	if err != nil {
		return nil, fmt.Errorf("load faqs: %w", err)
	}

	return response.RouteToResponse(route, options, faqs), nil
}
