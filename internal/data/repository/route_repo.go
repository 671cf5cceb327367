package repository

import (
	"context"
	"fmt"

	"transfer-booking/internal/data/entity"
	"transfer-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RouteRepository interface {
	Create(ctx context.Context, route *entity.Route) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Route, error)
	FindAll(ctx context.Context, limit, offset int, activeOnly bool) ([]*entity.Route, error)
	CountAll(ctx context.Context, activeOnly bool) (int64, error)
	Update(ctx context.Context, route *entity.Route) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type routeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRouteRepository(db database.PgxIface, log *zap.Logger) RouteRepository {
	return &routeRepository{
		db:  db,
		log: log.With(zap.String("repository", "route")),
	}
}

func (r *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	query := `
		INSERT INTO routes (id, slug, from_location, to_location, description,
		                    seo_title, seo_description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		route.ID,
		route.Slug,
		route.FromLocation,
		route.ToLocation,
		route.Description,
		route.SEOTitle,
		route.SEODescription,
		route.Active,
		route.CreatedAt,
		route.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create route",
			zap.Error(err),
			zap.String("slug", route.Slug),
		)
		return fmt.Errorf("create route %s: %w", route.Slug, err)
	}

	return nil
}

func (r *routeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	query := `
		SELECT id, slug, from_location, to_location, description,
		       seo_title, seo_description, active, created_at, updated_at
		FROM routes
		WHERE id = $1 AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(ctx, query, id), id.String())
}

func (r *routeRepository) FindBySlug(ctx context.Context, slug string) (*entity.Route, error) {
	query := `
		SELECT id, slug, from_location, to_location, description,
		       seo_title, seo_description, active, created_at, updated_at
		FROM routes
		WHERE slug = $1 AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(ctx, query, slug), slug)
}

func (r *routeRepository) FindAll(ctx context.Context, limit, offset int, activeOnly bool) ([]*entity.Route, error) {
	query := `
		SELECT id, slug, from_location, to_location, description,
		       seo_title, seo_description, active, created_at, updated_at
		FROM routes
		WHERE deleted_at IS NULL AND ($3 = false OR active = true)
		ORDER BY from_location, to_location
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, activeOnly)
	if err != nil {
		r.log.Error("Failed to find routes",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find routes: %w", err)
	}
	defer rows.Close()

	var routes []*entity.Route
	for rows.Next() {
		var route entity.Route
		err := rows.Scan(
			&route.ID,
			&route.Slug,
			&route.FromLocation,
			&route.ToLocation,
			&route.Description,
			&route.SEOTitle,
			&route.SEODescription,
			&route.Active,
			&route.CreatedAt,
			&route.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan route row", zap.Error(err))
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		routes = append(routes, &route)
	}

	return routes, nil
}

func (r *routeRepository) CountAll(ctx context.Context, activeOnly bool) (int64, error) {
	query := `
		SELECT COUNT(*) FROM routes
		WHERE deleted_at IS NULL AND ($1 = false OR active = true)
	`

	var count int64
	err := r.db.QueryRow(ctx, query, activeOnly).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count routes", zap.Error(err))
		return 0, fmt.Errorf("count routes: %w", err)
	}

	return count, nil
}

func (r *routeRepository) Update(ctx context.Context, route *entity.Route) error {
	query := `
		UPDATE routes
		SET slug = $2, from_location = $3, to_location = $4, description = $5,
		    seo_title = $6, seo_description = $7, active = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		route.ID,
		route.Slug,
		route.FromLocation,
		route.ToLocation,
		route.Description,
		route.SEOTitle,
		route.SEODescription,
		route.Active,
		route.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update route",
			zap.Error(err),
			zap.String("route_id", route.ID.String()),
		)
		return fmt.Errorf("update route %s: %w", route.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("route %s not found", route.ID.String())
	}

	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE routes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete route",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return fmt.Errorf("delete route %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("route %s not found", id.String())
	}

	r.log.Info("Route deleted", zap.String("route_id", id.String()))
	return nil
}

func (r *routeRepository) scanOne(row pgx.Row, key string) (*entity.Route, error) {
	var route entity.Route
	err := row.Scan(
		&route.ID,
		&route.Slug,
		&route.FromLocation,
		&route.ToLocation,
		&route.Description,
		&route.SEOTitle,
		&route.SEODescription,
		&route.Active,
		&route.CreatedAt,
		&route.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find route",
			zap.Error(err),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("find route %s: %w", key, err)
	}

	return &route, nil
}
