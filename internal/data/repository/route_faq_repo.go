package repository

import (
	"context"
	"fmt"

	"transfer-booking/internal/data/entity"
	"transfer-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RouteFAQRepository interface {
	CreateBatch(ctx context.Context, faqs []*entity.RouteFAQ) error
	FindByRouteID(ctx context.Context, routeID uuid.UUID) ([]*entity.RouteFAQ, error)
	DeleteByRouteID(ctx context.Context, routeID uuid.UUID) error
}

type routeFAQRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRouteFAQRepository(db database.PgxIface, log *zap.Logger) RouteFAQRepository {
	return &routeFAQRepository{
		db:  db,
		log: log.With(zap.String("repository", "route_faq")),
	}
}

func (r *routeFAQRepository) CreateBatch(ctx context.Context, faqs []*entity.RouteFAQ) error {
	query := `
		INSERT INTO route_faqs (id, route_id, question, answer, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, faq := range faqs {
		_, err := r.db.Exec(ctx, query,
			faq.ID,
			faq.RouteID,
			faq.Question,
			faq.Answer,
			faq.Position,
			faq.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create route FAQ",
				zap.Error(err),
				zap.String("route_id", faq.RouteID.String()),
			)
			return fmt.Errorf("create FAQ for route %s: %w", faq.RouteID.String(), err)
		}
	}

	return nil
}

func (r *routeFAQRepository) FindByRouteID(ctx context.Context, routeID uuid.UUID) ([]*entity.RouteFAQ, error) {
	query := `
		SELECT id, route_id, question, answer, position, created_at
		FROM route_faqs
		WHERE route_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, routeID)
	if err != nil {
		r.log.Error("Failed to find route FAQs",
			zap.Error(err),
			zap.String("route_id", routeID.String()),
		)
		return nil, fmt.Errorf("find FAQs for route %s: %w", routeID.String(), err)
	}
	defer rows.Close()

	var faqs []*entity.RouteFAQ
	for rows.Next() {
		var faq entity.RouteFAQ
		err := rows.Scan(
			&faq.ID,
			&faq.RouteID,
			&faq.Question,
			&faq.Answer,
			&faq.Position,
			&faq.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan route FAQ row", zap.Error(err))
			return nil, fmt.Errorf("scan route FAQ row: %w", err)
		}
		faqs = append(faqs, &faq)
	}

	return faqs, nil
}

func (r *routeFAQRepository) DeleteByRouteID(ctx context.Context, routeID uuid.UUID) error {
	query := `DELETE FROM route_faqs WHERE route_id = $1`

	_, err := r.db.Exec(ctx, query, routeID)
	if err != nil {
		r.log.Error("Failed to delete route FAQs",
			zap.Error(err),
			zap.String("route_id", routeID.String()),
		)
		return fmt.Errorf("delete FAQs for route %s: %w", routeID.String(), err)
	}

	return nil
}
