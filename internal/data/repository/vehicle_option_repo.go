package repository

import (
	"context"
	"fmt"

	"transfer-booking/internal/data/entity"
	"transfer-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VehicleOptionRepository interface {
	CreateBatch(ctx context.Context, options []*entity.VehicleOption) error
	FindByRouteID(ctx context.Context, routeID uuid.UUID) ([]*entity.VehicleOption, error)
	DeleteByRouteID(ctx context.Context, routeID uuid.UUID) error
}

type vehicleOptionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVehicleOptionRepository(db database.PgxIface, log *zap.Logger) VehicleOptionRepository {
	return &vehicleOptionRepository{
		db:  db,
		log: log.With(zap.String("repository", "vehicle_option")),
	}
}

func (r *vehicleOptionRepository) CreateBatch(ctx context.Context, options []*entity.VehicleOption) error {
	query := `
		INSERT INTO route_vehicle_options (id, route_id, vehicle_class, fixed_price,
		                                   max_passengers, ideal_for, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, option := range options {
		_, err := r.db.Exec(ctx, query,
			option.ID,
			option.RouteID,
			option.VehicleClass,
			option.FixedPrice,
			option.MaxPassengers,
			option.IdealFor,
			option.Position,
			option.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create vehicle option",
				zap.Error(err),
				zap.String("route_id", option.RouteID.String()),
				zap.String("vehicle_class", string(option.VehicleClass)),
			)
			return fmt.Errorf("create vehicle option for route %s: %w", option.RouteID.String(), err)
		}
	}

	return nil
}

func (r *vehicleOptionRepository) FindByRouteID(ctx context.Context, routeID uuid.UUID) ([]*entity.VehicleOption, error) {
	query := `
		SELECT id, route_id, vehicle_class, fixed_price, max_passengers,
		       ideal_for, position, created_at
		FROM route_vehicle_options
		WHERE route_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, routeID)
	if err != nil {
		r.log.Error("Failed to find vehicle options",
			zap.Error(err),
			zap.String("route_id", routeID.String()),
		)
		return nil, fmt.Errorf("find vehicle options for route %s: %w", routeID.String(), err)
	}
	defer rows.Close()

	var options []*entity.VehicleOption
	for rows.Next() {
		var option entity.VehicleOption
		err := rows.Scan(
			&option.ID,
			&option.RouteID,
			&option.VehicleClass,
			&option.FixedPrice,
			&option.MaxPassengers,
			&option.IdealFor,
			&option.Position,
			&option.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan vehicle option row", zap.Error(err))
			return nil, fmt.Errorf("scan vehicle option row: %w", err)
		}
		options = append(options, &option)
	}

	return options, nil
}

func (r *vehicleOptionRepository) DeleteByRouteID(ctx context.Context, routeID uuid.UUID) error {
	query := `DELETE FROM route_vehicle_options WHERE route_id = $1`

	_, err := r.db.Exec(ctx, query, routeID)
	if err != nil {
		r.log.Error("Failed to delete vehicle options",
			zap.Error(err),
			zap.String("route_id", routeID.String()),
		)
		return fmt.Errorf("delete vehicle options for route %s: %w", routeID.String(), err)
	}

	return nil
}
