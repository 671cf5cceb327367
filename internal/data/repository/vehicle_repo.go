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

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type vehicleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVehicleRepository(db database.PgxIface, log *zap.Logger) VehicleRepository {
	return &vehicleRepository{
		db:  db,
		log: log.With(zap.String("repository", "vehicle")),
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, registration, vehicle_class, make, model, seats,
		                      driver_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Registration,
		vehicle.VehicleClass,
		vehicle.Make,
		vehicle.Model,
		vehicle.Seats,
		vehicle.DriverID,
		vehicle.Active,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("registration", vehicle.Registration),
		)
		return fmt.Errorf("create vehicle %s: %w", vehicle.Registration, err)
	}

	return nil
}

func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	query := `
		SELECT id, registration, vehicle_class, make, model, seats, driver_id,
		       active, created_at, updated_at
		FROM vehicles
		WHERE id = $1 AND deleted_at IS NULL
	`

	var vehicle entity.Vehicle
	err := r.db.QueryRow(ctx, query, id).Scan(
		&vehicle.ID,
		&vehicle.Registration,
		&vehicle.VehicleClass,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Seats,
		&vehicle.DriverID,
		&vehicle.Active,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vehicle by ID",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return nil, fmt.Errorf("find vehicle by ID %s: %w", id.String(), err)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error) {
	query := `
		SELECT id, registration, vehicle_class, make, model, seats, driver_id,
		       active, created_at, updated_at
		FROM vehicles
		WHERE deleted_at IS NULL
		ORDER BY registration
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find vehicles",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*entity.Vehicle
	for rows.Next() {
		var vehicle entity.Vehicle
		err := rows.Scan(
			&vehicle.ID,
			&vehicle.Registration,
			&vehicle.VehicleClass,
			&vehicle.Make,
			&vehicle.Model,
			&vehicle.Seats,
			&vehicle.DriverID,
			&vehicle.Active,
			&vehicle.CreatedAt,
			&vehicle.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan vehicle row", zap.Error(err))
			return nil, fmt.Errorf("scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, nil
}

func (r *vehicleRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM vehicles WHERE deleted_at IS NULL`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count vehicles", zap.Error(err))
		return 0, fmt.Errorf("count vehicles: %w", err)
	}

	return count, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		UPDATE vehicles
		SET registration = $2, vehicle_class = $3, make = $4, model = $5,
		    seats = $6, driver_id = $7, active = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Registration,
		vehicle.VehicleClass,
		vehicle.Make,
		vehicle.Model,
		vehicle.Seats,
		vehicle.DriverID,
		vehicle.Active,
		vehicle.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update vehicle",
			zap.Error(err),
			zap.String("vehicle_id", vehicle.ID.String()),
		)
		return fmt.Errorf("update vehicle %s: %w", vehicle.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", vehicle.ID.String())
	}

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE vehicles SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete vehicle",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return fmt.Errorf("delete vehicle %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", id.String())
	}

	r.log.Info("Vehicle deleted", zap.String("vehicle_id", id.String()))
	return nil
}
