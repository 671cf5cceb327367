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

type DriverRepository interface {
	Create(ctx context.Context, driver *entity.Driver) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Driver, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Driver, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, driver *entity.Driver) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type driverRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDriverRepository(db database.PgxIface, log *zap.Logger) DriverRepository {
	return &driverRepository{
		db:  db,
		log: log.With(zap.String("repository", "driver")),
	}
}

func (r *driverRepository) Create(ctx context.Context, driver *entity.Driver) error {
	query := `
		INSERT INTO drivers (id, name, phone, email, license_number, user_id,
		                     active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		driver.ID,
		driver.Name,
		driver.Phone,
		driver.Email,
		driver.LicenseNumber,
		driver.UserID,
		driver.Active,
		driver.CreatedAt,
		driver.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create driver",
			zap.Error(err),
			zap.String("name", driver.Name),
		)
		return fmt.Errorf("create driver %s: %w", driver.Name, err)
	}

	return nil
}

func (r *driverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	query := `
		SELECT id, name, phone, email, license_number, user_id, active, created_at, updated_at
		FROM drivers
		WHERE id = $1 AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(ctx, query, id), id.String())
}

func (r *driverRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Driver, error) {
	query := `
		SELECT id, name, phone, email, license_number, user_id, active, created_at, updated_at
		FROM drivers
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(ctx, query, userID), userID.String())
}

func (r *driverRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Driver, error) {
	query := `
		SELECT id, name, phone, email, license_number, user_id, active, created_at, updated_at
		FROM drivers
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find drivers",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find drivers: %w", err)
	}
	defer rows.Close()

	var drivers []*entity.Driver
	for rows.Next() {
		var driver entity.Driver
		err := rows.Scan(
			&driver.ID,
			&driver.Name,
			&driver.Phone,
			&driver.Email,
			&driver.LicenseNumber,
			&driver.UserID,
			&driver.Active,
			&driver.CreatedAt,
			&driver.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan driver row", zap.Error(err))
			return nil, fmt.Errorf("scan driver row: %w", err)
		}
		drivers = append(drivers, &driver)
	}

	return drivers, nil
}

func (r *driverRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM drivers WHERE deleted_at IS NULL`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count drivers", zap.Error(err))
		return 0, fmt.Errorf("count drivers: %w", err)
	}

	return count, nil
}

func (r *driverRepository) Update(ctx context.Context, driver *entity.Driver) error {
	query := `
		UPDATE drivers
		SET name = $2, phone = $3, email = $4, license_number = $5, user_id = $6,
		    active = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		driver.ID,
		driver.Name,
		driver.Phone,
		driver.Email,
		driver.LicenseNumber,
		driver.UserID,
		driver.Active,
		driver.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update driver",
			zap.Error(err),
			zap.String("driver_id", driver.ID.String()),
		)
		return fmt.Errorf("update driver %s: %w", driver.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("driver %s not found", driver.ID.String())
	}

	return nil
}

func (r *driverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE drivers SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete driver",
			zap.Error(err),
			zap.String("driver_id", id.String()),
		)
		return fmt.Errorf("delete driver %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("driver %s not found", id.String())
	}

	r.log.Info("Driver deleted", zap.String("driver_id", id.String()))
	return nil
}

func (r *driverRepository) scanOne(row pgx.Row, key string) (*entity.Driver, error) {
	var driver entity.Driver
	err := row.Scan(
		&driver.ID,
		&driver.Name,
		&driver.Phone,
		&driver.Email,
		&driver.LicenseNumber,
		&driver.UserID,
		&driver.Active,
		&driver.CreatedAt,
		&driver.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find driver",
			zap.Error(err),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("find driver %s: %w", key, err)
	}

	return &driver, nil
}
