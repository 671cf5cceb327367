package repository

import (
	"context"
	"fmt"

	"transfer-booking/internal/data/entity"
	"transfer-booking/pkg/database"

	"go.uber.org/zap"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Activity, error)
	CountAll(ctx context.Context) (int64, error)
}

type activityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActivityRepository(db database.PgxIface, log *zap.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity")),
	}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, user_id, action, resource, resource_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.UserID,
		activity.Action,
		activity.Resource,
		activity.ResourceID,
		activity.Detail,
		activity.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create activity",
			zap.Error(err),
			zap.String("action", activity.Action),
			zap.String("resource", activity.Resource),
		)
		return fmt.Errorf("create activity %s %s: %w", activity.Action, activity.Resource, err)
	}

	return nil
}

func (r *activityRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Activity, error) {
	query := `
		SELECT id, user_id, action, resource, resource_id, detail, created_at
		FROM activities
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find activities",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find activities: %w", err)
	}
	defer rows.Close()

	var activities []*entity.Activity
	for rows.Next() {
		var activity entity.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.UserID,
			&activity.Action,
			&activity.Resource,
			&activity.ResourceID,
			&activity.Detail,
			&activity.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan activity row", zap.Error(err))
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, &activity)
	}

	return activities, nil
}

func (r *activityRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM activities`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count activities", zap.Error(err))
		return 0, fmt.Errorf("count activities: %w", err)
	}

	return count, nil
}
