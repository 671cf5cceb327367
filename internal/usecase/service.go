package usecase

import (
	"context"
	"time"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/data/repository"
	"transfer-booking/internal/payment"
	"transfer-booking/pkg/mailer"
	"transfer-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Route    RouteService
	Booking  BookingService
	Driver   DriverService
	Vehicle  VehicleService
	User     UserService
	Activity ActivityService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	mail := mailer.NewMailer(config.Email, log)
	gateway := payment.NewGateway(config.Gateway)

	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Route:    NewRouteService(repo, log),
		Booking:  NewBookingService(repo, config, mail, gateway, log),
		Driver:   NewDriverService(repo, log),
		Vehicle:  NewVehicleService(repo, log),
		User:     NewUserService(repo, log),
		Activity: NewActivityService(repo, log),
	}
}

// recordActivity appends an audit entry for the acting back-office user.
// Audit failures are logged, never propagated.
func recordActivity(ctx context.Context, repo *repository.Repository, log *zap.Logger, action, resource, resourceID, detail string) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return
	}

	activity := &entity.Activity{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Detail:     detail,
	}

	if err := repo.Activity.Create(ctx, activity); err != nil {
		log.Warn("Failed to record activity",
			zap.Error(err),
			zap.String("action", action),
			zap.String("resource", resource),
		)
	}
}
