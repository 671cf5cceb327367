package usecase

import (
	"context"
	"fmt"
	"time"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/data/repository"
	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/dto/response"
	"transfer-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DriverService interface {
	GetDrivers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.DriverResponse], error)
	GetDriverByID(ctx context.Context, driverID string) (*response.DriverResponse, error)
	CreateDriver(ctx context.Context, req *request.DriverRequest) (*response.DriverResponse, error)
	UpdateDriver(ctx context.Context, driverID string, req *request.DriverRequest) (*response.DriverResponse, error)
	DeleteDriver(ctx context.Context, driverID string) error
}

type driverService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDriverService(repo *repository.Repository, log *zap.Logger) DriverService {
	return &driverService{
		repo: repo,
		log:  log.With(zap.String("service", "driver")),
	}
}

func (s *driverService) GetDrivers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.DriverResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	drivers, err := s.repo.Driver.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get drivers", zap.Error(err))
		return nil, fmt.Errorf("get drivers: %w", err)
	}

	total, err := s.repo.Driver.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count drivers: %w", err)
	}

	driverResponses := make([]response.DriverResponse, len(drivers))
	for i, driver := range drivers {
		driverResponses[i] = response.DriverToResponse(driver)
	}

	return response.NewPaginatedResponse(driverResponses, req.Page, req.PerPage, total), nil
}

func (s *driverService) GetDriverByID(ctx context.Context, driverID string) (*response.DriverResponse, error) {
	id, err := uuid.Parse(driverID)
	if err != nil {
		return nil, fmt.Errorf("invalid driver ID format %s: %w", driverID, err)
	}

	driver, err := s.repo.Driver.FindByID(ctx, id)
	if err != nil || driver == nil {
		return nil, fmt.Errorf("driver %s not found", driverID)
	}

	resp := response.DriverToResponse(driver)
	return &resp, nil
}

func (s *driverService) CreateDriver(ctx context.Context, req *request.DriverRequest) (*response.DriverResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	driver := &entity.Driver{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:   req.Name,
		Phone:  req.Phone,
		Active: req.Active,
	}

	if err := s.applyOptionalFields(ctx, driver, req); err != nil {
		return nil, err
	}

	if err := s.repo.Driver.Create(ctx, driver); err != nil {
		s.log.Error("Failed to create driver", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create driver: %w", err)
	}

	s.log.Info("Driver created",
		zap.String("driver_id", driver.ID.String()),
		zap.String("name", driver.Name),
	)

	recordActivity(ctx, s.repo, s.log, "created", "driver", driver.ID.String(), driver.Name)

	resp := response.DriverToResponse(driver)
	return &resp, nil
}

func (s *driverService) UpdateDriver(ctx context.Context, driverID string, req *request.DriverRequest) (*response.DriverResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(driverID)
	if err != nil {
		return nil, fmt.Errorf("invalid driver ID format %s: %w", driverID, err)
	}

	driver, err := s.repo.Driver.FindByID(ctx, id)
	if err != nil || driver == nil {
		return nil, fmt.Errorf("driver %s not found", driverID)
	}

	driver.Name = req.Name
	driver.Phone = req.Phone
	driver.Active = req.Active
	driver.Email = nil
	driver.LicenseNumber = nil
	driver.UserID = nil
	driver.UpdatedAt = time.Now()

	if err := s.applyOptionalFields(ctx, driver, req); err != nil {
		return nil, err
	}

	if err := s.repo.Driver.Update(ctx, driver); err != nil {
		s.log.Error("Failed to update driver", zap.Error(err), zap.String("driver_id", driverID))
		return nil, fmt.Errorf("update driver %s: %w", driverID, err)
	}

	s.log.Info("Driver updated",
		zap.String("driver_id", driverID),
		zap.String("name", driver.Name),
	)

	recordActivity(ctx, s.repo, s.log, "updated", "driver", driverID, driver.Name)

	resp := response.DriverToResponse(driver)
	return &resp, nil
}

func (s *driverService) DeleteDriver(ctx context.Context, driverID string) error {
	id, err := uuid.Parse(driverID)
	if err != nil {
		return fmt.Errorf("invalid driver ID format %s: %w", driverID, err)
	}

	driver, err := s.repo.Driver.FindByID(ctx, id)
	if err != nil || driver == nil {
		return fmt.Errorf("driver %s not found", driverID)
	}

	if err := s.repo.Driver.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete driver", zap.Error(err), zap.String("driver_id", driverID))
		return fmt.Errorf("delete driver %s: %w", driverID, err)
	}

	s.log.Info("Driver deleted",
		zap.String("driver_id", driverID),
		zap.String("name", driver.Name),
	)

	recordActivity(ctx, s.repo, s.log, "deleted", "driver", driverID, driver.Name)

	return nil
}

func (s *driverService) applyOptionalFields(ctx context.Context, driver *entity.Driver, req *request.DriverRequest) error {
	if req.Email != "" {
		email := req.Email
		driver.Email = &email
	}
	if req.LicenseNumber != "" {
		license := req.LicenseNumber
		driver.LicenseNumber = &license
	}

	// A linked portal account must exist and carry the driver role.
	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			return fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
		}

		user, err := s.repo.User.FindByID(ctx, userID)
		if err != nil || user == nil {
			return fmt.Errorf("user %s not found", req.UserID)
		}
		if user.Role != entity.RoleDriver {
			return fmt.Errorf("user %s does not have the driver role", user.Username)
		}

		driver.UserID = &userID
	}

	return nil
}
