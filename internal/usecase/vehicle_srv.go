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

type VehicleService interface {
	GetVehicles(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VehicleResponse], error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error)
	CreateVehicle(ctx context.Context, req *request.VehicleRequest) (*response.VehicleResponse, error)
	UpdateVehicle(ctx context.Context, vehicleID string, req *request.VehicleRequest) (*response.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
}

type vehicleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVehicleService(repo *repository.Repository, log *zap.Logger) VehicleService {
	return &vehicleService{
		repo: repo,
		log:  log.With(zap.String("service", "vehicle")),
	}
}

func (s *vehicleService) GetVehicles(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VehicleResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	vehicles, err := s.repo.Vehicle.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get vehicles", zap.Error(err))
		return nil, fmt.Errorf("get vehicles: %w", err)
	}

	total, err := s.repo.Vehicle.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}

	vehicleResponses := make([]response.VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		vehicleResponses[i] = response.VehicleToResponse(vehicle)
	}

	return response.NewPaginatedResponse(vehicleResponses, req.Page, req.PerPage, total), nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil || vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", vehicleID)
	}

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req *request.VehicleRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	vehicle := &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Registration: req.Registration,
		VehicleClass: entity.VehicleClass(req.VehicleClass),
		Make:         req.Make,
		Model:        req.Model,
		Seats:        req.Seats,
		Active:       req.Active,
	}

	if err := s.resolveDriver(ctx, vehicle, req.DriverID); err != nil {
		return nil, err
	}

	if err := s.repo.Vehicle.Create(ctx, vehicle); err != nil {
		s.log.Error("Failed to create vehicle", zap.Error(err), zap.String("registration", req.Registration))
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	s.log.Info("Vehicle created",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("registration", vehicle.Registration),
	)

	recordActivity(ctx, s.repo, s.log, "created", "vehicle", vehicle.ID.String(), vehicle.Registration)

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicleID string, req *request.VehicleRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil || vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", vehicleID)
	}

	vehicle.Registration = req.Registration
	vehicle.VehicleClass = entity.VehicleClass(req.VehicleClass)
	vehicle.Make = req.Make
	vehicle.Model = req.Model
	vehicle.Seats = req.Seats
	vehicle.Active = req.Active
	vehicle.DriverID = nil
	vehicle.UpdatedAt = time.Now()

	if err := s.resolveDriver(ctx, vehicle, req.DriverID); err != nil {
		return nil, err
	}

	if err := s.repo.Vehicle.Update(ctx, vehicle); err != nil {
		s.log.Error("Failed to update vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("update vehicle %s: %w", vehicleID, err)
	}

	s.log.Info("Vehicle updated",
		zap.String("vehicle_id", vehicleID),
		zap.String("registration", vehicle.Registration),
	)

	recordActivity(ctx, s.repo, s.log, "updated", "vehicle", vehicleID, vehicle.Registration)

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil || vehicle == nil {
		return fmt.Errorf("vehicle %s not found", vehicleID)
	}

	if err := s.repo.Vehicle.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return fmt.Errorf("delete vehicle %s: %w", vehicleID, err)
	}

	s.log.Info("Vehicle deleted",
		zap.String("vehicle_id", vehicleID),
		zap.String("registration", vehicle.Registration),
	)

	recordActivity(ctx, s.repo, s.log, "deleted", "vehicle", vehicleID, vehicle.Registration)

	return nil
}

func (s *vehicleService) resolveDriver(ctx context.Context, vehicle *entity.Vehicle, driverID string) error {
	if driverID == "" {
		return nil
	}

	id, err := uuid.Parse(driverID)
	if err != nil {
		return fmt.Errorf("invalid driver ID format %s: %w", driverID, err)
	}

	driver, err := s.repo.Driver.FindByID(ctx, id)
	if err != nil || driver == nil {
		return fmt.Errorf("driver %s not found", driverID)
	}

	vehicle.DriverID = &id
	return nil
}
