package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/data/repository"
	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/dto/response"
	"transfer-booking/internal/payment"
	"transfer-booking/internal/pricing"
	"transfer-booking/pkg/mailer"
	"transfer-booking/pkg/metrics"
	"transfer-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public funnel
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CreateCardBooking(ctx context.Context, req *request.CreateBookingRequest) (*payment.CheckoutRequest, error)
	ConfirmPayment(ctx context.Context, token string) (*response.BookingResponse, error)

	// Admin endpoints
	GetBookings(ctx context.Context, req *request.PaginatedRequest, status *string) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	AssignBooking(ctx context.Context, bookingID string, req *request.AssignBookingRequest) error
	UpdateBookingStatus(ctx context.Context, bookingID, status string) error
	CancelBooking(ctx context.Context, bookingID string) error

	// Driver portal
	GetDriverBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateDriverBookingStatus(ctx context.Context, userID, bookingID, status string) error
}

type bookingService struct {
	repo    *repository.Repository
	config  *utils.Config
	mail    mailer.Mailer
	gateway *payment.Gateway
	log     *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	gateway *payment.Gateway,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:    repo,
		config:  config,
		mail:    mail,
		gateway: gateway,
		log:     log.With(zap.String("service", "booking")),
	}
}

// maxRouteSuggestions caps the alternatives listed in an invalid-route error.
const maxRouteSuggestions = 10

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// The JSON path only carries cash bookings; card submissions must go
	// through the payment redirect, never through here.
	if entity.PaymentMethod(req.PaymentMethod) == entity.PaymentMethodCard {
		metrics.IncBookingRejected("card_on_cash_path")
		return nil, fmt.Errorf("invalid payment method: card payments must use the payment redirect")
	}

	booking, route, err := s.buildBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	booking.Status = entity.BookingStatusPending

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("route_slug", booking.RouteSlug),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.IncBookingCreated(string(booking.PaymentMethod))

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("route_slug", booking.RouteSlug),
		zap.String("payment_method", string(booking.PaymentMethod)),
		zap.Float64("total_price", booking.TotalPrice),
	)

	go s.notifyBookingReceived(booking, route)

	resp := response.BookingToResponse(booking)
	resp.RouteTitle = route.Title()
	return &resp, nil
}

func (s *bookingService) CreateCardBooking(ctx context.Context, req *request.CreateBookingRequest) (*payment.CheckoutRequest, error) {
	if entity.PaymentMethod(req.PaymentMethod) != entity.PaymentMethodCard {
		metrics.IncBookingRejected("cash_on_card_path")
		return nil, fmt.Errorf("invalid payment method: the payment redirect only accepts card bookings")
	}

	booking, route, err := s.buildBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	booking.Status = entity.BookingStatusPaymentPending

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create card booking",
			zap.Error(err),
			zap.String("route_slug", booking.RouteSlug),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	now := time.Now()
	pay := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
		Currency:  booking.Currency,
		Status:    entity.PaymentStatusPending,
	}

	if err := s.repo.Payment.Create(ctx, pay); err != nil {
		// Roll back the half-created booking so a retry starts clean
		if derr := s.repo.Booking.Delete(ctx, booking.ID); derr != nil {
			s.log.Error("Failed to roll back booking after payment error",
				zap.Error(derr),
				zap.String("booking_id", booking.ID.String()),
			)
		}
		return nil, fmt.Errorf("create payment record: %w", err)
	}

	description := fmt.Sprintf("Airport transfer %s (%s)", route.Title(), booking.TripType)
	checkout, err := s.gateway.BuildCheckout(booking.OrderID, booking.TotalPrice, booking.Currency, description)
	if err != nil {
		s.log.Error("Failed to build gateway checkout",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
		)
		return nil, fmt.Errorf("prepare payment redirect: %w", err)
	}

	metrics.IncBookingCreated(string(booking.PaymentMethod))

	s.log.Info("Card booking handed off to gateway",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.Float64("amount", booking.TotalPrice),
	)

	return checkout, nil
}

func (s *bookingService) ConfirmPayment(ctx context.Context, token string) (*response.BookingResponse, error) {
	orderID, status, gatewayRef, err := s.gateway.VerifyReturn(token)
	if err != nil {
		s.log.Warn("Gateway return token rejected", zap.Error(err))
		return nil, fmt.Errorf("invalid payment confirmation")
	}

	booking, err := s.repo.Booking.FindByOrderID(ctx, orderID)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", orderID)
	}

	pay, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil || pay == nil {
		return nil, fmt.Errorf("payment for booking %s not found", orderID)
	}

	// A gateway redirect can be replayed (back button, duplicate tab). Once
	// the payment has settled the outcome is final, so a repeat token is a
	// no-op rather than a second state change or a second email.
	if pay.Status != entity.PaymentStatusPending {
		s.log.Info("Ignoring return token for settled payment",
			zap.String("order_id", orderID),
			zap.String("payment_status", string(pay.Status)),
		)
		resp := response.BookingToResponse(booking)
		return &resp, nil
	}

	var ref *string
	if gatewayRef != "" {
		ref = &gatewayRef
	}

	if status == "paid" {
		if err := s.repo.Payment.UpdateStatus(ctx, pay.ID, entity.PaymentStatusPaid, ref); err != nil {
			return nil, fmt.Errorf("confirm payment for %s: %w", orderID, err)
		}
		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusConfirmed); err != nil {
			return nil, fmt.Errorf("confirm booking %s: %w", orderID, err)
		}
		booking.Status = entity.BookingStatusConfirmed
		metrics.IncPayment("paid")

		s.log.Info("Card payment confirmed",
			zap.String("order_id", orderID),
			zap.Stringp("gateway_ref", ref),
		)

		route, _ := s.repo.Route.FindByID(ctx, booking.RouteID)
		go s.notifyBookingReceived(booking, route)
	} else {
		if err := s.repo.Payment.UpdateStatus(ctx, pay.ID, entity.PaymentStatusFailed, ref); err != nil {
			return nil, fmt.Errorf("mark payment failed for %s: %w", orderID, err)
		}
		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
			return nil, fmt.Errorf("cancel booking %s: %w", orderID, err)
		}
		booking.Status = entity.BookingStatusCancelled
		metrics.IncPayment("failed")

		s.log.Warn("Card payment failed",
			zap.String("order_id", orderID),
			zap.String("gateway_status", status),
		)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// buildBooking validates the draft against the catalog and prices it. No
// writes happen here: a rejected draft leaves nothing behind.
func (s *bookingService) buildBooking(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, *entity.Route, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		metrics.IncBookingRejected("validation")
		return nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tripType := entity.TripType(req.TripType)
	if tripType == entity.TripTypeReturn {
		if req.ReturnDate == "" || req.ReturnTime == "" || req.ReturnTimePeriod == "" {
			metrics.IncBookingRejected("validation")
			return nil, nil, fmt.Errorf("validation failed: return date, time and time period are required for return trips")
		}
	}

	// The catalog is the source of truth for bookable routes; the funnel
	// never gets to invent a slug.
	route, err := s.repo.Route.FindBySlug(ctx, req.RouteID)
	if err != nil {
		s.log.Error("Failed to look up route", zap.Error(err), zap.String("route_id", req.RouteID))
		return nil, nil, fmt.Errorf("check route: %w", err)
	}
	if route == nil || !route.Active {
		metrics.IncBookingRejected("invalid_route")
		return nil, nil, fmt.Errorf("invalid route %q; %s", req.RouteID, s.routeSuggestions(ctx))
	}

	options, err := s.repo.VehicleOption.FindByRouteID(ctx, route.ID)
	if err != nil {
		s.log.Error("Failed to load vehicle options",
			zap.Error(err),
			zap.String("route_slug", route.Slug),
		)
		return nil, nil, fmt.Errorf("load vehicle options: %w", err)
	}

	vehicleClass := entity.VehicleClass(req.VehicleTypeID)
	total, err := pricing.QuoteRoute(route, options, vehicleClass, tripType)
	if err != nil {
		metrics.IncBookingRejected("invalid_price")
		return nil, nil, fmt.Errorf("invalid price for route %q (%s): %w", route.Slug, req.VehicleTypeID, err)
	}

	travelDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		metrics.IncBookingRejected("validation")
		return nil, nil, fmt.Errorf("validation failed: invalid travel date %q", req.Date)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:       utils.GenerateOrderID(),
		RouteID:       route.ID,
		RouteSlug:     route.Slug,
		VehicleClass:  vehicleClass,
		TimePeriod:    entity.TimePeriod(req.TimePeriod),
		TravelDate:    travelDate,
		TravelTime:    req.Time,
		TripType:      tripType,
		Adults:        req.Adults,
		Children:      req.Children,
		BaggageType:   entity.BaggageType(req.BaggageType),
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Notes:         req.Notes,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		TotalPrice:    total,
		Currency:      s.config.Booking.Currency,
	}

	if tripType == entity.TripTypeReturn {
		returnDate, err := time.Parse("2006-01-02", req.ReturnDate)
		if err != nil {
			metrics.IncBookingRejected("validation")
			return nil, nil, fmt.Errorf("validation failed: invalid return date %q", req.ReturnDate)
		}
		returnPeriod := entity.TimePeriod(req.ReturnTimePeriod)
		booking.ReturnDate = &returnDate
		booking.ReturnTime = &req.ReturnTime
		booking.ReturnTimePeriod = &returnPeriod
	}

	if req.FlightNumber != "" {
		booking.FlightNumber = &req.FlightNumber
	}

	return booking, route, nil
}

// routeSuggestions lists up to 10 bookable routes to aid debugging a stale
// or tampered route id.
func (s *bookingService) routeSuggestions(ctx context.Context) string {
	routes, err := s.repo.Route.FindAll(ctx, maxRouteSuggestions, 0, true)
	if err != nil || len(routes) == 0 {
		return "no routes are currently available"
	}

	items := make([]string, len(routes))
	for i, route := range routes {
		items[i] = fmt.Sprintf("%s (%s)", route.Slug, route.Title())
	}
	return "available routes: " + strings.Join(items, ", ")
}

func (s *bookingService) notifyBookingReceived(booking *entity.Booking, route *entity.Route) {
	routeTitle := booking.RouteSlug
	if route != nil {
		routeTitle = route.Title()
	}

	subject := fmt.Sprintf("Booking received - %s", booking.OrderID)
	body := fmt.Sprintf(
		"Dear %s,\n\nWe received your transfer request.\n\n"+
			"Order: %s\nRoute: %s\nVehicle: %s\nDate: %s %s (%s)\nTrip: %s\n"+
			"Passengers: %d adults, %d children\nTotal: %.2f %s (%s)\n\n"+
			"Our office will confirm your booking shortly.",
		booking.Name,
		booking.OrderID,
		routeTitle,
		booking.VehicleClass,
		booking.TravelDate.Format("2006-01-02"),
		booking.TravelTime,
		booking.TimePeriod,
		booking.TripType,
		booking.Adults,
		booking.Children,
		booking.TotalPrice,
		booking.Currency,
		booking.PaymentMethod,
	)

	if err := s.mail.Send([]string{booking.Email}, subject, body); err != nil {
		s.log.Warn("Failed to email customer", zap.Error(err), zap.String("order_id", booking.OrderID))
	}

	if office := s.config.Email.OfficeAddr; office != "" {
		officeSubject := fmt.Sprintf("New booking %s - %s", booking.OrderID, routeTitle)
		officeBody := body + fmt.Sprintf("\n\nContact: %s / %s", booking.Phone, booking.Email)
		if err := s.mail.Send([]string{office}, officeSubject, officeBody); err != nil {
			s.log.Warn("Failed to email office", zap.Error(err), zap.String("order_id", booking.OrderID))
		}
	}
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest, status *string) (*response.PaginatedResponse[response.BookingResponse], error) {
	var statusFilter *entity.BookingStatus
	if status != nil && *status != "" {
		bookingStatus := entity.BookingStatus(*status)
		if !bookingStatus.Valid() {
			return nil, fmt.Errorf("invalid booking status %q", *status)
		}
		statusFilter = &bookingStatus
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindAll(ctx, limit, offset, statusFilter)
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx, statusFilter)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = s.decorateResponse(ctx, booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	detail := &response.BookingDetailResponse{
		BookingResponse: s.decorateResponse(ctx, booking),
	}

	pay, _ := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if pay != nil {
		payResp := response.PaymentToResponse(pay)
		detail.Payment = &payResp
	}

	return detail, nil
}

func (s *bookingService) AssignBooking(ctx context.Context, bookingID string, req *request.AssignBookingRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return fmt.Errorf("invalid driver ID format %s: %w", req.DriverID, err)
	}

	driver, err := s.repo.Driver.FindByID(ctx, driverID)
	if err != nil || driver == nil {
		return fmt.Errorf("driver %s not found", req.DriverID)
	}
	if !driver.Active {
		return fmt.Errorf("driver %s is not active", driver.Name)
	}

	var vehicleID *uuid.UUID
	if req.VehicleID != "" {
		vid, err := uuid.Parse(req.VehicleID)
		if err != nil {
			return fmt.Errorf("invalid vehicle ID format %s: %w", req.VehicleID, err)
		}
		vehicle, err := s.repo.Vehicle.FindByID(ctx, vid)
		if err != nil || vehicle == nil {
			return fmt.Errorf("vehicle %s not found", req.VehicleID)
		}
		vehicleID = &vid
	}

	if err := s.repo.Booking.AssignDriver(ctx, id, &driverID, vehicleID); err != nil {
		return fmt.Errorf("assign driver to booking %s: %w", bookingID, err)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusAssigned); err != nil {
		return fmt.Errorf("mark booking %s assigned: %w", bookingID, err)
	}

	s.log.Info("Booking assigned",
		zap.String("booking_id", bookingID),
		zap.String("driver_id", req.DriverID),
	)

	recordActivity(ctx, s.repo, s.log, "assigned", "booking", bookingID,
		fmt.Sprintf("driver %s", driver.Name))

	return nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID, status string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	bookingStatus := entity.BookingStatus(status)
	if !bookingStatus.Valid() {
		return fmt.Errorf("invalid booking status %q", status)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, bookingStatus); err != nil {
		return fmt.Errorf("update booking %s status: %w", bookingID, err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", status),
	)

	recordActivity(ctx, s.repo, s.log, "updated", "booking", bookingID,
		fmt.Sprintf("status → %s", status))

	return nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	switch booking.Status {
	case entity.BookingStatusCompleted, entity.BookingStatusCancelled:
		return fmt.Errorf("booking status is %s, cannot cancel", booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("order_id", booking.OrderID),
	)

	recordActivity(ctx, s.repo, s.log, "cancelled", "booking", bookingID, booking.OrderID)

	return nil
}

// ==================== DRIVER PORTAL ====================

func (s *bookingService) GetDriverBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	driver, err := s.findDriverByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByDriverID(ctx, driver.ID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get driver bookings",
			zap.Error(err),
			zap.String("driver_id", driver.ID.String()),
		)
		return nil, fmt.Errorf("get driver bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByDriverID(ctx, driver.ID)
	if err != nil {
		return nil, fmt.Errorf("count driver bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = s.decorateResponse(ctx, booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) UpdateDriverBookingStatus(ctx context.Context, userID, bookingID, status string) error {
	driver, err := s.findDriverByUser(ctx, userID)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.DriverID == nil || *booking.DriverID != driver.ID {
		return fmt.Errorf("unauthorized to update this booking")
	}

	next := entity.BookingStatus(status)
	switch next {
	case entity.BookingStatusOnRoute:
		if booking.Status != entity.BookingStatusAssigned {
			return fmt.Errorf("booking status is %s, cannot start trip", booking.Status)
		}
	case entity.BookingStatusCompleted:
		if booking.Status != entity.BookingStatusOnRoute {
			return fmt.Errorf("booking status is %s, cannot complete trip", booking.Status)
		}
	default:
		return fmt.Errorf("invalid driver status %q", status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, next); err != nil {
		return fmt.Errorf("update booking %s status: %w", bookingID, err)
	}

	s.log.Info("Driver updated booking status",
		zap.String("booking_id", bookingID),
		zap.String("driver_id", driver.ID.String()),
		zap.String("status", status),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) findDriverByUser(ctx context.Context, userID string) (*entity.Driver, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	driver, err := s.repo.Driver.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to find driver by user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("find driver profile: %w", err)
	}
	if driver == nil {
		return nil, fmt.Errorf("driver profile not found for this account")
	}

	return driver, nil
}

func (s *bookingService) decorateResponse(ctx context.Context, booking *entity.Booking) response.BookingResponse {
	resp := response.BookingToResponse(booking)

	route, _ := s.repo.Route.FindByID(ctx, booking.RouteID)
	if route != nil {
		resp.RouteTitle = route.Title()
	}

	if booking.DriverID != nil {
		driver, _ := s.repo.Driver.FindByID(ctx, *booking.DriverID)
		if driver != nil {
			resp.DriverName = driver.Name
		}
	}

	if booking.VehicleID != nil {
		vehicle, _ := s.repo.Vehicle.FindByID(ctx, *booking.VehicleID)
		if vehicle != nil {
			resp.VehicleReg = vehicle.Registration
		}
	}

	return resp
}
