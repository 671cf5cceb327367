package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/data/repository"
	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/payment"
	"transfer-booking/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ==================== IN-MEMORY FAKES ====================

type fakeRouteRepo struct {
	routes []*entity.Route
}

func (f *fakeRouteRepo) Create(ctx context.Context, route *entity.Route) error {
	f.routes = append(f.routes, route)
	return nil
}

func (f *fakeRouteRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	for _, route := range f.routes {
		if route.ID == id {
			return route, nil
		}
	}
	return nil, nil
}

func (f *fakeRouteRepo) FindBySlug(ctx context.Context, slug string) (*entity.Route, error) {
	for _, route := range f.routes {
		if route.Slug == slug {
			return route, nil
		}
	}
	return nil, nil
}

func (f *fakeRouteRepo) FindAll(ctx context.Context, limit, offset int, activeOnly bool) ([]*entity.Route, error) {
	var out []*entity.Route
	for _, route := range f.routes {
		if activeOnly && !route.Active {
			continue
		}
		out = append(out, route)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeRouteRepo) CountAll(ctx context.Context, activeOnly bool) (int64, error) {
	return int64(len(f.routes)), nil
}

func (f *fakeRouteRepo) Update(ctx context.Context, route *entity.Route) error { return nil }
func (f *fakeRouteRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

type fakeOptionRepo struct {
	options map[uuid.UUID][]*entity.VehicleOption
}

func (f *fakeOptionRepo) CreateBatch(ctx context.Context, options []*entity.VehicleOption) error {
	for _, option := range options {
		f.options[option.RouteID] = append(f.options[option.RouteID], option)
	}
	return nil
}

func (f *fakeOptionRepo) FindByRouteID(ctx context.Context, routeID uuid.UUID) ([]*entity.VehicleOption, error) {
	return f.options[routeID], nil
}

func (f *fakeOptionRepo) DeleteByRouteID(ctx context.Context, routeID uuid.UUID) error {
	delete(f.options, routeID)
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*entity.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, booking := range f.bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, booking := range f.bookings {
		if booking.OrderID == orderID {
			return booking, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, limit, offset int, status *entity.BookingStatus) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, booking := range f.bookings {
		if status != nil && booking.Status != *status {
			continue
		}
		out = append(out, booking)
	}
	return out, nil
}

func (f *fakeBookingRepo) CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error) {
	bookings, _ := f.FindAll(ctx, 0, 0, status)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) FindByDriverID(ctx context.Context, driverID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, booking := range f.bookings {
		if booking.DriverID != nil && *booking.DriverID == driverID {
			out = append(out, booking)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByDriverID(ctx context.Context, driverID uuid.UUID) (int64, error) {
	bookings, _ := f.FindByDriverID(ctx, driverID, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, booking := range f.bookings {
		if booking.ID == bookingID {
			booking.Status = status
		}
	}
	return nil
}

func (f *fakeBookingRepo) AssignDriver(ctx context.Context, bookingID uuid.UUID, driverID, vehicleID *uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, booking := range f.bookings {
		if booking.ID == bookingID {
			booking.DriverID = driverID
			booking.VehicleID = vehicleID
		}
	}
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, booking := range f.bookings {
		if booking.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

type fakePaymentRepo struct {
	mu        sync.Mutex
	payments  []*entity.Payment
	createErr error
}

func (f *fakePaymentRepo) Create(ctx context.Context, pay *entity.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.payments = append(f.payments, pay)
	return nil
}

func (f *fakePaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, pay := range f.payments {
		if pay.BookingID == bookingID {
			return pay, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus, gatewayRef *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, pay := range f.payments {
		if pay.ID == paymentID {
			pay.Status = status
			if gatewayRef != nil {
				pay.GatewayRef = gatewayRef
			}
		}
	}
	return nil
}

type fakeDriverRepo struct {
	drivers []*entity.Driver
}

func (f *fakeDriverRepo) Create(ctx context.Context, driver *entity.Driver) error {
	f.drivers = append(f.drivers, driver)
	return nil
}

func (f *fakeDriverRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	for _, driver := range f.drivers {
		if driver.ID == id {
			return driver, nil
		}
	}
	return nil, nil
}

func (f *fakeDriverRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Driver, error) {
	for _, driver := range f.drivers {
		if driver.UserID != nil && *driver.UserID == userID {
			return driver, nil
		}
	}
	return nil, nil
}

func (f *fakeDriverRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Driver, error) {
	return f.drivers, nil
}

func (f *fakeDriverRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.drivers)), nil
}

func (f *fakeDriverRepo) Update(ctx context.Context, driver *entity.Driver) error { return nil }
func (f *fakeDriverRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

type fakeVehicleRepo struct {
	vehicles []*entity.Vehicle
}

func (f *fakeVehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	f.vehicles = append(f.vehicles, vehicle)
	return nil
}

func (f *fakeVehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	for _, vehicle := range f.vehicles {
		if vehicle.ID == id {
			return vehicle, nil
		}
	}
	return nil, nil
}

func (f *fakeVehicleRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error) {
	return f.vehicles, nil
}

func (f *fakeVehicleRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.vehicles)), nil
}

func (f *fakeVehicleRepo) Update(ctx context.Context, vehicle *entity.Vehicle) error { return nil }
func (f *fakeVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

type fakeActivityRepo struct {
	mu         sync.Mutex
	activities []*entity.Activity
}

func (f *fakeActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activities = append(f.activities, activity)
	return nil
}

func (f *fakeActivityRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Activity, error) {
	return f.activities, nil
}

func (f *fakeActivityRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.activities)), nil
}

type noopMailer struct{}

func (noopMailer) Send(to []string, subject, body string) error { return nil }

// signTestReturnToken mimics the token the gateway appends to its redirect.
func signTestReturnToken(t *testing.T, secret, orderID, status, gatewayRef string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"order_id": orderID,
		"status":   status,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(5 * time.Minute).Unix(),
	}
	if gatewayRef != "" {
		claims["gateway_ref"] = gatewayRef
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

// ==================== TEST FIXTURE ====================

type bookingFixture struct {
	service  BookingService
	repo     *repository.Repository
	bookings *fakeBookingRepo
	payments *fakePaymentRepo
	drivers  *fakeDriverRepo
	route    *entity.Route
	gateway  *payment.Gateway
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	route := &entity.Route{
		Base:         entity.Base{ID: uuid.New()},
		Slug:         "airport-city-center",
		FromLocation: "Airport",
		ToLocation:   "City Center",
		Active:       true,
	}

	options := map[uuid.UUID][]*entity.VehicleOption{
		route.ID: {
			{VehicleClass: entity.VehicleClassSedan, FixedPrice: "€65", Position: 0},
			{VehicleClass: entity.VehicleClassVClass, FixedPrice: "€130", Position: 1},
		},
	}

	bookings := &fakeBookingRepo{}
	payments := &fakePaymentRepo{}
	drivers := &fakeDriverRepo{}

	repo := &repository.Repository{
		Route:         &fakeRouteRepo{routes: []*entity.Route{route}},
		VehicleOption: &fakeOptionRepo{options: options},
		Booking:       bookings,
		Payment:       payments,
		Driver:        drivers,
		Vehicle:       &fakeVehicleRepo{},
		Activity:      &fakeActivityRepo{},
	}

	config := &utils.Config{
		Booking: utils.BookingConfig{Currency: "EUR"},
		Gateway: utils.GatewayConfig{
			CheckoutURL: "https://pay.example.com/checkout",
			MerchantID:  "merchant-1",
			Secret:      "test-secret",
		},
	}

	gateway := payment.NewGateway(config.Gateway)
	service := NewBookingService(repo, config, noopMailer{}, gateway, zap.NewNop())

	return &bookingFixture{
		service:  service,
		repo:     repo,
		bookings: bookings,
		payments: payments,
		drivers:  drivers,
		route:    route,
		gateway:  gateway,
	}
}

func validCashRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		RouteID:       "airport-city-center",
		VehicleTypeID: "sedan",
		TimePeriod:    "day",
		Date:          "2026-09-15",
		Time:          "14:30",
		TripType:      "one-way",
		Adults:        2,
		Children:      1,
		BaggageType:   "standard",
		Name:          "Maria K",
		Phone:         "+35799123456",
		Email:         "maria@example.com",
		PaymentMethod: "cash",
	}
}

// ==================== TESTS ====================

func TestCreateBookingCash(t *testing.T) {
	fx := newBookingFixture(t)
	ctx := context.Background()

	resp, err := fx.service.CreateBooking(ctx, validCashRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, 65.0, resp.TotalPrice)
	assert.Equal(t, "EUR", resp.Currency)
	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.Equal(t, "Airport → City Center", resp.RouteTitle)
	assert.Equal(t, 1, fx.bookings.count())
}

func TestCreateBookingReturnTrip(t *testing.T) {
	fx := newBookingFixture(t)

	req := validCashRequest()
	req.VehicleTypeID = "vclass"
	req.TripType = "return"
	req.ReturnDate = "2026-09-20"
	req.ReturnTime = "09:00"
	req.ReturnTimePeriod = "day"

	resp, err := fx.service.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 260.0, resp.TotalPrice)
	assert.Equal(t, "2026-09-20", resp.ReturnDate)
}

func TestCreateBookingReturnTripMissingReturnFields(t *testing.T) {
	fx := newBookingFixture(t)

	req := validCashRequest()
	req.TripType = "return"

	_, err := fx.service.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Equal(t, 0, fx.bookings.count())
}

func TestCreateBookingUnknownRoute(t *testing.T) {
	fx := newBookingFixture(t)

	req := validCashRequest()
	req.RouteID = "no-such-route"

	_, err := fx.service.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid route")
	// The error lists the bookable alternatives.
	assert.Contains(t, err.Error(), "airport-city-center")
	assert.Equal(t, 0, fx.bookings.count())
}

func TestCreateBookingInactiveRoute(t *testing.T) {
	fx := newBookingFixture(t)
	fx.route.Active = false

	_, err := fx.service.CreateBooking(context.Background(), validCashRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid route")
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*request.CreateBookingRequest)
	}{
		{"zero adults", func(r *request.CreateBookingRequest) { r.Adults = 0 }},
		{"missing name", func(r *request.CreateBookingRequest) { r.Name = "" }},
		{"missing phone", func(r *request.CreateBookingRequest) { r.Phone = "" }},
		{"bad email", func(r *request.CreateBookingRequest) { r.Email = "not-an-email" }},
		{"bad vehicle class", func(r *request.CreateBookingRequest) { r.VehicleTypeID = "limo" }},
		{"bad time period", func(r *request.CreateBookingRequest) { r.TimePeriod = "noon" }},
		{"bad date", func(r *request.CreateBookingRequest) { r.Date = "15/09/2026" }},
		{"bad baggage", func(r *request.CreateBookingRequest) { r.BaggageType = "trunk" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newBookingFixture(t)
			req := validCashRequest()
			tt.mutate(req)

			_, err := fx.service.CreateBooking(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, 0, fx.bookings.count())
		})
	}
}

func TestCreateBookingRejectsCardOnCashPath(t *testing.T) {
	fx := newBookingFixture(t)

	req := validCashRequest()
	req.PaymentMethod = "card"

	_, err := fx.service.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment redirect")
	assert.Equal(t, 0, fx.bookings.count())
}

func TestCreateCardBooking(t *testing.T) {
	fx := newBookingFixture(t)

	req := validCashRequest()
	req.PaymentMethod = "card"

	checkout, err := fx.service.CreateCardBooking(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "65.00", checkout.Amount)
	assert.Equal(t, "EUR", checkout.Currency)
	assert.NotEmpty(t, checkout.Signature)

	// The booking is parked until the gateway reports back.
	require.Equal(t, 1, fx.bookings.count())
	booking, _ := fx.bookings.FindByOrderID(context.Background(), checkout.OrderID)
	require.NotNil(t, booking)
	assert.Equal(t, entity.BookingStatusPaymentPending, booking.Status)

	pay, _ := fx.payments.FindByBookingID(context.Background(), booking.ID)
	require.NotNil(t, pay)
	assert.Equal(t, entity.PaymentStatusPending, pay.Status)
}

func TestCreateCardBookingRejectsCash(t *testing.T) {
	fx := newBookingFixture(t)

	_, err := fx.service.CreateCardBooking(context.Background(), validCashRequest())
	require.Error(t, err)
	assert.Equal(t, 0, fx.bookings.count())
}

func TestConfirmPayment(t *testing.T) {
	fx := newBookingFixture(t)
	ctx := context.Background()

	req := validCashRequest()
	req.PaymentMethod = "card"
	checkout, err := fx.service.CreateCardBooking(ctx, req)
	require.NoError(t, err)

	t.Run("paid confirms booking", func(t *testing.T) {
		token := signTestReturnToken(t, "test-secret", checkout.OrderID, "paid", "gw-1")

		resp, err := fx.service.ConfirmPayment(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)

		booking, _ := fx.bookings.FindByOrderID(ctx, checkout.OrderID)
		assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)

		pay, _ := fx.payments.FindByBookingID(ctx, booking.ID)
		assert.Equal(t, entity.PaymentStatusPaid, pay.Status)
		require.NotNil(t, pay.GatewayRef)
		assert.Equal(t, "gw-1", *pay.GatewayRef)
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		token := signTestReturnToken(t, "wrong-secret", checkout.OrderID, "paid", "")
		_, err := fx.service.ConfirmPayment(ctx, token)
		assert.Error(t, err)
	})
}

func TestConfirmPaymentFailure(t *testing.T) {
	fx := newBookingFixture(t)
	ctx := context.Background()

	req := validCashRequest()
	req.PaymentMethod = "card"
	checkout, err := fx.service.CreateCardBooking(ctx, req)
	require.NoError(t, err)

	token := signTestReturnToken(t, "test-secret", checkout.OrderID, "cancelled", "")

	resp, err := fx.service.ConfirmPayment(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, resp.Status)

	booking, _ := fx.bookings.FindByOrderID(ctx, checkout.OrderID)
	pay, _ := fx.payments.FindByBookingID(ctx, booking.ID)
	assert.Equal(t, entity.PaymentStatusFailed, pay.Status)
}

func TestConfirmPaymentReplayedReturn(t *testing.T) {
	fx := newBookingFixture(t)
	ctx := context.Background()

	req := validCashRequest()
	req.PaymentMethod = "card"
	checkout, err := fx.service.CreateCardBooking(ctx, req)
	require.NoError(t, err)

	paidToken := signTestReturnToken(t, "test-secret", checkout.OrderID, "paid", "gw-1")
	_, err = fx.service.ConfirmPayment(ctx, paidToken)
	require.NoError(t, err)

	t.Run("late cancel leaves paid booking alone", func(t *testing.T) {
		token := signTestReturnToken(t, "test-secret", checkout.OrderID, "cancelled", "")

		resp, err := fx.service.ConfirmPayment(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)

		booking, _ := fx.bookings.FindByOrderID(ctx, checkout.OrderID)
		assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)

		pay, _ := fx.payments.FindByBookingID(ctx, booking.ID)
		assert.Equal(t, entity.PaymentStatusPaid, pay.Status)
	})

	t.Run("repeated paid token changes nothing", func(t *testing.T) {
		resp, err := fx.service.ConfirmPayment(ctx, paidToken)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	})
}

func TestCreateCardBookingPaymentError(t *testing.T) {
	fx := newBookingFixture(t)
	fx.payments.createErr = errors.New("insert failed")

	req := validCashRequest()
	req.PaymentMethod = "card"

	_, err := fx.service.CreateCardBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create payment record")

	// The parked booking must not survive the failed payment insert.
	assert.Equal(t, 0, fx.bookings.count())
}

func TestAssignBooking(t *testing.T) {
	fx := newBookingFixture(t)
	ctx := context.Background()

	resp, err := fx.service.CreateBooking(ctx, validCashRequest())
	require.NoError(t, err)
	booking, _ := fx.bookings.FindByOrderID(ctx, resp.OrderID)

	driver := &entity.Driver{
		Base:   entity.Base{ID: uuid.New()},
		Name:   "Andreas",
		Phone:  "+35799000000",
		Active: true,
	}
	fx.drivers.drivers = append(fx.drivers.drivers, driver)

	err = fx.service.AssignBooking(ctx, booking.ID.String(), &request.AssignBookingRequest{
		DriverID: driver.ID.String(),
	})
	require.NoError(t, err)

	updated, _ := fx.bookings.FindByID(ctx, booking.ID)
	assert.Equal(t, entity.BookingStatusAssigned, updated.Status)
	require.NotNil(t, updated.DriverID)
	assert.Equal(t, driver.ID, *updated.DriverID)
}

func TestAssignBookingInactiveDriver(t *testing.T) {
	fx := newBookingFixture(t)
	ctx := context.Background()

	resp, err := fx.service.CreateBooking(ctx, validCashRequest())
	require.NoError(t, err)
	booking, _ := fx.bookings.FindByOrderID(ctx, resp.OrderID)

	driver := &entity.Driver{Base: entity.Base{ID: uuid.New()}, Name: "Costas", Active: false}
	fx.drivers.drivers = append(fx.drivers.drivers, driver)

	err = fx.service.AssignBooking(ctx, booking.ID.String(), &request.AssignBookingRequest{
		DriverID: driver.ID.String(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not active")
}

func TestCancelBookingTerminalStates(t *testing.T) {
	fx := newBookingFixture(t)
	ctx := context.Background()

	resp, err := fx.service.CreateBooking(ctx, validCashRequest())
	require.NoError(t, err)
	booking, _ := fx.bookings.FindByOrderID(ctx, resp.OrderID)

	require.NoError(t, fx.service.CancelBooking(ctx, booking.ID.String()))

	// A cancelled booking stays cancelled.
	err = fx.service.CancelBooking(ctx, booking.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot")
}

func TestDriverStatusTransitions(t *testing.T) {
	fx := newBookingFixture(t)
	ctx := context.Background()

	userID := uuid.New()
	driver := &entity.Driver{
		Base:   entity.Base{ID: uuid.New()},
		Name:   "Andreas",
		UserID: &userID,
		Active: true,
	}
	fx.drivers.drivers = append(fx.drivers.drivers, driver)

	resp, err := fx.service.CreateBooking(ctx, validCashRequest())
	require.NoError(t, err)
	booking, _ := fx.bookings.FindByOrderID(ctx, resp.OrderID)

	require.NoError(t, fx.service.AssignBooking(ctx, booking.ID.String(), &request.AssignBookingRequest{
		DriverID: driver.ID.String(),
	}))

	t.Run("cannot complete before starting", func(t *testing.T) {
		err := fx.service.UpdateDriverBookingStatus(ctx, userID.String(), booking.ID.String(), "completed")
		require.Error(t, err)
	})

	t.Run("assigned to on_route", func(t *testing.T) {
		err := fx.service.UpdateDriverBookingStatus(ctx, userID.String(), booking.ID.String(), "on_route")
		require.NoError(t, err)
	})

	t.Run("on_route to completed", func(t *testing.T) {
		err := fx.service.UpdateDriverBookingStatus(ctx, userID.String(), booking.ID.String(), "completed")
		require.NoError(t, err)

		updated, _ := fx.bookings.FindByID(ctx, booking.ID)
		assert.Equal(t, entity.BookingStatusCompleted, updated.Status)
	})

	t.Run("other driver rejected", func(t *testing.T) {
		otherUser := uuid.New()
		other := &entity.Driver{Base: entity.Base{ID: uuid.New()}, UserID: &otherUser, Active: true}
		fx.drivers.drivers = append(fx.drivers.drivers, other)

		err := fx.service.UpdateDriverBookingStatus(ctx, otherUser.String(), booking.ID.String(), "on_route")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unauthorized")
	})
}

func TestGetDriverBookings(t *testing.T) {
	fx := newBookingFixture(t)
	ctx := context.Background()

	userID := uuid.New()
	driver := &entity.Driver{Base: entity.Base{ID: uuid.New()}, UserID: &userID, Active: true}
	fx.drivers.drivers = append(fx.drivers.drivers, driver)

	resp, err := fx.service.CreateBooking(ctx, validCashRequest())
	require.NoError(t, err)
	booking, _ := fx.bookings.FindByOrderID(ctx, resp.OrderID)
	require.NoError(t, fx.service.AssignBooking(ctx, booking.ID.String(), &request.AssignBookingRequest{
		DriverID: driver.ID.String(),
	}))

	page, err := fx.service.GetDriverBookings(ctx, userID.String(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, resp.OrderID, page.Data[0].OrderID)

	t.Run("no driver profile", func(t *testing.T) {
		_, err := fx.service.GetDriverBookings(ctx, uuid.New().String(), &request.PaginatedRequest{Page: 1, PerPage: 10})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestGetBookingsStatusFilter(t *testing.T) {
	fx := newBookingFixture(t)
	ctx := context.Background()

	_, err := fx.service.CreateBooking(ctx, validCashRequest())
	require.NoError(t, err)

	pending := "pending"
	page, err := fx.service.GetBookings(ctx, &request.PaginatedRequest{Page: 1, PerPage: 10}, &pending)
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)

	completed := "completed"
	page, err = fx.service.GetBookings(ctx, &request.PaginatedRequest{Page: 1, PerPage: 10}, &completed)
	require.NoError(t, err)
	assert.Len(t, page.Data, 0)

	bogus := "teleporting"
	_, err = fx.service.GetBookings(ctx, &request.PaginatedRequest{Page: 1, PerPage: 10}, &bogus)
	require.Error(t, err)
}
