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

const bookingColumns = `
	id, order_id, route_id, route_slug, vehicle_class, time_period,
	travel_date, travel_time, trip_type, return_date, return_time,
	return_time_period, flight_number, adults, children, baggage_type,
	name, phone, email, notes, payment_method, total_price, currency,
	status, driver_id, vehicle_id, created_at, updated_at
`

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int, status *entity.BookingStatus) ([]*entity.Booking, error)
	CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error)
	FindByDriverID(ctx context.Context, driverID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByDriverID(ctx context.Context, driverID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	AssignDriver(ctx context.Context, bookingID uuid.UUID, driverID, vehicleID *uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.OrderID,
		booking.RouteID,
		booking.RouteSlug,
		booking.VehicleClass,
		booking.TimePeriod,
		booking.TravelDate,
		booking.TravelTime,
		booking.TripType,
		booking.ReturnDate,
		booking.ReturnTime,
		booking.ReturnTimePeriod,
		booking.FlightNumber,
		booking.Adults,
		booking.Children,
		booking.BaggageType,
		booking.Name,
		booking.Phone,
		booking.Email,
		booking.Notes,
		booking.PaymentMethod,
		booking.TotalPrice,
		booking.Currency,
		booking.Status,
		booking.DriverID,
		booking.VehicleID,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
			zap.String("route_slug", booking.RouteSlug),
		)
		return fmt.Errorf("create booking %s: %w", booking.OrderID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id), id.String())
}

func (r *bookingRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE order_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, orderID), orderID)
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int, status *entity.BookingStatus) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($3::text IS NULL OR status = $3)
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, status)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE ($1::text IS NULL OR status = $1)`

	var count int64
	err := r.db.QueryRow(ctx, query, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) FindByDriverID(ctx context.Context, driverID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE driver_id = $1
		ORDER BY travel_date, travel_time
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, driverID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by driver ID",
			zap.Error(err),
			zap.String("driver_id", driverID.String()),
		)
		return nil, fmt.Errorf("find bookings by driver ID %s: %w", driverID.String(), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *bookingRepository) CountByDriverID(ctx context.Context, driverID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE driver_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, driverID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by driver ID",
			zap.Error(err),
			zap.String("driver_id", driverID.String()),
		)
		return 0, fmt.Errorf("count bookings by driver ID %s: %w", driverID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) AssignDriver(ctx context.Context, bookingID uuid.UUID, driverID, vehicleID *uuid.UUID) error {
	query := `
		UPDATE bookings
		SET driver_id = $2, vehicle_id = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, bookingID, driverID, vehicleID)
	if err != nil {
		r.log.Error("Failed to assign driver to booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("assign driver to booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) scanOne(row pgx.Row, key string) (*entity.Booking, error) {
	booking, err := scanBooking(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking",
			zap.Error(err),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("find booking %s: %w", key, err)
	}
	return booking, nil
}

func (r *bookingRepository) scanRows(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.OrderID,
		&booking.RouteID,
		&booking.RouteSlug,
		&booking.VehicleClass,
		&booking.TimePeriod,
		&booking.TravelDate,
		&booking.TravelTime,
		&booking.TripType,
		&booking.ReturnDate,
		&booking.ReturnTime,
		&booking.ReturnTimePeriod,
		&booking.FlightNumber,
		&booking.Adults,
		&booking.Children,
		&booking.BaggageType,
		&booking.Name,
		&booking.Phone,
		&booking.Email,
		&booking.Notes,
		&booking.PaymentMethod,
		&booking.TotalPrice,
		&booking.Currency,
		&booking.Status,
		&booking.DriverID,
		&booking.VehicleID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
