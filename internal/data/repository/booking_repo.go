package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skyyatra/internal/data/entity"
	"skyyatra/pkg/database"

	"go.uber.org/zap"
)

// ErrSeatsExhausted is returned by CreateBatch when the flight has fewer
// free seats than requested. Nothing is written in that case.
var ErrSeatsExhausted = errors.New("seat capacity exhausted")

type BookingRepository interface {
	// CreateBatch writes count rows for flightID in one transaction. Seats
	// continue from the highest seat already booked on the flight, under a
	// per-flight advisory lock, so they never repeat.
	CreateBatch(ctx context.Context, userID string, flightID int64, count, capacity int) ([]*entity.Booking, error)
	// ListWithFlights returns bookings newest first, joined to their flight.
	// A nil userID lists every user's bookings.
	ListWithFlights(ctx context.Context, userID *string) ([]*entity.BookingWithFlight, error)
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

func (r *bookingRepository) CreateBatch(ctx context.Context, userID string, flightID int64, count, capacity int) ([]*entity.Booking, error) {
	if count <= 0 {
		return nil, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin booking transaction: %w", err)
	}

	// Concurrent batches on one flight queue behind this lock until commit.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, flightID); err != nil {
		_ = tx.Rollback(ctx)
		r.log.Error("Failed to lock flight seats", zap.Error(err), zap.Int64("flight_id", flightID))
		return nil, fmt.Errorf("lock seats on flight %d: %w", flightID, err)
	}

	var lastSeat int
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(seat_number), 0)
		FROM bookings
		WHERE flight_id = $1
	`, flightID).Scan(&lastSeat)
	if err != nil {
		_ = tx.Rollback(ctx)
		r.log.Error("Failed to read taken seats", zap.Error(err), zap.Int64("flight_id", flightID))
		return nil, fmt.Errorf("read taken seats on flight %d: %w", flightID, err)
	}

	if lastSeat+count > capacity {
		_ = tx.Rollback(ctx)
		r.log.Warn("Flight is full",
			zap.Int64("flight_id", flightID),
			zap.Int("requested", count),
			zap.Int("capacity", capacity),
		)
		return nil, ErrSeatsExhausted
	}

	firstSeat := lastSeat + 1
	args := []any{userID, flightID}
	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		args = append(args, firstSeat+i)
		values = append(values, fmt.Sprintf("($1, $2, $%d)", len(args)))
	}

	query := `
		INSERT INTO bookings (user_id, flight_id, seat_number)
		VALUES ` + strings.Join(values, ", ") + `
		RETURNING id, user_id, flight_id, seat_number, created_at
	`

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		_ = tx.Rollback(ctx)
		r.log.Error("Failed to insert bookings", zap.Error(err), zap.Int64("flight_id", flightID))
		return nil, fmt.Errorf("insert bookings for flight %d: %w", flightID, err)
	}

	bookings := make([]*entity.Booking, 0, count)
	for rows.Next() {
		var b entity.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.FlightID, &b.SeatNumber, &b.CreatedAt); err != nil {
			rows.Close()
			_ = tx.Rollback(ctx)
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit bookings", zap.Error(err), zap.Int64("flight_id", flightID))
		return nil, fmt.Errorf("commit bookings for flight %d: %w", flightID, err)
	}

	return bookings, nil
}

func (r *bookingRepository) ListWithFlights(ctx context.Context, userID *string) ([]*entity.BookingWithFlight, error) {
	query := `
		SELECT b.id, b.user_id, b.flight_id, b.seat_number, b.created_at,
		       f.id, f.flight_number, f.origin, f.destination, f.departure_time, f.arrival_time, f.price, f.created_at
		FROM bookings b
		LEFT JOIN flights f ON f.id = b.flight_id
		WHERE ($1::text IS NULL OR b.user_id = $1)
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var result []*entity.BookingWithFlight
	for rows.Next() {
		var (
			item flightJoin
			b    entity.BookingWithFlight
		)
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.FlightID, &b.SeatNumber, &b.CreatedAt,
			&item.ID, &item.FlightNumber, &item.Origin, &item.Destination,
			&item.DepartureTime, &item.ArrivalTime, &item.Price, &item.CreatedAt,
		); err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		b.Flight = item.flight()
		result = append(result, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return result, nil
}
