package entity

import "time"

// Booking is one persisted seat assignment. A multi-passenger booking is
// several rows sharing a flight id.
type Booking struct {
	ID         int64      `db:"id" json:"id"`
	UserID     *string    `db:"user_id" json:"user_id"`
	FlightID   int64      `db:"flight_id" json:"flight_id"`
	SeatNumber int        `db:"seat_number" json:"seat_number"`
	CreatedAt  *time.Time `db:"created_at" json:"created_at"`
}

// BookingWithFlight is a booking row left-joined to its flight; Flight is nil
// when the referenced flight no longer exists.
type BookingWithFlight struct {
	Booking
	Flight *Flight
}
