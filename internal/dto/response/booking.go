package response

import (
	"time"

	"skyyatra/internal/data/entity"
)

type BookingCreatedResponse struct {
	BookingID string            `json:"booking_id"`
	Bookings  []*entity.Booking `json:"bookings"`
}

type FlightSummary struct {
	ID            int64  `json:"id"`
	FlightNumber  string `json:"flight_number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Price         int    `json:"price"`
}

type BookingHistoryItem struct {
	ID         int64         `json:"id"`
	Reference  string        `json:"reference"`
	UserID     string        `json:"user_id,omitempty"`
	SeatNumber int           `json:"seat_number"`
	BookedAt   *time.Time    `json:"booked_at,omitempty"`
	Amount     int           `json:"amount"`
	Upcoming   bool          `json:"upcoming"`
	Flight     FlightSummary `json:"flight"`
}

type ConfirmationResponse struct {
	BookingID  string           `json:"booking_id"`
	Itinerary  entity.Itinerary `json:"flight"`
	Passengers []string         `json:"passengers"`
	Amount     int              `json:"amount"`
	PaymentID  string           `json:"payment_id"`
	Route      string           `json:"route"`
	Schedule   string           `json:"schedule"`
	CreatedAt  time.Time        `json:"created_at"`
}

type DashboardStats struct {
	TotalBookings int `json:"total_bookings"`
	ActiveUsers   int `json:"active_users"`
	Revenue       int `json:"revenue"`
	FlightsToday  int `json:"flights_today"`
}

type DashboardResponse struct {
	Stats          DashboardStats       `json:"stats"`
	RecentBookings []BookingHistoryItem `json:"recent_bookings"`
}
