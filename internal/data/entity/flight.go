package entity

import "time"

// Flight is a row of the flights inventory table.
type Flight struct {
	ID            int64      `db:"id" json:"id"`
	FlightNumber  string     `db:"flight_number" json:"flight_number"`
	Origin        string     `db:"origin" json:"origin"`
	Destination   string     `db:"destination" json:"destination"`
	DepartureTime time.Time  `db:"departure_time" json:"departure_time"`
	ArrivalTime   time.Time  `db:"arrival_time" json:"arrival_time"`
	Price         *int       `db:"price" json:"price"`
	CreatedAt     *time.Time `db:"created_at" json:"created_at,omitempty"`
}
