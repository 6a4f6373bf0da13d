package repository

import (
	"time"

	"skyyatra/internal/data/entity"
)

// flightJoin receives the nullable side of a LEFT JOIN on flights.
type flightJoin struct {
	ID            *int64
	FlightNumber  *string
	Origin        *string
	Destination   *string
	DepartureTime *time.Time
	ArrivalTime   *time.Time
	Price         *int
	CreatedAt     *time.Time
}

func (j flightJoin) flight() *entity.Flight {
	if j.ID == nil {
		return nil
	}
	f := &entity.Flight{
		ID:        *j.ID,
		Price:     j.Price,
		CreatedAt: j.CreatedAt,
	}
	if j.FlightNumber != nil {
		f.FlightNumber = *j.FlightNumber
	}
	if j.Origin != nil {
		f.Origin = *j.Origin
	}
	if j.Destination != nil {
		f.Destination = *j.Destination
	}
	if j.DepartureTime != nil {
		f.DepartureTime = *j.DepartureTime
	}
	if j.ArrivalTime != nil {
		f.ArrivalTime = *j.ArrivalTime
	}
	return f
}
