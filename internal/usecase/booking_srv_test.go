package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skyyatra/internal/data/entity"
	"skyyatra/internal/dto/request"
	"skyyatra/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBookingService(flights *fakeFlights, bookings *fakeBookings) BookingService {
	return NewBookingService(newTestRepository(flights, bookings), utils.SeededRandom(1), testConfig(), nopLog)
}

func TestCreateBookingOneRowPerPassenger(t *testing.T) {
	flights := &fakeFlights{rows: []*entity.Flight{flightRow(9, "SY909", intPtr(4500), time.Now())}}
	bookings := newFakeBookings()
	svc := newTestBookingService(flights, bookings)

	got, err := svc.CreateBooking(context.Background(), "user-1", &request.CreateBookingRequest{
		FlightID:   9,
		Passengers: []entity.Passenger{passenger("Asha"), passenger("Ravi"), passenger("Meera")},
	})
	require.NoError(t, err)

	require.Len(t, got.Bookings, 3)
	seats := map[int]bool{}
	for _, b := range got.Bookings {
		assert.Equal(t, int64(9), b.FlightID)
		assert.Equal(t, "user-1", *b.UserID)
		assert.GreaterOrEqual(t, b.SeatNumber, 1)
		assert.LessOrEqual(t, b.SeatNumber, 180)
		assert.False(t, seats[b.SeatNumber])
		seats[b.SeatNumber] = true
	}
	assert.Regexp(t, `^SY[0-9A-Z]{8}$`, got.BookingID)
}

func TestCreateBookingRequiresIdentity(t *testing.T) {
	flights := &fakeFlights{rows: []*entity.Flight{flightRow(9, "SY909", nil, time.Now())}}
	bookings := newFakeBookings()
	svc := newTestBookingService(flights, bookings)

	got, err := svc.CreateBooking(context.Background(), "", &request.CreateBookingRequest{
		FlightID:   9,
		Passengers: []entity.Passenger{passenger("Asha"), passenger("Ravi"), passenger("Meera")},
	})

	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Nil(t, got)
	assert.Empty(t, bookings.rows)
}

func TestCreateBookingErrors(t *testing.T) {
	full := newFakeBookings()
	full.lastSeat[9] = 179

	tests := []struct {
		name     string
		flights  *fakeFlights
		bookings *fakeBookings
		req      *request.CreateBookingRequest
		want     error
	}{
		{
			name:     "unknown flight",
			flights:  &fakeFlights{},
			bookings: newFakeBookings(),
			req:      &request.CreateBookingRequest{FlightID: 9, Passengers: []entity.Passenger{passenger("Asha")}},
			want:     ErrNotFound,
		},
		{
			name:     "lookup failure",
			flights:  &fakeFlights{err: errors.New("db down")},
			bookings: newFakeBookings(),
			req:      &request.CreateBookingRequest{FlightID: 9, Passengers: []entity.Passenger{passenger("Asha")}},
			want:     ErrLookupFailure,
		},
		{
			name:     "no passengers",
			flights:  &fakeFlights{rows: []*entity.Flight{flightRow(9, "SY909", nil, time.Now())}},
			bookings: newFakeBookings(),
			req:      &request.CreateBookingRequest{FlightID: 9},
			want:     ErrValidation,
		},
		{
			name:     "flight full",
			flights:  &fakeFlights{rows: []*entity.Flight{flightRow(9, "SY909", nil, time.Now())}},
			bookings: full,
			req:      &request.CreateBookingRequest{FlightID: 9, Passengers: []entity.Passenger{passenger("Asha"), passenger("Ravi")}},
			want:     ErrFlightFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestBookingService(tt.flights, tt.bookings)
			_, err := svc.CreateBooking(context.Background(), "user-1", tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
