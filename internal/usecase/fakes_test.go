package usecase

import (
	"context"
	"sync"
	"time"

	"skyyatra/internal/data/entity"
	"skyyatra/internal/data/repository"
	"skyyatra/pkg/messaging"
	"skyyatra/pkg/utils"

	"go.uber.org/zap"
)

// scriptedRandom replays vals in order, reduced modulo n.
type scriptedRandom struct {
	vals []int
	i    int
}

func (r *scriptedRandom) IntN(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

type fakeFlights struct {
	rows  []*entity.Flight
	err   error
	calls int

	// when set, Search blocks until release is closed
	started chan struct{}
	release chan struct{}
}

func (f *fakeFlights) Search(_ context.Context, _, _ string) ([]*entity.Flight, error) {
	f.calls++
	if f.started != nil {
		close(f.started)
		<-f.release
	}
	return f.rows, f.err
}

func (f *fakeFlights) FindByID(_ context.Context, id int64) (*entity.Flight, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, row := range f.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, nil
}

type fakeBookings struct {
	mu       sync.Mutex
	rows     []*entity.BookingWithFlight
	nextID   int64
	lastSeat map[int64]int
	listErr  error
}

func newFakeBookings() *fakeBookings {
	return &fakeBookings{lastSeat: map[int64]int{}}
}

func (f *fakeBookings) CreateBatch(_ context.Context, userID string, flightID int64, count, capacity int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.lastSeat[flightID]+count > capacity {
		return nil, repository.ErrSeatsExhausted
	}

	now := time.Now()
	out := make([]*entity.Booking, 0, count)
	for i := 0; i < count; i++ {
		f.nextID++
		f.lastSeat[flightID]++
		uid := userID
		b := &entity.Booking{ID: f.nextID, UserID: &uid, FlightID: flightID, SeatNumber: f.lastSeat[flightID], CreatedAt: &now}
		out = append(out, b)
		f.rows = append(f.rows, &entity.BookingWithFlight{Booking: *b})
	}
	return out, nil
}

func (f *fakeBookings) ListWithFlights(_ context.Context, userID *string) ([]*entity.BookingWithFlight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entity.BookingWithFlight
	for i := len(f.rows) - 1; i >= 0; i-- {
		row := f.rows[i]
		if userID != nil && (row.UserID == nil || *row.UserID != *userID) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []messaging.BookingConfirmedEvent
}

func (p *recordingPublisher) PublishBookingConfirmed(_ context.Context, event messaging.BookingConfirmedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func newTestRepository(flights repository.FlightRepository, bookings repository.BookingRepository) *repository.Repository {
	return &repository.Repository{
		Flight:       flights,
		Booking:      bookings,
		Checkout:     repository.NewMemoryCheckoutStore(),
		Confirmation: repository.NewMemoryConfirmationStore(),
		Sessions:     repository.NewMemorySessionStore(),
		Drafts:       repository.NewMemoryDraftStore(),
	}
}

func testConfig() *utils.Config {
	return &utils.Config{
		Admin: utils.AdminConfig{Email: "admin@skyyatra.com", Password: "admin123"},
		Payment: utils.PaymentConfig{
			KeyID:                  "rzp_test_key",
			Currency:               "INR",
			MerchantName:           "SkyYatra",
			ThemeColor:             "#2563eb",
			CheckoutTimeoutMinutes: 15,
		},
		Booking: utils.BookingConfig{SeatCapacity: 180, ConfirmationTTLHours: 24},
	}
}

func flightRow(id int64, number string, price *int, dep time.Time) *entity.Flight {
	return &entity.Flight{
		ID:            id,
		FlightNumber:  number,
		Origin:        "Delhi",
		Destination:   "Mumbai",
		DepartureTime: dep,
		ArrivalTime:   dep.Add(2*time.Hour + 15*time.Minute),
		Price:         price,
	}
}

func intPtr(v int) *int { return &v }

func passenger(first string) entity.Passenger {
	return entity.Passenger{
		FirstName:   first,
		LastName:    "Sharma",
		Email:       first + "@example.com",
		Phone:       "9876543210",
		DateOfBirth: "1990-01-01",
	}
}

var nopLog = zap.NewNop()
