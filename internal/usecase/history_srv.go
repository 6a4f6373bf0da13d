package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skyyatra/internal/data/entity"
	"skyyatra/internal/data/repository"
	"skyyatra/internal/dto/request"
	"skyyatra/internal/dto/response"
	"skyyatra/pkg/utils"

	"go.uber.org/zap"
)

type HistoryService interface {
	// GetConfirmation returns ErrMissingBundle when nothing is stored under
	// the reference; callers send the user back to the entry page.
	GetConfirmation(ctx context.Context, reference string) (*response.ConfirmationResponse, error)
	UserBookings(ctx context.Context, userID string) ([]response.BookingHistoryItem, error)
	AllBookings(ctx context.Context, filter *request.AdminBookingFilter) (*response.PaginatedResponse[response.BookingHistoryItem], error)
}

type historyService struct {
	repo *repository.Repository
	loc  *time.Location
	now  func() time.Time
	log  *zap.Logger
}

func NewHistoryService(repo *repository.Repository, loc *time.Location, log *zap.Logger) HistoryService {
	if loc == nil {
		loc = time.Local
	}
	return &historyService{
		repo: repo,
		loc:  loc,
		now:  time.Now,
		log:  log.With(zap.String("service", "history")),
	}
}

func (s *historyService) GetConfirmation(ctx context.Context, reference string) (*response.ConfirmationResponse, error) {
	reference = strings.ToUpper(strings.TrimSpace(reference))
	if _, ok := utils.ParseBookingCode(reference); !ok {
		return nil, ErrMissingBundle
	}

	confirmation, err := s.repo.Confirmation.FindByReference(ctx, reference)
	if err != nil {
		s.log.Error("Failed to load confirmation", zap.Error(err), zap.String("reference", reference))
		return nil, fmt.Errorf("%w: %v", ErrLookupFailure, err)
	}
	if confirmation == nil {
		return nil, ErrMissingBundle
	}

	return confirmationView(confirmation), nil
}

// UserBookings lists the caller's bookings. Without an identity the list is
// empty rather than an error.
func (s *historyService) UserBookings(ctx context.Context, userID string) ([]response.BookingHistoryItem, error) {
	if userID == "" {
		return []response.BookingHistoryItem{}, nil
	}
	return listBookingHistory(ctx, s.repo.Booking, &userID, s.loc, s.now())
}

func (s *historyService) AllBookings(ctx context.Context, filter *request.AdminBookingFilter) (*response.PaginatedResponse[response.BookingHistoryItem], error) {
	if filter == nil {
		filter = &request.AdminBookingFilter{}
	}

	items, err := listBookingHistory(ctx, s.repo.Booking, nil, s.loc, s.now())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, err
	}

	items = filterBookingHistory(items, filter.Query)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit()
	offset := filter.Offset()
	if offset > len(items) {
		offset = len(items)
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}

	return response.NewPaginatedResponse(items[offset:end], page, limit, int64(len(items))), nil
}

// listBookingHistory joins bookings to flights and drops rows whose flight is gone.
// Items departing after now are flagged upcoming.
func listBookingHistory(ctx context.Context, bookings repository.BookingRepository, userID *string, loc *time.Location, now time.Time) ([]response.BookingHistoryItem, error) {
	rows, err := bookings.ListWithFlights(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailure, err)
	}

	items := make([]response.BookingHistoryItem, 0, len(rows))
	for _, row := range rows {
		if row.Flight == nil {
			continue
		}
		items = append(items, historyItem(row, loc, now))
	}
	return items, nil
}

func historyItem(row *entity.BookingWithFlight, loc *time.Location, now time.Time) response.BookingHistoryItem {
	price := DefaultFarePrice
	if row.Flight.Price != nil && *row.Flight.Price > 0 {
		price = *row.Flight.Price
	}

	item := response.BookingHistoryItem{
		ID:         row.ID,
		Reference:  utils.ReferenceFromRowID(row.ID).Numeric(),
		SeatNumber: row.SeatNumber,
		BookedAt:   row.CreatedAt,
		Amount:     price,
		Upcoming:   row.Flight.DepartureTime.After(now),
		Flight: response.FlightSummary{
			ID:            row.Flight.ID,
			FlightNumber:  row.Flight.FlightNumber,
			Origin:        row.Flight.Origin,
			Destination:   row.Flight.Destination,
			DepartureDate: row.Flight.DepartureTime.In(loc).Format("2006-01-02"),
			DepartureTime: row.Flight.DepartureTime.In(loc).Format("15:04"),
			ArrivalTime:   row.Flight.ArrivalTime.In(loc).Format("15:04"),
			Price:         price,
		},
	}
	if row.UserID != nil {
		item.UserID = *row.UserID
	}
	return item
}

// filterBookingHistory keeps items whose reference, flight number or route
// contains query, ignoring case.
func filterBookingHistory(items []response.BookingHistoryItem, query string) []response.BookingHistoryItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	filtered := make([]response.BookingHistoryItem, 0, len(items))
	for _, item := range items {
		haystack := strings.ToLower(strings.Join([]string{
			item.Reference,
			item.Flight.FlightNumber,
			item.Flight.Origin,
			item.Flight.Destination,
		}, " "))
		if strings.Contains(haystack, query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func confirmationView(c *entity.Confirmation) *response.ConfirmationResponse {
	names := make([]string, 0, len(c.Passengers))
	for _, p := range c.Passengers {
		names = append(names, p.FullName())
	}

	return &response.ConfirmationResponse{
		BookingID:  c.BookingID,
		Itinerary:  c.Itinerary,
		Passengers: names,
		Amount:     c.Amount,
		PaymentID:  c.PaymentID,
		Route:      routeLabel(c.Itinerary),
		Schedule:   c.Itinerary.Departure.Time + " - " + c.Itinerary.Arrival.Time,
		CreatedAt:  c.CreatedAt,
	}
}

func routeLabel(it entity.Itinerary) string {
	return it.Departure.CityCode + " → " + it.Arrival.CityCode
}
