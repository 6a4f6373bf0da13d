package usecase

import (
	"context"
	"time"

	"skyyatra/internal/data/entity"
	"skyyatra/internal/data/repository"

	"go.uber.org/zap"
)

// Profile applied to every inventory row; none of it is read from the row.
const (
	inventoryBrand    = "SkyYatra Air"
	inventoryLogo     = "✈️"
	inventoryAircraft = "A320"
	inventoryOnTime   = 85
	DefaultFarePrice  = 5000
)

var inventoryAmenities = []entity.Amenity{entity.AmenityWifi, entity.AmenityMeal}

type ItinerarySource string

const (
	SourceInventory ItinerarySource = "inventory"
	SourceFallback  ItinerarySource = "fallback"
)

// ItineraryNormalizer turns a search into display-ready itineraries from
// exactly one source: inventory rows when any match, synthetic otherwise.
type ItineraryNormalizer struct {
	flights  repository.FlightRepository
	fallback *FallbackGenerator
	loc      *time.Location
	log      *zap.Logger
}

func NewItineraryNormalizer(flights repository.FlightRepository, fallback *FallbackGenerator, loc *time.Location, log *zap.Logger) *ItineraryNormalizer {
	if loc == nil {
		loc = time.Local
	}
	return &ItineraryNormalizer{
		flights:  flights,
		fallback: fallback,
		loc:      loc,
		log:      log.With(zap.String("component", "itinerary_normalizer")),
	}
}

func (n *ItineraryNormalizer) Normalize(ctx context.Context, criteria *entity.SearchCriteria) ([]entity.Itinerary, ItinerarySource) {
	var origin, destination string
	if criteria != nil {
		origin, destination = criteria.Origin, criteria.Destination
	}

	if !criteria.Complete() {
		return n.fallback.Generate(origin, destination), SourceFallback
	}

	rows, err := n.flights.Search(ctx, ResolveCityName(origin), ResolveCityName(destination))
	if err != nil {
		n.log.Warn("Flight lookup failed, serving fallback itineraries",
			zap.Error(err),
			zap.String("origin", origin),
			zap.String("destination", destination),
		)
		return n.fallback.Generate(origin, destination), SourceFallback
	}

	if len(rows) == 0 {
		return n.fallback.Generate(origin, destination), SourceFallback
	}

	itineraries := make([]entity.Itinerary, 0, len(rows))
	for _, row := range rows {
		itineraries = append(itineraries, ItineraryFromFlight(row, n.loc))
	}
	return itineraries, SourceInventory
}

// ItineraryFromFlight maps one inventory row to an itinerary.
func ItineraryFromFlight(row *entity.Flight, loc *time.Location) entity.Itinerary {
	if loc == nil {
		loc = time.Local
	}

	// A missing or non-positive stored price would fail Itinerary validation.
	price := DefaultFarePrice
	if row.Price != nil && *row.Price > 0 {
		price = *row.Price
	}

	departure := row.DepartureTime.In(loc)
	arrival := row.ArrivalTime.In(loc)

	duration := ""
	if gap := arrival.Sub(departure); gap >= 0 {
		duration = formatMinutes(int(gap.Minutes()))
	}

	return entity.Itinerary{
		ID:           row.ID,
		AirlineName:  inventoryBrand,
		FlightNumber: row.FlightNumber,
		LogoGlyph:    inventoryLogo,
		Departure: entity.Endpoint{
			Time:     departure.Format("15:04"),
			CityName: row.Origin,
			CityCode: CityCodeForName(row.Origin),
		},
		Arrival: entity.Endpoint{
			Time:     arrival.Format("15:04"),
			CityName: row.Destination,
			CityCode: CityCodeForName(row.Destination),
		},
		DurationLabel: duration,
		StopsLabel:    "Non-stop",
		Price:         price,
		Amenities:     append([]entity.Amenity(nil), inventoryAmenities...),
		AircraftLabel: inventoryAircraft,
		OnTimePercent: inventoryOnTime,
		Source:        row,
	}
}
