package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"skyyatra/internal/data/entity"
	"skyyatra/pkg/utils"
)

const (
	DefaultOrigin      = "DEL"
	DefaultDestination = "BOM"

	defaultOriginLabel      = "Delhi"
	defaultDestinationLabel = "Mumbai"
	defaultSlotTime         = "18:00"
)

type carrier struct {
	name     string
	code     string
	logo     string
	aircraft string
}

var carrierRoster = []carrier{
	{name: "IndiGo", code: "6E", logo: "🔵", aircraft: "A320"},
	{name: "Air India", code: "AI", logo: "🇮🇳", aircraft: "Boeing 737"},
	{name: "SpiceJet", code: "SG", logo: "🌶️", aircraft: "Boeing 737-800"},
	{name: "Vistara", code: "UK", logo: "✈️", aircraft: "A320neo"},
}

var slotTimes = []string{"06:30", "08:45", "10:15", "12:30", "14:20", "16:45"}

var fullAmenities = []entity.Amenity{entity.AmenityWifi, entity.AmenityMeal, entity.AmenityEntertainment}

// FallbackGenerator synthesizes one itinerary per roster carrier when no
// real inventory matches a route.
type FallbackGenerator struct {
	rnd utils.Random
}

func NewFallbackGenerator(rnd utils.Random) *FallbackGenerator {
	if rnd == nil {
		rnd = utils.DefaultRandom()
	}
	return &FallbackGenerator{rnd: rnd}
}

// Generate returns exactly len(carrierRoster) itineraries for the route.
// Empty codes fall back to DEL/BOM.
func (g *FallbackGenerator) Generate(origin, destination string) []entity.Itinerary {
	if origin == "" {
		origin = DefaultOrigin
	}
	if destination == "" {
		destination = DefaultDestination
	}
	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)

	originLabel := fallbackLabel(origin, defaultOriginLabel)
	destinationLabel := fallbackLabel(destination, defaultDestinationLabel)

	itineraries := make([]entity.Itinerary, 0, len(carrierRoster))
	for i, c := range carrierRoster {
		departAt := slotAt(i)
		arriveAt := slotAt(i + 1)

		amenities := []entity.Amenity{entity.AmenityWifi}
		if i < 2 {
			amenities = append([]entity.Amenity(nil), fullAmenities...)
		}

		itineraries = append(itineraries, entity.Itinerary{
			ID:           int64(i + 1),
			AirlineName:  c.name,
			FlightNumber: fmt.Sprintf("%s %d", c.code, 2000+i*100+g.rnd.IntN(99)),
			LogoGlyph:    c.logo,
			Departure: entity.Endpoint{
				Time:     departAt,
				CityName: originLabel,
				CityCode: origin,
			},
			Arrival: entity.Endpoint{
				Time:     arriveAt,
				CityName: destinationLabel,
				CityCode: destination,
			},
			DurationLabel: clockDuration(departAt, arriveAt),
			StopsLabel:    "Non-stop",
			Price:         3500 + g.rnd.IntN(3000),
			Amenities:     amenities,
			AircraftLabel: c.aircraft,
			OnTimePercent: 75 + g.rnd.IntN(15),
			Synthetic:     true,
		})
	}

	return itineraries
}

// unknown codes render a fixed label, never the raw code
func fallbackLabel(code, label string) string {
	if c, ok := lookupCity(code); ok {
		return c.Name
	}
	return label
}

func slotAt(i int) string {
	if i < len(slotTimes) {
		return slotTimes[i]
	}
	return defaultSlotTime
}

// clockDuration formats the gap between two "HH:MM" times, wrapping past midnight.
func clockDuration(from, to string) string {
	start, ok1 := clockMinutes(from)
	end, ok2 := clockMinutes(to)
	if !ok1 || !ok2 {
		return ""
	}
	diff := end - start
	if diff < 0 {
		diff += 24 * 60
	}
	return formatMinutes(diff)
}

func clockMinutes(hhmm string) (int, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

func formatMinutes(total int) string {
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}
