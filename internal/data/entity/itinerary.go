package entity

type Amenity string

const (
	AmenityWifi          Amenity = "wifi"
	AmenityMeal          Amenity = "meal"
	AmenityEntertainment Amenity = "entertainment"
)

type Endpoint struct {
	Time     string `json:"time" validate:"required"`
	CityName string `json:"city" validate:"required"`
	CityCode string `json:"code" validate:"required"`
}

// Itinerary is a display-ready flight offering. Synthetic itineraries carry
// their roster position as ID and no Source.
type Itinerary struct {
	ID            int64     `json:"id"`
	AirlineName   string    `json:"airline" validate:"required"`
	FlightNumber  string    `json:"flight_number" validate:"required"`
	LogoGlyph     string    `json:"logo"`
	Departure     Endpoint  `json:"departure"`
	Arrival       Endpoint  `json:"arrival"`
	DurationLabel string    `json:"duration"`
	StopsLabel    string    `json:"stops"`
	Price         int       `json:"price" validate:"gt=0"`
	Amenities     []Amenity `json:"amenities"`
	AircraftLabel string    `json:"aircraft"`
	OnTimePercent int       `json:"on_time" validate:"gte=0,lte=100"`
	Synthetic     bool      `json:"synthetic"`
	Source        *Flight   `json:"source_record,omitempty"`
}

func (i Itinerary) HasAmenity(a Amenity) bool {
	for _, have := range i.Amenities {
		if have == a {
			return true
		}
	}
	return false
}
