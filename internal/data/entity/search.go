package entity

type TripType string

const (
	TripOneWay    TripType = "oneway"
	TripRoundTrip TripType = "roundtrip"
	// TripMultiCity is accepted by the search form but has no multi-leg behaviour.
	TripMultiCity TripType = "multicity"
)

type FareClass string

const (
	FareEconomy        FareClass = "economy"
	FarePremiumEconomy FareClass = "premium_economy"
	FareBusiness       FareClass = "business"
	FareFirst          FareClass = "first"
)

// SearchCriteria is immutable once submitted.
type SearchCriteria struct {
	Origin         string    `json:"origin" validate:"omitempty,len=3"`
	Destination    string    `json:"destination" validate:"omitempty,len=3"`
	DepartDate     string    `json:"depart_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate     string    `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TripType       TripType  `json:"trip_type" validate:"required,oneof=oneway roundtrip multicity"`
	PassengerCount int       `json:"passengers" validate:"min=1,max=9"`
	FareClass      FareClass `json:"fare_class" validate:"required,oneof=economy premium_economy business first"`
}

// Complete reports whether both route ends are present.
func (c *SearchCriteria) Complete() bool {
	return c != nil && c.Origin != "" && c.Destination != ""
}

type City struct {
	Code    string `json:"code"`
	Name    string `json:"city"`
	Airport string `json:"airport"`
}
