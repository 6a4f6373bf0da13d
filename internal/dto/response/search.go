package response

import (
	"time"

	"skyyatra/internal/data/entity"
)

type SearchResponse struct {
	Criteria    *entity.SearchCriteria `json:"criteria,omitempty"`
	Source      string                 `json:"source"`
	Count       int                    `json:"count"`
	Itineraries []entity.Itinerary     `json:"flights"`
}

type SearchSessionResponse struct {
	ID          string                 `json:"id"`
	State       string                 `json:"state"`
	Loading     bool                   `json:"loading"`
	Criteria    *entity.SearchCriteria `json:"criteria,omitempty"`
	Source      string                 `json:"source,omitempty"`
	Itineraries []entity.Itinerary     `json:"flights"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type DraftResponse struct {
	ID         string                `json:"id"`
	Itinerary  entity.Itinerary      `json:"flight"`
	Passengers []entity.Passenger    `json:"passengers"`
	Price      entity.PriceBreakdown `json:"price"`
}

// PaymentBundle is what the payment page needs; it is the body of a checkout request.
type PaymentBundle struct {
	Itinerary  entity.Itinerary      `json:"flight"`
	Passengers []entity.Passenger    `json:"passengers"`
	Price      entity.PriceBreakdown `json:"price"`
}
