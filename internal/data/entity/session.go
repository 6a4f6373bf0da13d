package entity

import "time"

// SearchSession is one visitor's search page: the form or its results.
// Generation increases on every transition and tags in-flight lookups.
type SearchSession struct {
	ID          string          `json:"id"`
	State       string          `json:"state"`
	Generation  uint64          `json:"generation"`
	Loading     bool            `json:"loading"`
	Criteria    *SearchCriteria `json:"criteria,omitempty"`
	Source      string          `json:"source,omitempty"`
	Itineraries []Itinerary     `json:"itineraries,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BookingDraft carries the selected itinerary and the passenger records
// from the results page to payment.
type BookingDraft struct {
	ID         string      `json:"id"`
	Itinerary  Itinerary   `json:"itinerary"`
	Passengers []Passenger `json:"passengers"`
	TouchedAt  time.Time   `json:"touched_at"`
}
