package entity

import "time"

type PriceBreakdown struct {
	BaseFare       int `json:"base_fare"`
	Tax            int `json:"tax"`
	Total          int `json:"total"`
	PassengerCount int `json:"passenger_count"`
}

type CheckoutStatus string

const (
	CheckoutPending   CheckoutStatus = "pending"
	CheckoutConfirmed CheckoutStatus = "confirmed"
	CheckoutExpired   CheckoutStatus = "expired"
)

// Checkout is a hosted-checkout invocation awaiting its success callback.
type Checkout struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	Itinerary  Itinerary      `json:"itinerary"`
	Passengers []Passenger    `json:"passengers"`
	Price      PriceBreakdown `json:"price"`
	BookingIDs []int64        `json:"booking_ids,omitempty"`
	Status     CheckoutStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	ExpiresAt  time.Time      `json:"expires_at"`
}

// PaymentOutcome is produced once by the payment collaborator.
type PaymentOutcome struct {
	PaymentID string `json:"payment_id"`
	Amount    int    `json:"amount"`
}

// Confirmation is the bundle the confirmation view renders.
type Confirmation struct {
	BookingID  string      `json:"booking_id"`
	Itinerary  Itinerary   `json:"flight"`
	Passengers []Passenger `json:"passengers"`
	Amount     int         `json:"amount"`
	PaymentID  string      `json:"payment_id"`
	UserID     string      `json:"user_id,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
