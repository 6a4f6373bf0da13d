package request

import "skyyatra/internal/data/entity"

type CreateBookingRequest struct {
	FlightID   int64              `json:"flight_id" validate:"required,gt=0"`
	Passengers []entity.Passenger `json:"passenger_details" validate:"required,min=1,dive"`
}

// CheckoutRequest carries the navigation bundle from the booking form to payment.
type CheckoutRequest struct {
	Itinerary  *entity.Itinerary  `json:"flight" validate:"required"`
	Passengers []entity.Passenger `json:"passengers" validate:"required,min=1,dive"`
}

type ConfirmPaymentRequest struct {
	CheckoutID string `json:"checkout_id" validate:"required,uuid"`
	PaymentID  string `json:"payment_id" validate:"required"`
}
