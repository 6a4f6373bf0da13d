package response

import (
	"time"

	"skyyatra/internal/data/entity"
)

type CheckoutPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type CheckoutTheme struct {
	Color string `json:"color"`
}

// CheckoutOptions is handed verbatim to the hosted checkout widget.
type CheckoutOptions struct {
	Key         string          `json:"key"`
	Amount      int64           `json:"amount"`
	Currency    string          `json:"currency"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"`
	Prefill     CheckoutPrefill `json:"prefill"`
	Theme       CheckoutTheme   `json:"theme"`
}

type CheckoutResponse struct {
	CheckoutID string                `json:"checkout_id"`
	Status     entity.CheckoutStatus `json:"status"`
	Price      entity.PriceBreakdown `json:"price"`
	Options    CheckoutOptions       `json:"options"`
	BookingIDs []int64               `json:"booking_ids,omitempty"`
	ExpiresAt  time.Time             `json:"expires_at"`
}

type CheckoutStatusResponse struct {
	CheckoutID string                `json:"checkout_id"`
	Status     entity.CheckoutStatus `json:"status"`
	ExpiresAt  time.Time             `json:"expires_at"`
}
