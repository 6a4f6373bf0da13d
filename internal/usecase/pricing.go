package usecase

import (
	"math"

	"skyyatra/internal/data/entity"
)

const taxRate = 0.10

// DerivePrice computes the fare for n passengers. Tax and total are rounded
// independently, so Total-BaseFare may differ from Tax by one unit.
func DerivePrice(price, passengers int) entity.PriceBreakdown {
	p := float64(price)
	n := float64(passengers)
	return entity.PriceBreakdown{
		BaseFare:       price * passengers,
		Tax:            int(math.Round(p * taxRate * n)),
		Total:          int(math.Round(p * (1 + taxRate) * n)),
		PassengerCount: passengers,
	}
}

// MinorUnits converts a major-unit amount (rupees) to the checkout's minor units (paise).
func MinorUnits(major int) int64 {
	return int64(major) * 100
}
