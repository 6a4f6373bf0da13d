package usecase

import (
	"strings"

	"skyyatra/internal/data/entity"
)

var knownCities = []entity.City{
	{Code: "DEL", Name: "Delhi", Airport: "Indira Gandhi International"},
	{Code: "BOM", Name: "Mumbai", Airport: "Chhatrapati Shivaji Maharaj International"},
	{Code: "BLR", Name: "Bangalore", Airport: "Kempegowda International"},
	{Code: "MAA", Name: "Chennai", Airport: "Chennai International"},
	{Code: "CCU", Name: "Kolkata", Airport: "Netaji Subhash Chandra Bose International"},
	{Code: "HYD", Name: "Hyderabad", Airport: "Rajiv Gandhi International"},
	{Code: "AMD", Name: "Ahmedabad", Airport: "Sardar Vallabhbhai Patel International"},
	{Code: "COK", Name: "Kochi", Airport: "Cochin International"},
}

// KnownCities returns a copy of the city catalogue.
func KnownCities() []entity.City {
	out := make([]entity.City, len(knownCities))
	copy(out, knownCities)
	return out
}

func lookupCity(code string) (entity.City, bool) {
	for _, c := range knownCities {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return entity.City{}, false
}

// ResolveCityName maps a city code to its name. Unknown codes pass through as-is.
func ResolveCityName(code string) string {
	if c, ok := lookupCity(code); ok {
		return c.Name
	}
	return code
}

// CityCodeForName is the reverse of ResolveCityName for names stored on flight rows.
func CityCodeForName(name string) string {
	for _, c := range knownCities {
		if strings.EqualFold(c.Name, name) {
			return c.Code
		}
	}
	code := strings.ToUpper(strings.TrimSpace(name))
	if len(code) > 3 {
		code = code[:3]
	}
	return code
}
