package usecase

import (
	"fmt"

	"skyyatra/internal/data/entity"
	"skyyatra/pkg/utils"
)

type PassengerField string

const (
	FieldFirstName   PassengerField = "first_name"
	FieldLastName    PassengerField = "last_name"
	FieldEmail       PassengerField = "email"
	FieldPhone       PassengerField = "phone"
	FieldDateOfBirth PassengerField = "date_of_birth"
)

// PassengerForm is an immutable value. Every edit returns a new form backed by
// a new slice, so a holder of the previous form never observes the change.
type PassengerForm struct {
	passengers []entity.Passenger
}

// NewPassengerForm starts with one empty passenger record.
func NewPassengerForm() PassengerForm {
	return PassengerForm{passengers: []entity.Passenger{{}}}
}

// PassengerFormOf copies records into a form, e.g. from a request body.
func PassengerFormOf(records []entity.Passenger) PassengerForm {
	return PassengerForm{passengers: append([]entity.Passenger(nil), records...)}
}

func (f PassengerForm) Len() int { return len(f.passengers) }

// Passengers returns a copy of the records.
func (f PassengerForm) Passengers() []entity.Passenger {
	return append([]entity.Passenger(nil), f.passengers...)
}

// AddPassenger appends one empty record. There is no upper bound.
func (f PassengerForm) AddPassenger() PassengerForm {
	next := make([]entity.Passenger, len(f.passengers), len(f.passengers)+1)
	copy(next, f.passengers)
	return PassengerForm{passengers: append(next, entity.Passenger{})}
}

// UpdateField sets one field of one record and leaves the rest untouched.
func (f PassengerForm) UpdateField(index int, field PassengerField, value string) (PassengerForm, error) {
	if index < 0 || index >= len(f.passengers) {
		return f, fmt.Errorf("%w: passenger index %d out of range", ErrValidation, index)
	}

	next := make([]entity.Passenger, len(f.passengers))
	copy(next, f.passengers)

	p := next[index]
	switch field {
	case FieldFirstName:
		p.FirstName = value
	case FieldLastName:
		p.LastName = value
	case FieldEmail:
		p.Email = value
	case FieldPhone:
		p.Phone = value
	case FieldDateOfBirth:
		p.DateOfBirth = value
	default:
		return f, fmt.Errorf("%w: unknown passenger field %q", ErrValidation, field)
	}
	next[index] = p

	return PassengerForm{passengers: next}, nil
}

type passengerList struct {
	Passengers []entity.Passenger `json:"passengers" validate:"required,min=1,dive"`
}

// Validate enforces the required-field check on every record. The returned map
// is keyed like "passengers[0].email".
func (f PassengerForm) Validate() map[string]string {
	return utils.ValidateStruct(passengerList{Passengers: f.passengers})
}
