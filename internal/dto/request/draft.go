package request

import "skyyatra/internal/data/entity"

type CreateDraftRequest struct {
	Itinerary *entity.Itinerary `json:"flight" validate:"required"`
}

type UpdatePassengerRequest struct {
	Field string `json:"field" validate:"required,oneof=first_name last_name email phone date_of_birth"`
	Value string `json:"value"`
}
