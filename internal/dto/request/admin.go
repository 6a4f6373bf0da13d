package request

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminBookingFilter struct {
	Query string
	PaginatedRequest
}
