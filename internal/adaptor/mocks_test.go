package adaptor_test

import (
	"context"

	"skyyatra/internal/data/entity"
	"skyyatra/internal/dto/request"
	"skyyatra/internal/dto/response"
	"skyyatra/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type mockSearch struct{ mock.Mock }

func (m *mockSearch) Cities() []entity.City {
	return m.Called().Get(0).([]entity.City)
}

func (m *mockSearch) Search(ctx context.Context, criteria *entity.SearchCriteria) (*response.SearchResponse, error) {
	args := m.Called(ctx, criteria)
	res, _ := args.Get(0).(*response.SearchResponse)
	return res, args.Error(1)
}

func (m *mockSearch) CreateSession(ctx context.Context) (*response.SearchSessionResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*response.SearchSessionResponse)
	return res, args.Error(1)
}

func (m *mockSearch) GetSession(ctx context.Context, id string) (*response.SearchSessionResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*response.SearchSessionResponse)
	return res, args.Error(1)
}

func (m *mockSearch) Submit(ctx context.Context, id string, criteria entity.SearchCriteria) (*response.SearchSessionResponse, error) {
	args := m.Called(ctx, id, criteria)
	res, _ := args.Get(0).(*response.SearchSessionResponse)
	return res, args.Error(1)
}

func (m *mockSearch) Back(ctx context.Context, id string) (*response.SearchSessionResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*response.SearchSessionResponse)
	return res, args.Error(1)
}

type mockBooking struct{ mock.Mock }

func (m *mockBooking) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	args := m.Called(ctx, userID, req)
	res, _ := args.Get(0).(*response.BookingCreatedResponse)
	return res, args.Error(1)
}

type mockHistory struct{ mock.Mock }

func (m *mockHistory) GetConfirmation(ctx context.Context, reference string) (*response.ConfirmationResponse, error) {
	args := m.Called(ctx, reference)
	res, _ := args.Get(0).(*response.ConfirmationResponse)
	return res, args.Error(1)
}

func (m *mockHistory) UserBookings(ctx context.Context, userID string) ([]response.BookingHistoryItem, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).([]response.BookingHistoryItem)
	return res, args.Error(1)
}

func (m *mockHistory) AllBookings(ctx context.Context, filter *request.AdminBookingFilter) (*response.PaginatedResponse[response.BookingHistoryItem], error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).(*response.PaginatedResponse[response.BookingHistoryItem])
	return res, args.Error(1)
}

type mockPayment struct{ mock.Mock }

func (m *mockPayment) StartCheckout(ctx context.Context, userID string, req *request.CheckoutRequest) (*response.CheckoutResponse, error) {
	args := m.Called(ctx, userID, req)
	res, _ := args.Get(0).(*response.CheckoutResponse)
	return res, args.Error(1)
}

func (m *mockPayment) CheckoutStatus(ctx context.Context, userID, checkoutID string) (*response.CheckoutStatusResponse, error) {
	args := m.Called(ctx, userID, checkoutID)
	res, _ := args.Get(0).(*response.CheckoutStatusResponse)
	return res, args.Error(1)
}

func (m *mockPayment) ConfirmPayment(ctx context.Context, userID string, req *request.ConfirmPaymentRequest) (*response.ConfirmationResponse, error) {
	args := m.Called(ctx, userID, req)
	res, _ := args.Get(0).(*response.ConfirmationResponse)
	return res, args.Error(1)
}

type mockAdmin struct{ mock.Mock }

func (m *mockAdmin) Login(ctx context.Context, req *request.AdminLoginRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockAdmin) Authenticate(email, password string) bool {
	return m.Called(email, password).Bool(0)
}

func (m *mockAdmin) Dashboard(ctx context.Context, query string) (*response.DashboardResponse, error) {
	args := m.Called(ctx, query)
	res, _ := args.Get(0).(*response.DashboardResponse)
	return res, args.Error(1)
}

var (
	_ usecase.SearchService  = (*mockSearch)(nil)
	_ usecase.BookingService = (*mockBooking)(nil)
	_ usecase.HistoryService = (*mockHistory)(nil)
	_ usecase.PaymentService = (*mockPayment)(nil)
	_ usecase.AdminService   = (*mockAdmin)(nil)
)
