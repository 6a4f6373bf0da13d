package usecase

import (
	"context"
	"fmt"
	"time"

	"skyyatra/internal/data/repository"
	"skyyatra/internal/dto/request"
	"skyyatra/internal/dto/response"
	"skyyatra/pkg/utils"

	"go.uber.org/zap"
)

const recentBookingsLimit = 5

type AdminService interface {
	// Login checks the single configured credential pair. No token is issued.
	Login(ctx context.Context, req *request.AdminLoginRequest) error
	Authenticate(email, password string) bool
	Dashboard(ctx context.Context, query string) (*response.DashboardResponse, error)
}

type adminService struct {
	repo         *repository.Repository
	email        string
	passwordHash string
	loc          *time.Location
	log          *zap.Logger
	now          func() time.Time
}

// NewAdminService hashes the configured password once so the plain value is
// not kept around.
func NewAdminService(repo *repository.Repository, config *utils.Config, loc *time.Location, log *zap.Logger) (AdminService, error) {
	hash, err := utils.HashPassword(config.Admin.Password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	if loc == nil {
		loc = time.Local
	}
	return &adminService{
		repo:         repo,
		email:        config.Admin.Email,
		passwordHash: hash,
		loc:          loc,
		log:          log.With(zap.String("service", "admin")),
		now:          time.Now,
	}, nil
}

func (s *adminService) Login(_ context.Context, req *request.AdminLoginRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newValidationError(errs)
	}
	if !s.Authenticate(req.Email, req.Password) {
		s.log.Warn("Admin login rejected", zap.String("email", req.Email))
		return ErrInvalidCredentials
	}
	s.log.Info("Admin logged in", zap.String("email", req.Email))
	return nil
}

func (s *adminService) Authenticate(email, password string) bool {
	return email == s.email && utils.CheckPasswordHash(password, s.passwordHash)
}

func (s *adminService) Dashboard(ctx context.Context, query string) (*response.DashboardResponse, error) {
	items, err := listBookingHistory(ctx, s.repo.Booking, nil, s.loc, s.now())
	if err != nil {
		s.log.Error("Failed to load dashboard bookings", zap.Error(err))
		return nil, err
	}

	today := s.now().In(s.loc).Format("2006-01-02")
	users := make(map[string]struct{})
	flightsToday := make(map[int64]struct{})
	stats := response.DashboardStats{TotalBookings: len(items)}

	for _, item := range items {
		if item.UserID != "" {
			users[item.UserID] = struct{}{}
		}
		if item.Flight.DepartureDate == today {
			flightsToday[item.Flight.ID] = struct{}{}
		}
		stats.Revenue += DerivePrice(item.Amount, 1).Total
	}
	stats.ActiveUsers = len(users)
	stats.FlightsToday = len(flightsToday)

	recent := filterBookingHistory(items, query)
	if len(recent) > recentBookingsLimit {
		recent = recent[:recentBookingsLimit]
	}

	return &response.DashboardResponse{
		Stats:          stats,
		RecentBookings: recent,
	}, nil
}
