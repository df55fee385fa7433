package services

import (
	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"
)

type SettingsService struct {
	Repo            *repository.SettingsRepository
	BookingRepo     *repository.BookingRepository
	ReservationRepo *repository.ReservationRepository
}

func NewSettingsService(repo *repository.SettingsRepository, br *repository.BookingRepository, rr *repository.ReservationRepository) *SettingsService {
	return &SettingsService{Repo: repo, BookingRepo: br, ReservationRepo: rr}
}

func (s *SettingsService) GetNotifications() (*entity.Setting, error) {
	return s.Repo.Get()
}

type NotificationIn struct {
	EmailNotifications  bool `json:"emailNotifications"`
	PushNotifications   bool `json:"pushNotifications"`
	OrderUpdates        bool `json:"orderUpdates"`
	ReviewNotifications bool `json:"reviewNotifications"`
}

func (s *SettingsService) UpdateNotifications(in *NotificationIn) (*entity.Setting, error) {
	cur, err := s.Repo.Get()
	if err != nil {
		return nil, err
	}
	cur.EmailNotifications = in.EmailNotifications
	cur.PushNotifications = in.PushNotifications
	cur.OrderUpdates = in.OrderUpdates
	cur.ReviewNotifications = in.ReviewNotifications
	if err := s.Repo.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

type CleanupResult struct {
	BookingsRemoved     int64 `json:"bookingsRemoved"`
	ReservationsRemoved int64 `json:"reservationsRemoved"`
}

// Cleanup purges cancelled bookings and reservations. This is the only
// code path that drops cancelled records; normal persistence keeps them.
func (s *SettingsService) Cleanup() (*CleanupResult, error) {
	b, err := s.BookingRepo.PurgeCancelled()
	if err != nil {
		return nil, err
	}
	r, err := s.ReservationRepo.PurgeCancelled()
	if err != nil {
		return nil, err
	}
	return &CleanupResult{BookingsRemoved: b, ReservationsRemoved: r}, nil
}
