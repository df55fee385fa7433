package services

import (
	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"
)

type ReservationService struct {
	Repo   *repository.ReservationRepository
	Notify *NotifyService
}

func NewReservationService(repo *repository.ReservationRepository, notify *NotifyService) *ReservationService {
	return &ReservationService{Repo: repo, Notify: notify}
}

type CreateReservationIn struct {
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerEmail   string `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	NumberOfGuests  int    `json:"numberOfGuests" binding:"required,min=1"`
	TableNumber     string `json:"tableNumber"`
	SpecialRequests string `json:"specialRequests"`
}

// Create files a table reservation; every submission starts pending and
// waits for an admin to confirm.
func (s *ReservationService) Create(in *CreateReservationIn) (*entity.Reservation, error) {
	rv := &entity.Reservation{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		Date:            in.Date,
		Time:            in.Time,
		NumberOfGuests:  in.NumberOfGuests,
		TableNumber:     in.TableNumber,
		SpecialRequests: in.SpecialRequests,
		Status:          entity.StatusPending,
		Active:          true,
	}
	if err := s.Repo.Create(rv); err != nil {
		return nil, err
	}

	s.Notify.ReservationCreated(rv)
	return rv, nil
}

func (s *ReservationService) List(status string) ([]entity.Reservation, error) {
	if status != "" {
		return s.Repo.FindByStatus(status)
	}
	return s.Repo.FindAll()
}

func (s *ReservationService) UpdateStatus(id uint, status string) (*entity.Reservation, error) {
	if !entity.ValidWorkflowStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}
