package services

import (
	"time"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"
)

type BookingService struct {
	Repo      *repository.BookingRepository
	EventRepo *repository.EventRepository
	Notify    *NotifyService
}

func NewBookingService(repo *repository.BookingRepository, eventRepo *repository.EventRepository, notify *NotifyService) *BookingService {
	return &BookingService{Repo: repo, EventRepo: eventRepo, Notify: notify}
}

type CreateBookingIn struct {
	EventID         uint   `json:"eventId" binding:"required"`
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerEmail   string `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	NumberOfTickets int    `json:"numberOfTickets" binding:"required,min=1"`
}

// Create validates the event and ticket count, then prices the booking
// server-side: totalAmount is always event price x tickets at creation
// time. Tickets equal to capacity are allowed; capacity+1 is not.
func (s *BookingService) Create(in *CreateBookingIn) (*entity.Booking, error) {
	event, err := s.EventRepo.FindByID(in.EventID)
	if err != nil {
		return nil, err
	}
	if !event.Active {
		return nil, ErrEventNotBookable
	}
	if in.NumberOfTickets > event.Capacity {
		return nil, ErrCapacityExceeded
	}

	b := &entity.Booking{
		EventID:         event.ID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		NumberOfTickets: in.NumberOfTickets,
		TotalAmount:     event.Price * int64(in.NumberOfTickets),
		BookingDate:     time.Now().Format("2006-01-02"),
		Status:          entity.StatusPending,
		Active:          true,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	s.Notify.BookingCreated(b, event)
	return b, nil
}

func (s *BookingService) List(status string) ([]entity.Booking, error) {
	if status != "" {
		return s.Repo.FindByStatus(status)
	}
	return s.Repo.FindAll()
}

// UpdateStatus sets the workflow status. The set is validated but the
// operation is a plain idempotent write: confirming an already confirmed
// booking is a no-op, never a duplicate.
func (s *BookingService) UpdateStatus(id uint, status string) (*entity.Booking, error) {
	if !entity.ValidWorkflowStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}
