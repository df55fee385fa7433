package services

import (
	"errors"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"
)

type EventService struct {
	Repo *repository.EventRepository
}

func NewEventService(repo *repository.EventRepository) *EventService {
	return &EventService{Repo: repo}
}

// ListPublic: active events only, sorted by date.
func (s *EventService) ListPublic() ([]entity.Event, error) {
	return s.Repo.FindActive()
}

func (s *EventService) ListAll() ([]entity.Event, error) {
	return s.Repo.FindAll()
}

func (s *EventService) Get(id uint) (*entity.Event, error) {
	return s.Repo.FindByID(id)
}

func (s *EventService) Create(e *entity.Event) error {
	if e.Title == "" {
		return errors.New("title is required")
	}
	if e.Capacity < 1 {
		return errors.New("capacity must be at least 1")
	}
	return s.Repo.Create(e)
}

func (s *EventService) Update(id uint, in *entity.Event) (*entity.Event, error) {
	e, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if in.Capacity < 1 {
		return nil, errors.New("capacity must be at least 1")
	}
	e.Title = in.Title
	e.Description = in.Description
	e.Date = in.Date
	e.Time = in.Time
	e.Location = in.Location
	e.Picture = in.Picture
	e.Capacity = in.Capacity
	e.Price = in.Price
	e.Active = in.Active
	if err := s.Repo.Update(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *EventService) Replace(events []entity.Event) error {
	return s.Repo.ReplaceAll(events)
}
