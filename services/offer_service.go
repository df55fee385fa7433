package services

import (
	"time"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"
)

type OfferService struct {
	Repo *repository.OfferRepository
}

func NewOfferService(repo *repository.OfferRepository) *OfferService {
	return &OfferService{Repo: repo}
}

// ListPublic: active offers that have not expired. An expired-but-active
// offer must not display.
func (s *OfferService) ListPublic() ([]entity.Offer, error) {
	today := time.Now().Format("2006-01-02")
	return s.Repo.FindVisible(today)
}

func (s *OfferService) ListAll() ([]entity.Offer, error) {
	return s.Repo.FindAll()
}

func (s *OfferService) Get(id uint) (*entity.Offer, error) {
	return s.Repo.FindByID(id)
}

func (s *OfferService) Create(o *entity.Offer) error {
	return s.Repo.Create(o)
}

func (s *OfferService) Update(id uint, in *entity.Offer) (*entity.Offer, error) {
	o, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	o.Title = in.Title
	o.Description = in.Description
	o.Icon = in.Icon
	o.Availability = in.Availability
	o.ValidUntil = in.ValidUntil
	o.Discount = in.Discount
	o.Picture = in.Picture
	o.Active = in.Active
	if err := s.Repo.Update(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OfferService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *OfferService) Replace(offers []entity.Offer) error {
	return s.Repo.ReplaceAll(offers)
}
