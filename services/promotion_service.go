package services

import (
	"errors"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"
)

type PromotionService struct {
	Repo *repository.PromotionRepository
}

func NewPromotionService(repo *repository.PromotionRepository) *PromotionService {
	return &PromotionService{Repo: repo}
}

func (s *PromotionService) List() ([]entity.Promotion, error) {
	return s.Repo.FindAll()
}

func (s *PromotionService) Create(p *entity.Promotion) error {
	if p.PromoCode == "" {
		return errors.New("promoCode is required")
	}
	switch p.PromoType {
	case entity.PromoPercent, entity.PromoFreeDelivery, entity.PromoAmount:
	default:
		return errors.New("unknown promoType")
	}
	if p.PromoType == entity.PromoPercent && (p.Value < 1 || p.Value > 100) {
		return errors.New("percent value must be in 1..100")
	}
	return s.Repo.Create(p)
}

func (s *PromotionService) Update(id uint, p *entity.Promotion) error {
	var existing entity.Promotion
	if err := s.Repo.DB.First(&existing, id).Error; err != nil {
		return err
	}
	return s.Repo.DB.Model(&existing).Updates(p).Error
}

func (s *PromotionService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
