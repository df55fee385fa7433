package repository

import (
	"strings"

	"github.com/abira1/Cafe-Colombia01/entity"
	"gorm.io/gorm"
)

type PromotionRepository struct {
	DB *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{DB: db}
}

func (r *PromotionRepository) FindAll() ([]entity.Promotion, error) {
	var promos []entity.Promotion
	err := r.DB.Order("id").Find(&promos).Error
	return promos, err
}

// FindByCode is case-insensitive; codes are stored lowercase.
func (r *PromotionRepository) FindByCode(code string) (*entity.Promotion, error) {
	var p entity.Promotion
	if err := r.DB.Where("promo_code = ?", strings.ToLower(strings.TrimSpace(code))).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepository) Create(p *entity.Promotion) error {
	p.PromoCode = strings.ToLower(strings.TrimSpace(p.PromoCode))
	return r.DB.Create(p).Error
}

func (r *PromotionRepository) Update(p *entity.Promotion) error {
	p.PromoCode = strings.ToLower(strings.TrimSpace(p.PromoCode))
	return r.DB.Save(p).Error
}

func (r *PromotionRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Promotion{}, id).Error
}
