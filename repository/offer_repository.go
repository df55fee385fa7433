package repository

import (
	"github.com/abira1/Cafe-Colombia01/entity"
	"gorm.io/gorm"
)

type OfferRepository struct {
	DB *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{DB: db}
}

func (r *OfferRepository) FindAll() ([]entity.Offer, error) {
	var offers []entity.Offer
	err := r.DB.Order("valid_until").Find(&offers).Error
	return offers, err
}

// FindVisible: active AND not yet expired on the given date (YYYY-MM-DD).
// Date strings compare lexicographically.
func (r *OfferRepository) FindVisible(today string) ([]entity.Offer, error) {
	var offers []entity.Offer
	err := r.DB.Where("active = ? AND valid_until >= ?", true, today).
		Order("valid_until").Find(&offers).Error
	return offers, err
}

func (r *OfferRepository) FindByID(id uint) (*entity.Offer, error) {
	var o entity.Offer
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) Create(o *entity.Offer) error {
	return r.DB.Create(o).Error
}

func (r *OfferRepository) Update(o *entity.Offer) error {
	return r.DB.Save(o).Error
}

func (r *OfferRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Offer{}, id).Error
}

func (r *OfferRepository) ReplaceAll(offers []entity.Offer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Offer{}).Error; err != nil {
			return err
		}
		if len(offers) == 0 {
			return nil
		}
		return tx.Create(&offers).Error
	})
}
