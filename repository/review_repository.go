package repository

import (
	"github.com/abira1/Cafe-Colombia01/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) FindAll() ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Order("id desc").Find(&reviews).Error
	return reviews, err
}

// FindVisible returns reviews the storefront may render: approved AND
// active. Pending or rejected reviews never appear here.
func (r *ReviewRepository) FindVisible() ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("status = ? AND active = ?", entity.ReviewApproved, true).
		Order("date desc").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var rv entity.Review
	if err := r.DB.First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) Create(rv *entity.Review) error {
	return r.DB.Create(rv).Error
}

func (r *ReviewRepository) UpdateStatus(id uint, status string) error {
	res := r.DB.Model(&entity.Review{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) Update(rv *entity.Review) error {
	return r.DB.Save(rv).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Review{}, id).Error
}

func (r *ReviewRepository) ReplaceAll(reviews []entity.Review) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Review{}).Error; err != nil {
			return err
		}
		if len(reviews) == 0 {
			return nil
		}
		return tx.Create(&reviews).Error
	})
}
