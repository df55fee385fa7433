package repository

import (
	"github.com/abira1/Cafe-Colombia01/entity"
	"gorm.io/gorm"
)

type GalleryRepository struct {
	DB *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

func (r *GalleryRepository) FindAll() ([]entity.GalleryItem, error) {
	var items []entity.GalleryItem
	err := r.DB.Order("id").Find(&items).Error
	return items, err
}

func (r *GalleryRepository) FindByID(id uint) (*entity.GalleryItem, error) {
	var g entity.GalleryItem
	if err := r.DB.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GalleryRepository) Create(g *entity.GalleryItem) error {
	return r.DB.Create(g).Error
}

func (r *GalleryRepository) Update(g *entity.GalleryItem) error {
	return r.DB.Save(g).Error
}

func (r *GalleryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.GalleryItem{}, id).Error
}

func (r *GalleryRepository) ReplaceAll(items []entity.GalleryItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.GalleryItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
