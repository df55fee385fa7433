package repository

import (
	"github.com/abira1/Cafe-Colombia01/entity"
	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) FindAll() ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	err := r.DB.Order("id desc").Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepository) FindByStatus(status string) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	err := r.DB.Where("status = ?", status).Order("id desc").Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var rv entity.Reservation
	if err := r.DB.First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReservationRepository) Create(rv *entity.Reservation) error {
	return r.DB.Create(rv).Error
}

func (r *ReservationRepository) UpdateStatus(id uint, status string) error {
	res := r.DB.Model(&entity.Reservation{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReservationRepository) PurgeCancelled() (int64, error) {
	res := r.DB.Unscoped().Where("status = ?", entity.StatusCancelled).Delete(&entity.Reservation{})
	return res.RowsAffected, res.Error
}
