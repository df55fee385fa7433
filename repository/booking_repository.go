package repository

import (
	"github.com/abira1/Cafe-Colombia01/entity"
	"gorm.io/gorm"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) FindAll() ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Order("id desc").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) FindByStatus(status string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Where("status = ?", status).Order("id desc").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) FindByID(id uint) (*entity.Booking, error) {
	var b entity.Booking
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Create(b *entity.Booking) error {
	return r.DB.Create(b).Error
}

func (r *BookingRepository) UpdateStatus(id uint, status string) error {
	res := r.DB.Model(&entity.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PurgeCancelled hard-deletes cancelled bookings; used only by the admin
// cleanup action.
func (r *BookingRepository) PurgeCancelled() (int64, error) {
	res := r.DB.Unscoped().Where("status = ?", entity.StatusCancelled).Delete(&entity.Booking{})
	return res.RowsAffected, res.Error
}
