package repository

import (
	"time"

	"github.com/abira1/Cafe-Colombia01/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Order("id desc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByCode(code string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Where("code = ?", code).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard flips status only when the row is still in `from`,
// reporting how many rows moved. Zero means the transition lost a race or
// was illegal.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) CountSince(t time.Time) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Where("created_at >= ?", t).Count(&n).Error
	return n, err
}

func (r *OrderRepository) RevenueSince(t time.Time) (int64, error) {
	var total int64
	err := r.DB.Model(&entity.Order{}).
		Where("created_at >= ? AND status <> ?", t, entity.OrderCancelled).
		Select("COALESCE(SUM(total), 0)").Scan(&total).Error
	return total, err
}
