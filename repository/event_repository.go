package repository

import (
	"github.com/abira1/Cafe-Colombia01/entity"
	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) FindAll() ([]entity.Event, error) {
	var events []entity.Event
	err := r.DB.Order("date").Find(&events).Error
	return events, err
}

// FindActive returns publicly displayed events, soonest first.
func (r *EventRepository) FindActive() ([]entity.Event, error) {
	var events []entity.Event
	err := r.DB.Where("active = ?", true).Order("date").Find(&events).Error
	return events, err
}

func (r *EventRepository) FindByID(id uint) (*entity.Event, error) {
	var event entity.Event
	if err := r.DB.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Create(event *entity.Event) error {
	return r.DB.Create(event).Error
}

func (r *EventRepository) Update(event *entity.Event) error {
	return r.DB.Save(event).Error
}

func (r *EventRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Event{}, id).Error
}

func (r *EventRepository) ReplaceAll(events []entity.Event) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Event{}).Error; err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}
		return tx.Create(&events).Error
	})
}
