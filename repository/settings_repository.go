package repository

import (
	"errors"

	"github.com/abira1/Cafe-Colombia01/entity"
	"gorm.io/gorm"
)

type SettingsRepository struct{ DB *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns the singleton settings row, creating it with defaults if the
// seed has not run.
func (r *SettingsRepository) Get() (*entity.Setting, error) {
	var s entity.Setting
	err := r.DB.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = entity.Setting{
			EmailNotifications:  true,
			PushNotifications:   true,
			OrderUpdates:        true,
			ReviewNotifications: true,
		}
		if err := r.DB.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Update(s *entity.Setting) error {
	return r.DB.Save(s).Error
}
