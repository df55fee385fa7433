package entity

import (
	"gorm.io/gorm"
)

// Setting is a single-row record holding the admin notification toggles.
type Setting struct {
	gorm.Model
	EmailNotifications  bool `json:"emailNotifications" gorm:"default:true"`
	PushNotifications   bool `json:"pushNotifications" gorm:"default:true"`
	OrderUpdates        bool `json:"orderUpdates" gorm:"default:true"`
	ReviewNotifications bool `json:"reviewNotifications" gorm:"default:true"`
}
