package entity

import (
	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Location    string `json:"location"`
	Picture     string `json:"image"`
	Capacity    int    `json:"capacity"`
	Price       int64  `json:"price"`
	Active      bool   `json:"active" gorm:"default:true"`

	Bookings []Booking `json:"-"`
}
