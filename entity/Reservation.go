package entity

import (
	"gorm.io/gorm"
)

type Reservation struct {
	gorm.Model
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM
	NumberOfGuests  int    `json:"numberOfGuests"`
	TableNumber     string `json:"tableNumber"`
	SpecialRequests string `json:"specialRequests"`
	Status          string `json:"status" gorm:"default:pending"`
	Active          bool   `json:"active" gorm:"default:true"`
}
