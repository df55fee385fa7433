package entity

import (
	"gorm.io/gorm"
)

type Booking struct {
	gorm.Model
	EventID uint  `json:"eventId"`
	Event   Event `json:"-"` // preload only on detail/export

	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	NumberOfTickets int    `json:"numberOfTickets"`
	TotalAmount     int64  `json:"totalAmount"` // event price x tickets, fixed at creation
	BookingDate     string `json:"bookingDate"` // YYYY-MM-DD
	Status          string `json:"status" gorm:"default:pending"`
	Active          bool   `json:"active" gorm:"default:true"`
}
