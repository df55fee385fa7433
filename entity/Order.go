package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Code string `gorm:"uniqueIndex;size:20" json:"code"` // e.g. ORD-1A2B3C4D

	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	DeliveryNotes string `json:"deliveryNotes"`
	PaymentMethod string `json:"paymentMethod"` // cash | card

	Subtotal   int64  `json:"subtotal"`
	Shipping   int64  `json:"shipping"`
	Discount   int64  `json:"discount"`
	Total      int64  `json:"total"`
	CouponCode string `json:"couponCode"`

	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	Status            string    `json:"status" gorm:"default:pending"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
