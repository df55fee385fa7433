package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"` // "hot drinks" | "cold drinks" | "food" | "desserts"
	Picture     string `json:"image"`
	Tags        string `json:"tags"` // comma separated, e.g. "popular,vegan"
	Active      bool   `json:"active" gorm:"default:true"`

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
