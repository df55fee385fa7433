package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Name    string `json:"name"`
	Role    string `json:"role"` // e.g. "Regular Customer"
	Content string `json:"content"`
	Rating  int    `json:"rating"` // 1..5
	Picture string `json:"image"`
	Date    string `json:"date"` // YYYY-MM-DD, submission date
	Status  string `json:"status" gorm:"default:pending"`
	Active  bool   `json:"active" gorm:"default:true"`
}

// PubliclyVisible: approved by an admin AND still offered.
func (r *Review) PubliclyVisible() bool {
	return r.Status == ReviewApproved && r.Active
}
