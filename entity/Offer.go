package entity

import (
	"gorm.io/gorm"
)

type Offer struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	Availability string `json:"availability"` // free text, e.g. "3 PM - 6 PM"
	ValidUntil   string `json:"validUntil"`   // YYYY-MM-DD
	Discount     int    `json:"discount"`     // percent, informational
	Picture      string `json:"image"`
	Active       bool   `json:"active" gorm:"default:true"`
}

// VisibleOn reports whether the offer should render publicly on the given
// date (YYYY-MM-DD). Expired-but-active offers must not display.
func (o *Offer) VisibleOn(today string) bool {
	return o.Active && o.ValidUntil >= today
}
