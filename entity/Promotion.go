package entity

import (
	"time"

	"gorm.io/gorm"
)

type Promotion struct {
	gorm.Model
	PromoCode   string     `gorm:"size:50;uniqueIndex;not null" json:"promoCode"`
	PromoDetail string     `json:"promoDetail"`
	PromoType   string     `json:"promoType"` // percent | free_delivery | amount
	Value       int64      `json:"value"`     // percent points or flat amount
	MinOrder    int64      `json:"minOrder"`
	StartAt     *time.Time `json:"startAt,omitempty"`
	EndAt       *time.Time `json:"endAt,omitempty"`
	Active      bool       `json:"active" gorm:"default:true"`
}

// UsableAt checks the active flag and the optional validity window.
func (p *Promotion) UsableAt(now time.Time) bool {
	if !p.Active {
		return false
	}
	if p.StartAt != nil && now.Before(*p.StartAt) {
		return false
	}
	if p.EndAt != nil && now.After(*p.EndAt) {
		return false
	}
	return true
}
