package entity

import (
	"gorm.io/gorm"
)

// Cart is the session-scoped pre-checkout basket. Guests are identified by
// an opaque session token, not a user account.
type Cart struct {
	gorm.Model
	SessionToken string `json:"sessionToken" gorm:"uniqueIndex;size:64"`
	CouponCode   string `json:"couponCode"` // applied promo code, empty = none

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
