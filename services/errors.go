package services

import "errors"

var (
	ErrInvalidCoupon      = errors.New("invalid coupon code")
	ErrMinOrderNotMet     = errors.New("order subtotal below coupon minimum")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrOutsideDelivery    = errors.New("delivery not available at this location")
	ErrCapacityExceeded   = errors.New("tickets exceed event capacity")
	ErrEventNotBookable   = errors.New("event is not open for booking")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
