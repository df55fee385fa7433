package entity

// Booking / reservation workflow.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Review moderation workflow.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// Order lifecycle.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Promotion kinds.
const (
	PromoPercent      = "percent"
	PromoFreeDelivery = "free_delivery"
	PromoAmount       = "amount"
)

func ValidWorkflowStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

func ValidReviewStatus(s string) bool {
	return s == ReviewPending || s == ReviewApproved || s == ReviewRejected
}
