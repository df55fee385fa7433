package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReviewPubliclyVisible(t *testing.T) {
	tests := []struct {
		name   string
		review Review
		want   bool
	}{
		{"approvedActive", Review{Status: ReviewApproved, Active: true}, true},
		{"approvedHidden", Review{Status: ReviewApproved, Active: false}, false},
		{"pending", Review{Status: ReviewPending, Active: true}, false},
		{"rejected", Review{Status: ReviewRejected, Active: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.review.PubliclyVisible())
		})
	}
}

func TestOfferVisibleOn(t *testing.T) {
	offer := Offer{ValidUntil: "2026-08-27", Active: true}

	assert.True(t, offer.VisibleOn("2026-08-26"))
	assert.True(t, offer.VisibleOn("2026-08-27")) // last day still shows
	assert.False(t, offer.VisibleOn("2026-08-28"))

	offer.Active = false
	assert.False(t, offer.VisibleOn("2026-08-26"))
}

func TestPromotionUsableAt(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	open := Promotion{Active: true}
	assert.True(t, open.UsableAt(now))

	windowed := Promotion{Active: true, StartAt: &past, EndAt: &future}
	assert.True(t, windowed.UsableAt(now))

	notYet := Promotion{Active: true, StartAt: &future}
	assert.False(t, notYet.UsableAt(now))

	expired := Promotion{Active: true, EndAt: &past}
	assert.False(t, expired.UsableAt(now))

	disabled := Promotion{Active: false}
	assert.False(t, disabled.UsableAt(now))
}

func TestStatusValidators(t *testing.T) {
	assert.True(t, ValidWorkflowStatus(StatusPending))
	assert.True(t, ValidWorkflowStatus(StatusConfirmed))
	assert.True(t, ValidWorkflowStatus(StatusCancelled))
	assert.False(t, ValidWorkflowStatus("approved"))
	assert.False(t, ValidWorkflowStatus(""))

	assert.True(t, ValidReviewStatus(ReviewApproved))
	assert.True(t, ValidReviewStatus(ReviewRejected))
	assert.False(t, ValidReviewStatus("confirmed"))
}
