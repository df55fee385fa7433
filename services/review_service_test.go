package services

import (
	"testing"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewFixture(t *testing.T) *ReviewService {
	db := newTestDB(t)
	return NewReviewService(repository.NewReviewRepository(db), newTestNotify(db))
}

func TestReviewCreateAlwaysStartsPending(t *testing.T) {
	svc := newReviewFixture(t)

	rv, err := svc.Create(&CreateReviewIn{
		Name:    "Maria Lopez",
		Content: "Best flat white in town.",
		Rating:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewPending, rv.Status)
	assert.True(t, rv.Active)
	assert.False(t, rv.PubliclyVisible())
}

func TestReviewVisibilityNeedsApprovalAndActive(t *testing.T) {
	svc := newReviewFixture(t)

	rv, err := svc.Create(&CreateReviewIn{Name: "A", Content: "ok", Rating: 4})
	require.NoError(t, err)

	public, err := svc.ListPublic()
	require.NoError(t, err)
	assert.Empty(t, public)

	_, err = svc.UpdateStatus(rv.ID, entity.ReviewApproved)
	require.NoError(t, err)

	public, err = svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, public, 1)

	// hiding an approved review pulls it from the storefront
	_, err = svc.SetActive(rv.ID, false)
	require.NoError(t, err)

	public, err = svc.ListPublic()
	require.NoError(t, err)
	assert.Empty(t, public)
}

func TestReviewRejectionHides(t *testing.T) {
	svc := newReviewFixture(t)

	rv, err := svc.Create(&CreateReviewIn{Name: "B", Content: "meh", Rating: 2})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(rv.ID, entity.ReviewApproved)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(rv.ID, entity.ReviewRejected)
	require.NoError(t, err)

	public, err := svc.ListPublic()
	require.NoError(t, err)
	assert.Empty(t, public)

	_, err = svc.UpdateStatus(rv.ID, "spam")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
