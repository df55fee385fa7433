package services

import (
	"testing"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBookingFixture(t *testing.T) (*gorm.DB, *BookingService) {
	db := newTestDB(t)
	svc := NewBookingService(
		repository.NewBookingRepository(db),
		repository.NewEventRepository(db),
		newTestNotify(db),
	)

	events := []entity.Event{
		{Title: "Coffee Tasting", Date: "2026-09-15", Time: "18:00", Capacity: 20, Price: 500, Active: true},
		{Title: "Closed Night", Date: "2026-09-20", Time: "19:00", Capacity: 10, Price: 300, Active: false},
	}
	require.NoError(t, db.Create(&events).Error)
	return db, svc
}

func validBookingIn(eventID uint, tickets int) *CreateBookingIn {
	return &CreateBookingIn{
		EventID:         eventID,
		CustomerName:    "Jane Smith",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "555-0101",
		NumberOfTickets: tickets,
	}
}

func TestBookingCreatePricesServerSide(t *testing.T) {
	_, svc := newBookingFixture(t)

	b, err := svc.Create(validBookingIn(1, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(1500), b.TotalAmount)
	assert.Equal(t, entity.StatusPending, b.Status)
	assert.True(t, b.Active)
	assert.NotEmpty(t, b.BookingDate)
}

func TestBookingCreateCapacityBoundary(t *testing.T) {
	_, svc := newBookingFixture(t)

	// tickets equal to capacity are fine
	b, err := svc.Create(validBookingIn(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(10000), b.TotalAmount)

	// one over is not
	_, err = svc.Create(validBookingIn(1, 21))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestBookingCreateInactiveEvent(t *testing.T) {
	_, svc := newBookingFixture(t)

	_, err := svc.Create(validBookingIn(2, 1))
	assert.ErrorIs(t, err, ErrEventNotBookable)
}

func TestBookingCreateMissingEvent(t *testing.T) {
	_, svc := newBookingFixture(t)

	_, err := svc.Create(validBookingIn(99, 1))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookingUpdateStatus(t *testing.T) {
	_, svc := newBookingFixture(t)

	b, err := svc.Create(validBookingIn(1, 2))
	require.NoError(t, err)

	got, err := svc.UpdateStatus(b.ID, entity.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, got.Status)

	// setting the same status again is a quiet no-op
	got, err = svc.UpdateStatus(b.ID, entity.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, got.Status)

	// and moving back out of confirmed is allowed for the booking workflow
	got, err = svc.UpdateStatus(b.ID, entity.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, got.Status)
}

func TestBookingUpdateStatusValidation(t *testing.T) {
	_, svc := newBookingFixture(t)

	b, err := svc.Create(validBookingIn(1, 1))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(b.ID, "shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(999, entity.StatusConfirmed)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookingListByStatus(t *testing.T) {
	_, svc := newBookingFixture(t)

	b1, err := svc.Create(validBookingIn(1, 1))
	require.NoError(t, err)
	_, err = svc.Create(validBookingIn(1, 2))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(b1.ID, entity.StatusConfirmed)
	require.NoError(t, err)

	pending, err := svc.List(entity.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
