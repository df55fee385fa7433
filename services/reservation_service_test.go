package services

import (
	"testing"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReservationFixture(t *testing.T) (*gorm.DB, *ReservationService) {
	db := newTestDB(t)
	svc := NewReservationService(repository.NewReservationRepository(db), newTestNotify(db))
	return db, svc
}

func validReservationIn() *CreateReservationIn {
	return &CreateReservationIn{
		CustomerName:   "Omar Rahman",
		CustomerEmail:  "omar@example.com",
		CustomerPhone:  "555-0202",
		Date:           "2026-09-10",
		Time:           "19:30",
		NumberOfGuests: 4,
	}
}

func TestReservationCreateStartsPending(t *testing.T) {
	_, svc := newReservationFixture(t)

	rv, err := svc.Create(validReservationIn())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, rv.Status)
	assert.True(t, rv.Active)
}

func TestReservationConfirmFlow(t *testing.T) {
	_, svc := newReservationFixture(t)

	rv, err := svc.Create(validReservationIn())
	require.NoError(t, err)

	got, err := svc.UpdateStatus(rv.ID, entity.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, got.Status)

	_, err = svc.UpdateStatus(rv.ID, "done")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCleanupPurgesOnlyCancelled(t *testing.T) {
	db, rsvSvc := newReservationFixture(t)
	bookingRepo := repository.NewBookingRepository(db)
	settings := NewSettingsService(
		repository.NewSettingsRepository(db),
		bookingRepo,
		repository.NewReservationRepository(db),
	)

	keep, err := rsvSvc.Create(validReservationIn())
	require.NoError(t, err)
	drop, err := rsvSvc.Create(validReservationIn())
	require.NoError(t, err)
	_, err = rsvSvc.UpdateStatus(drop.ID, entity.StatusCancelled)
	require.NoError(t, err)

	require.NoError(t, bookingRepo.Create(&entity.Booking{
		EventID: 1, CustomerName: "Drop Me", Status: entity.StatusCancelled, Active: true,
	}))

	res, err := settings.Cleanup()
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ReservationsRemoved)
	assert.Equal(t, int64(1), res.BookingsRemoved)

	remaining, err := rsvSvc.List("")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)

	// running it again finds nothing
	res, err = settings.Cleanup()
	require.NoError(t, err)
	assert.Zero(t, res.ReservationsRemoved)
	assert.Zero(t, res.BookingsRemoved)
}

func TestNotificationSettingsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	settings := NewSettingsService(
		repository.NewSettingsRepository(db),
		repository.NewBookingRepository(db),
		repository.NewReservationRepository(db),
	)

	cur, err := settings.GetNotifications()
	require.NoError(t, err)
	assert.True(t, cur.EmailNotifications)
	assert.True(t, cur.OrderUpdates)

	_, err = settings.UpdateNotifications(&NotificationIn{
		EmailNotifications: false,
		PushNotifications:  true,
	})
	require.NoError(t, err)

	cur, err = settings.GetNotifications()
	require.NoError(t, err)
	assert.False(t, cur.EmailNotifications)
	assert.True(t, cur.PushNotifications)
	assert.False(t, cur.OrderUpdates)
}
