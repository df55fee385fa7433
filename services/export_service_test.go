package services

import (
	"bytes"
	"testing"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newExportFixture(t *testing.T) *ExportService {
	db := newTestDB(t)

	require.NoError(t, db.Create(&entity.Event{
		Title: "Latte Art Workshop", Date: "2026-09-12", Time: "17:00", Capacity: 15, Price: 800, Active: true,
	}).Error)
	require.NoError(t, db.Create(&entity.Booking{
		EventID: 1, CustomerName: "Jane Smith", CustomerEmail: "jane@example.com",
		NumberOfTickets: 2, TotalAmount: 1600, BookingDate: "2026-08-20", Status: entity.StatusConfirmed, Active: true,
	}).Error)
	require.NoError(t, db.Create(&entity.Reservation{
		CustomerName: "Omar Rahman", CustomerEmail: "omar@example.com", Date: "2026-09-10", Time: "19:30",
		NumberOfGuests: 4, Status: entity.StatusPending, Active: true,
	}).Error)

	return NewExportService(
		repository.NewBookingRepository(db),
		repository.NewReservationRepository(db),
		repository.NewEventRepository(db),
		repository.NewOrderRepository(db),
	)
}

func TestExportReservationsWorkbook(t *testing.T) {
	svc := newExportFixture(t)

	data, err := svc.Reservations()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + one reservation
	assert.Equal(t, "Customer Name", rows[0][1])
	assert.Equal(t, "Omar Rahman", rows[1][1])
}

func TestExportEventsWorkbook(t *testing.T) {
	svc := newExportFixture(t)

	data, err := svc.Events()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Events", "Bookings"}, f.GetSheetList())

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Jane Smith", rows[1][2])
}

func TestExportAllWorkbook(t *testing.T) {
	svc := newExportFixture(t)

	data, err := svc.All()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"Reservations", "Events", "Bookings", "Orders"},
		f.GetSheetList())
}
