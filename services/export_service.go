package services

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"

	"github.com/xuri/excelize/v2"
)

// ExportService renders the admin data exports as .xlsx workbooks, one
// sheet per collection.
type ExportService struct {
	BookingRepo     *repository.BookingRepository
	ReservationRepo *repository.ReservationRepository
	EventRepo       *repository.EventRepository
	OrderRepo       *repository.OrderRepository
}

func NewExportService(br *repository.BookingRepository, rr *repository.ReservationRepository, er *repository.EventRepository, or *repository.OrderRepository) *ExportService {
	return &ExportService{BookingRepo: br, ReservationRepo: rr, EventRepo: er, OrderRepo: or}
}

func (s *ExportService) Reservations() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	reservations, err := s.ReservationRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if err := writeReservationSheet(f, "Sheet1", reservations); err != nil {
		return nil, err
	}
	return workbookBytes(f)
}

func (s *ExportService) Events() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	events, err := s.EventRepo.FindAll()
	if err != nil {
		return nil, err
	}
	bookings, err := s.BookingRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if err := writeEventSheet(f, "Sheet1", events); err != nil {
		return nil, err
	}
	if err := f.SetSheetName("Sheet1", "Events"); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet("Bookings"); err != nil {
		return nil, err
	}
	if err := writeBookingSheet(f, "Bookings", bookings); err != nil {
		return nil, err
	}
	return workbookBytes(f)
}

// All bundles every collection into one workbook.
func (s *ExportService) All() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	reservations, err := s.ReservationRepo.FindAll()
	if err != nil {
		return nil, err
	}
	events, err := s.EventRepo.FindAll()
	if err != nil {
		return nil, err
	}
	bookings, err := s.BookingRepo.FindAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.OrderRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if err := writeReservationSheet(f, "Sheet1", reservations); err != nil {
		return nil, err
	}
	if err := f.SetSheetName("Sheet1", "Reservations"); err != nil {
		return nil, err
	}
	for name, write := range map[string]func() error{
		"Events":   func() error { return writeEventSheet(f, "Events", events) },
		"Bookings": func() error { return writeBookingSheet(f, "Bookings", bookings) },
		"Orders":   func() error { return writeOrderSheet(f, "Orders", orders) },
	} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
		if err := write(); err != nil {
			return nil, err
		}
	}
	return workbookBytes(f)
}

func writeRow(f *excelize.File, sheet string, rowIdx int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeReservationSheet(f *excelize.File, sheet string, rows []entity.Reservation) error {
	header := []any{"Reservation ID", "Customer Name", "Email", "Phone", "Date", "Time", "Guests", "Table", "Special Requests", "Status"}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, r := range rows {
		special := r.SpecialRequests
		if special == "" {
			special = "-"
		}
		err := writeRow(f, sheet, i+2, []any{
			strconv.FormatUint(uint64(r.ID), 10), r.CustomerName, r.CustomerEmail, r.CustomerPhone,
			r.Date, r.Time, r.NumberOfGuests, r.TableNumber, special, r.Status,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeEventSheet(f *excelize.File, sheet string, rows []entity.Event) error {
	header := []any{"Event ID", "Title", "Date", "Time", "Location", "Capacity", "Price", "Active"}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, e := range rows {
		err := writeRow(f, sheet, i+2, []any{
			strconv.FormatUint(uint64(e.ID), 10), e.Title, e.Date, e.Time, e.Location, e.Capacity, e.Price, e.Active,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeBookingSheet(f *excelize.File, sheet string, rows []entity.Booking) error {
	header := []any{"Booking ID", "Event ID", "Customer Name", "Email", "Phone", "Tickets", "Total Amount", "Booking Date", "Status"}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, b := range rows {
		err := writeRow(f, sheet, i+2, []any{
			strconv.FormatUint(uint64(b.ID), 10), strconv.FormatUint(uint64(b.EventID), 10),
			b.CustomerName, b.CustomerEmail, b.CustomerPhone,
			b.NumberOfTickets, b.TotalAmount, b.BookingDate, b.Status,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeOrderSheet(f *excelize.File, sheet string, rows []entity.Order) error {
	header := []any{"Order Code", "Customer", "Email", "City", "Payment", "Subtotal", "Shipping", "Discount", "Total", "Status"}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, o := range rows {
		err := writeRow(f, sheet, i+2, []any{
			o.Code, fmt.Sprintf("%s %s", o.FirstName, o.LastName), o.Email, o.City,
			o.PaymentMethod, o.Subtotal, o.Shipping, o.Discount, o.Total, o.Status,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func workbookBytes(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
