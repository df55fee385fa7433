package services

import (
	"fmt"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/repository"
	"github.com/abira1/Cafe-Colombia01/ws"
)

// NotifyService routes back-office alerts: websocket frames for connected
// admin dashboards and optional Telegram messages. Every channel respects
// the persisted notification settings; failures never block the request
// that produced the event.
type NotifyService struct {
	Hub      *ws.NotifyHub
	Telegram *TelegramNotifier
	Settings *repository.SettingsRepository
}

func NewNotifyService(hub *ws.NotifyHub, tg *TelegramNotifier, settings *repository.SettingsRepository) *NotifyService {
	return &NotifyService{Hub: hub, Telegram: tg, Settings: settings}
}

func (n *NotifyService) settings() entity.Setting {
	s, err := n.Settings.Get()
	if err != nil {
		return entity.Setting{} // all channels off on read failure
	}
	return *s
}

func (n *NotifyService) push(kind string, payload any) {
	if n.Hub != nil && n.settings().PushNotifications {
		n.Hub.Publish(kind, payload)
	}
}

func (n *NotifyService) BookingCreated(b *entity.Booking, e *entity.Event) {
	n.push("booking", b)
	if n.settings().EmailNotifications {
		go n.Telegram.Send(fmt.Sprintf(
			"New booking: %s, %d ticket(s) for %q on %s (total %d)",
			b.CustomerName, b.NumberOfTickets, e.Title, e.Date, b.TotalAmount,
		))
	}
}

func (n *NotifyService) ReservationCreated(r *entity.Reservation) {
	n.push("reservation", r)
	if n.settings().EmailNotifications {
		go n.Telegram.Send(fmt.Sprintf(
			"New reservation: %s, %d guest(s) on %s at %s",
			r.CustomerName, r.NumberOfGuests, r.Date, r.Time,
		))
	}
}

func (n *NotifyService) ReviewSubmitted(r *entity.Review) {
	if !n.settings().ReviewNotifications {
		return
	}
	n.push("review", r)
	go n.Telegram.Send(fmt.Sprintf("New review from %s (%d/5) awaiting moderation", r.Name, r.Rating))
}

func (n *NotifyService) OrderPlaced(o *entity.Order) {
	if !n.settings().OrderUpdates {
		return
	}
	n.push("order", o)
	go n.Telegram.Send(fmt.Sprintf("New order %s: total %d (%s)", o.Code, o.Total, o.PaymentMethod))
}
