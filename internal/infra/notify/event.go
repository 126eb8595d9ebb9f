package notify

import (
	"time"

	"hotel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingModified  = "booking.modified"
	EventBookingCancelled = "booking.cancelled"
)

type CancellationInfo struct {
	Fee      string `json:"fee"`
	Refunded string `json:"refunded"`
	Reason   string `json:"reason"`
}

// BookingEvent is the message body for every booking notification.
type BookingEvent struct {
	ID            uuid.UUID         `json:"id"`
	Type          string            `json:"type"`
	OccurredAt    time.Time         `json:"occurred_at"`
	BookingID     uuid.UUID         `json:"booking_id"`
	BookingNumber string            `json:"booking_number"`
	GuestID       uuid.UUID         `json:"guest_id"`
	RoomID        *uuid.UUID        `json:"room_id,omitempty"`
	CheckIn       string            `json:"check_in"`
	CheckOut      string            `json:"check_out"`
	Occupancy     int               `json:"occupancy"`
	Status        string            `json:"status"`
	TotalPrice    string            `json:"total_price"`
	Extras        []string          `json:"extras"`
	Cancellation  *CancellationInfo `json:"cancellation,omitempty"`
}

func newBookingEvent(eventType string, b *booking.Booking, at time.Time) BookingEvent {
	extras := b.ExtraNames()
	if extras == nil {
		extras = []string{}
	}
	return BookingEvent{
		ID:            uuid.New(),
		Type:          eventType,
		OccurredAt:    at.UTC(),
		BookingID:     b.ID(),
		BookingNumber: b.Number(),
		GuestID:       b.GuestID(),
		RoomID:        b.RoomID(),
		CheckIn:       b.CheckIn().Format(booking.DateLayout),
		CheckOut:      b.CheckOut().Format(booking.DateLayout),
		Occupancy:     b.Occupancy(),
		Status:        b.Status().String(),
		TotalPrice:    b.TotalPrice().String(),
		Extras:        extras,
	}
}
