package booking

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingGuest          = errs.Mark(errs.New("guest is required"), errs.ErrValidation)
	ErrMissingCategory       = errs.Mark(errs.New("room category is required"), errs.ErrValidation)
	ErrBookingCancelled      = errs.Mark(errs.New("booking is already cancelled"), errs.ErrValidation)
	ErrBookingNotPending     = errs.Mark(errs.New("only pending bookings can be confirmed"), errs.ErrValidation)
	ErrRoomAlreadyAssigned   = errs.Mark(errs.New("booking already has a room"), errs.ErrValidation)
	ErrOccupancyOverCapacity = errs.Mark(errs.New("occupancy exceeds category capacity"), errs.ErrValidation)
	ErrBookingNotFound       = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
)

type NewBookingParams struct {
	GuestID    uuid.UUID
	CategoryID uuid.UUID
	Period     StayPeriod
	Occupancy  int
	Extras     []Extra
	FeedbackID *uuid.UUID
}

// Booking is the reservation aggregate. Invoice and payments reference it by id.
type Booking struct {
	id         uuid.UUID
	number     string
	guestID    uuid.UUID
	categoryID uuid.UUID
	roomID     *uuid.UUID
	period     StayPeriod
	occupancy  int
	status     Status
	totalPrice money.Money
	extras     []Extra
	feedbackID *uuid.UUID
	version    int64
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(p NewBookingParams, number string, now time.Time) (*Booking, error) {
	if p.GuestID == uuid.Nil {
		return nil, ErrMissingGuest
	}
	if p.CategoryID == uuid.Nil {
		return nil, ErrMissingCategory
	}
	if p.Period.CheckIn().IsZero() {
		return nil, ErrMissingStayDates
	}
	occupancy := p.Occupancy
	if occupancy == 0 {
		occupancy = 1
	}
	if occupancy < 0 {
		return nil, ErrInvalidOccupancy
	}

	return &Booking{
		id:         uuid.New(),
		number:     number,
		guestID:    p.GuestID,
		categoryID: p.CategoryID,
		period:     p.Period,
		occupancy:  occupancy,
		status:     StatusPending,
		extras:     uniqueExtras(p.Extras),
		feedbackID: p.FeedbackID,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

type ReconstructParams struct {
	ID         uuid.UUID
	Number     string
	GuestID    uuid.UUID
	CategoryID uuid.UUID
	RoomID     *uuid.UUID
	Period     StayPeriod
	Occupancy  int
	Status     Status
	TotalPrice money.Money
	Extras     []Extra
	FeedbackID *uuid.UUID
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ReconstructBooking(p ReconstructParams) *Booking {
	return &Booking{
		id:         p.ID,
		number:     p.Number,
		guestID:    p.GuestID,
		categoryID: p.CategoryID,
		roomID:     p.RoomID,
		period:     p.Period,
		occupancy:  p.Occupancy,
		status:     p.Status,
		totalPrice: p.TotalPrice,
		extras:     uniqueExtras(p.Extras),
		feedbackID: p.FeedbackID,
		version:    p.Version,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
	}
}

// NewNumber builds a booking number like BK-20250101-1A2B3C4D5E6F.
func NewNumber(prefix string, now time.Time) string {
	var buf [6]byte
	if _, err := rand.Read(buf[:]); err != nil {
		id := uuid.New()
		copy(buf[:], id[:6])
	}
	return prefix + "-" + now.Format("20060102") + "-" + strings.ToUpper(hex.EncodeToString(buf[:]))
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) Number() string           { return b.number }
func (b *Booking) GuestID() uuid.UUID       { return b.guestID }
func (b *Booking) CategoryID() uuid.UUID    { return b.categoryID }
func (b *Booking) RoomID() *uuid.UUID       { return b.roomID }
func (b *Booking) Period() StayPeriod       { return b.period }
func (b *Booking) CheckIn() time.Time       { return b.period.CheckIn() }
func (b *Booking) CheckOut() time.Time      { return b.period.CheckOut() }
func (b *Booking) Occupancy() int           { return b.occupancy }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) TotalPrice() money.Money  { return b.totalPrice }
func (b *Booking) FeedbackID() *uuid.UUID   { return b.feedbackID }
func (b *Booking) Version() int64           { return b.version }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
func (b *Booking) IsActive() bool           { return b.status.IsActive() }
func (b *Booking) IsCancelled() bool        { return b.status == StatusCancelled }
func (b *Booking) Extras() []Extra          { return append([]Extra(nil), b.extras...) }
func (b *Booking) ExtraNames() []string     { return ExtraNames(b.extras) }
func (b *Booking) HasRoom() bool            { return b.roomID != nil }
func (b *Booking) SetVersion(version int64) { b.version = version }

// Snapshot captures the audited scalar values before any mutation.
func (b *Booking) Snapshot() Snapshot {
	return NewSnapshot(b.period.CheckIn(), b.period.CheckOut(), b.occupancy, b.totalPrice, b.ExtraNames())
}

func (b *Booking) AssignRoom(roomID uuid.UUID) error {
	if b.roomID != nil {
		return ErrRoomAlreadyAssigned
	}
	id := roomID
	b.roomID = &id
	return nil
}

func (b *Booking) ApplyPrice(total money.Money) {
	b.totalPrice = total
}

// Reschedule, ChangeOccupancy and ReplaceExtras are rejected on a cancelled booking.
func (b *Booking) Reschedule(period StayPeriod, now time.Time) error {
	if b.IsCancelled() {
		return ErrBookingCancelled
	}
	b.period = period
	b.updatedAt = now
	return nil
}

func (b *Booking) ChangeOccupancy(occupancy int, now time.Time) error {
	if b.IsCancelled() {
		return ErrBookingCancelled
	}
	if occupancy <= 0 {
		return ErrInvalidOccupancy
	}
	b.occupancy = occupancy
	b.updatedAt = now
	return nil
}

func (b *Booking) ReplaceExtras(extras []Extra, now time.Time) error {
	if b.IsCancelled() {
		return ErrBookingCancelled
	}
	b.extras = uniqueExtras(extras)
	b.updatedAt = now
	return nil
}

func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		if b.IsCancelled() {
			return ErrBookingCancelled
		}
		return ErrBookingNotPending
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

// Cancel leaves the total price untouched.
func (b *Booking) Cancel(now time.Time) error {
	if b.IsCancelled() {
		return ErrBookingCancelled
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}
