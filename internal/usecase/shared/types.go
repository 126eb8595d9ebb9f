package shared

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"

	"github.com/google/uuid"
)

// Notifier delivers booking events to guests. Every call may fail; callers treat
// failures as best-effort.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, b *booking.Booking) error
	SendBookingModification(ctx context.Context, b *booking.Booking, batchAt time.Time) error
	SendBookingCancellation(ctx context.Context, b *booking.Booking, c *booking.Cancellation) error
}

var _ booking.OccupancyReader = (*TxOccupancy)(nil)

// AssignmentLock guards room assignment for one category across processes.
type AssignmentLock interface {
	Acquire(ctx context.Context, categoryID uuid.UUID) (release func(context.Context) error, err error)
}

type noopLock struct{}

func NewNoopLock() AssignmentLock {
	return noopLock{}
}

func (noopLock) Acquire(context.Context, uuid.UUID) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

// TxOccupancy adapts a transaction's repositories to the availability checker.
type TxOccupancy struct {
	tx   Tx
	lock bool
}

// NewTxOccupancy reads rooms plainly; NewLockingTxOccupancy row-locks them.
func NewTxOccupancy(tx Tx) *TxOccupancy {
	return &TxOccupancy{tx: tx}
}

func NewLockingTxOccupancy(tx Tx) *TxOccupancy {
	return &TxOccupancy{tx: tx, lock: true}
}

func (o *TxOccupancy) FindActiveRoomsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*room.Room, error) {
	if o.lock {
		return o.tx.Rooms().LockActiveByCategory(ctx, categoryID)
	}
	return o.tx.Rooms().FindActiveByCategory(ctx, categoryID)
}

func (o *TxOccupancy) ExistsOverlappingBooking(ctx context.Context, roomID uuid.UUID, period booking.StayPeriod, excludeStatus booking.Status, excludeBookingID *uuid.UUID) (bool, error) {
	return o.tx.Bookings().ExistsOverlapping(ctx, roomID, period, excludeStatus, excludeBookingID)
}
