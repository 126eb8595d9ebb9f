package shared

import (
	"context"
	"time"

	"hotel-booking/internal/domain/billing"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	Categories() CategoryRepository
	Extras() ExtraRepository
	Payments() PaymentRepository
	Invoices() InvoiceRepository
	Modifications() ModificationRepository
	Cancellations() CancellationRepository
	Notifications() NotificationRepository
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// Update fails with errs.ErrConcurrencyConflict when b carries a stale version.
	Update(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ExistsOverlapping(ctx context.Context, roomID uuid.UUID, period booking.StayPeriod, excludeStatus booking.Status, excludeBookingID *uuid.UUID) (bool, error)
	FindActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*booking.Booking, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	FindActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]*room.Room, error)
	// LockActiveByCategory row-locks the candidate rooms until the transaction ends.
	LockActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]*room.Room, error)
}

type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Category, error)
}

type ExtraRepository interface {
	// FindByIDs fails with booking.ErrExtraNotFound if any id is unknown.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]booking.Extra, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *billing.Payment) error
	UpdateRefund(ctx context.Context, p *billing.Payment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*billing.Payment, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *billing.Invoice) error
	UpdateStatus(ctx context.Context, inv *billing.Invoice) error
	// FindByBookingID fails with an errs.ErrNotFound error when no invoice was issued.
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*billing.Invoice, error)
}

type ModificationRepository interface {
	Create(ctx context.Context, m *booking.Modification) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*booking.Modification, error)
}

type CancellationRepository interface {
	Create(ctx context.Context, c *booking.Cancellation) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*booking.Cancellation, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
