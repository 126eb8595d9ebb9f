package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	BookingNumber   string     `json:"booking_number"`
	GuestID         uuid.UUID  `json:"guest_id"`
	CategoryID      uuid.UUID  `json:"category_id"`
	CategoryName    string     `json:"category_name"`
	RoomID          *uuid.UUID `json:"room_id,omitempty"`
	RoomNumber      *string    `json:"room_number,omitempty"`
	CheckIn         time.Time  `json:"check_in"`
	CheckOut        time.Time  `json:"check_out"`
	Occupancy       int        `json:"occupancy"`
	Status          string     `json:"status"`
	TotalPriceCents int64      `json:"total_price_cents"`
	FeedbackID      *uuid.UUID `json:"feedback_id,omitempty"`
	Version         int64      `json:"version"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ModificationView struct {
	ID           uuid.UUID `json:"id"`
	BookingID    uuid.UUID `json:"booking_id"`
	ModifiedAt   time.Time `json:"modified_at"`
	FieldChanged string    `json:"field_changed"`
	OldValue     string    `json:"old_value"`
	NewValue     string    `json:"new_value"`
	HandledBy    uuid.UUID `json:"handled_by"`
	Reason       *string   `json:"reason,omitempty"`
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListModifications(ctx context.Context, bookingID uuid.UUID) ([]*ModificationView, error)
	// ActiveBookingsForRoom derives a room's bookings; rooms hold no booking references.
	ActiveBookingsForRoom(ctx context.Context, roomID uuid.UUID) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindModifications(ctx context.Context, bookingID uuid.UUID) ([]*ModificationView, error)
	FindActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListModifications(ctx context.Context, bookingID uuid.UUID) ([]*ModificationView, error) {
	if _, err := q.store.FindByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return q.store.FindModifications(ctx, bookingID)
}

func (q *bookingQueriesImpl) ActiveBookingsForRoom(ctx context.Context, roomID uuid.UUID) ([]*BookingView, error) {
	return q.store.FindActiveByRoom(ctx, roomID)
}
