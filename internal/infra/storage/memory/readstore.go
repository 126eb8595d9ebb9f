package memory

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var _ queries.BookingReadStore = (*Store)(nil)

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.state.bookings[id]
	if !ok {
		return nil, notFound("booking view not found", booking.ErrBookingNotFound)
	}
	return s.view(b), nil
}

func (s *Store) FindModifications(_ context.Context, bookingID uuid.UUID) ([]*queries.ModificationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mods := s.state.modifications[bookingID]
	out := make([]*queries.ModificationView, len(mods))
	for i, m := range mods {
		out[i] = &queries.ModificationView{
			ID:           m.ID(),
			BookingID:    m.BookingID(),
			ModifiedAt:   m.ModifiedAt(),
			FieldChanged: m.Field(),
			OldValue:     m.OldValue(),
			NewValue:     m.NewValue(),
			HandledBy:    m.HandledBy(),
			Reason:       m.Reason(),
		}
	}
	return out, nil
}

func (s *Store) FindActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*queries.BookingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := bookingRepo{s.state}.FindActiveByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	out := make([]*queries.BookingView, len(bookings))
	for i, b := range bookings {
		out[i] = s.view(b)
	}
	return out, nil
}

func (s *Store) view(b *booking.Booking) *queries.BookingView {
	v := &queries.BookingView{
		ID:              b.ID(),
		BookingNumber:   b.Number(),
		GuestID:         b.GuestID(),
		CategoryID:      b.CategoryID(),
		RoomID:          b.RoomID(),
		CheckIn:         b.CheckIn(),
		CheckOut:        b.CheckOut(),
		Occupancy:       b.Occupancy(),
		Status:          b.Status().String(),
		TotalPriceCents: b.TotalPrice().Cents(),
		FeedbackID:      b.FeedbackID(),
		Version:         b.Version(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
	if c, ok := s.state.categories[b.CategoryID()]; ok {
		v.CategoryName = c.Name()
	}
	if b.RoomID() != nil {
		if rm, ok := s.state.rooms[*b.RoomID()]; ok {
			number := rm.Number()
			v.RoomNumber = &number
		}
	}
	return v
}
