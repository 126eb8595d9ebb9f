package memory

import (
	"context"
	"sort"
	"time"

	"hotel-booking/internal/domain/billing"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	st *state
}

func (t *memTx) Bookings() shared.BookingRepository           { return bookingRepo{t.st} }
func (t *memTx) Rooms() shared.RoomRepository                 { return roomRepo{t.st} }
func (t *memTx) Categories() shared.CategoryRepository        { return categoryRepo{t.st} }
func (t *memTx) Extras() shared.ExtraRepository               { return extraRepo{t.st} }
func (t *memTx) Payments() shared.PaymentRepository           { return paymentRepo{t.st} }
func (t *memTx) Invoices() shared.InvoiceRepository           { return invoiceRepo{t.st} }
func (t *memTx) Modifications() shared.ModificationRepository { return modificationRepo{t.st} }
func (t *memTx) Cancellations() shared.CancellationRepository { return cancellationRepo{t.st} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t.st} }

type bookingRepo struct{ st *state }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.st.bookings[b.ID()]; ok {
		return infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
	}
	for _, existing := range r.st.bookings {
		if existing.Number() == b.Number() {
			return infra.WrapRepoErr("failed to create booking", errNumberTaken, infra.KindDuplicateKey)
		}
	}
	b.SetVersion(1)
	r.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	stored, ok := r.st.bookings[b.ID()]
	if !ok || stored.Version() != b.Version() {
		return infra.WrapRepoErr("booking was modified concurrently", nil, infra.KindConflict)
	}
	b.SetVersion(b.Version() + 1)
	r.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, notFound("booking not found", booking.ErrBookingNotFound)
	}
	return cloneBooking(b), nil
}

// FindByIDForUpdate needs no row lock; the store mutex already serializes writers.
func (r bookingRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.FindByID(ctx, id)
}

func (r bookingRepo) ExistsOverlapping(_ context.Context, roomID uuid.UUID, period booking.StayPeriod, excludeStatus booking.Status, excludeBookingID *uuid.UUID) (bool, error) {
	for _, b := range r.st.bookings {
		if b.RoomID() == nil || *b.RoomID() != roomID {
			continue
		}
		if b.Status() == excludeStatus {
			continue
		}
		if excludeBookingID != nil && b.ID() == *excludeBookingID {
			continue
		}
		if b.Period().Overlaps(period) {
			return true, nil
		}
	}
	return false, nil
}

func (r bookingRepo) FindActiveByRoom(_ context.Context, roomID uuid.UUID) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.st.bookings {
		if b.RoomID() != nil && *b.RoomID() == roomID && b.IsActive() {
			out = append(out, cloneBooking(b))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CheckIn().Equal(out[j].CheckIn()) {
			return out[i].Number() < out[j].Number()
		}
		return out[i].CheckIn().Before(out[j].CheckIn())
	})
	return out, nil
}

type roomRepo struct{ st *state }

func (r roomRepo) FindByID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	rm, ok := r.st.rooms[id]
	if !ok {
		return nil, notFound("room not found", room.ErrRoomNotFound)
	}
	return rm, nil
}

func (r roomRepo) FindActiveByCategory(_ context.Context, categoryID uuid.UUID) ([]*room.Room, error) {
	var out []*room.Room
	for _, rm := range r.st.rooms {
		if rm.CategoryID() == categoryID && rm.IsActive() {
			out = append(out, rm)
		}
	}
	booking.SortRooms(out)
	return out, nil
}

func (r roomRepo) LockActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]*room.Room, error) {
	return r.FindActiveByCategory(ctx, categoryID)
}

type categoryRepo struct{ st *state }

func (r categoryRepo) FindByID(_ context.Context, id uuid.UUID) (*room.Category, error) {
	c, ok := r.st.categories[id]
	if !ok {
		return nil, notFound("room category not found", room.ErrCategoryNotFound)
	}
	return c, nil
}

type extraRepo struct{ st *state }

func (r extraRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]booking.Extra, error) {
	out := make([]booking.Extra, 0, len(ids))
	for _, id := range ids {
		e, ok := r.st.extras[id]
		if !ok {
			return nil, errs.Wrapf(booking.ErrExtraNotFound, "extra %s", id)
		}
		out = append(out, e)
	}
	return out, nil
}

type paymentRepo struct{ st *state }

func (r paymentRepo) Create(_ context.Context, p *billing.Payment) error {
	r.st.payments[p.BookingID()] = append(r.st.payments[p.BookingID()], clonePayment(p))
	return nil
}

func (r paymentRepo) UpdateRefund(_ context.Context, p *billing.Payment) error {
	ps := r.st.payments[p.BookingID()]
	for i, existing := range ps {
		if existing.ID() == p.ID() {
			ps[i] = clonePayment(p)
			return nil
		}
	}
	return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
}

func (r paymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*billing.Payment, error) {
	ps := r.st.payments[bookingID]
	out := make([]*billing.Payment, len(ps))
	for i, p := range ps {
		out[i] = clonePayment(p)
	}
	return out, nil
}

type invoiceRepo struct{ st *state }

func (r invoiceRepo) Create(_ context.Context, inv *billing.Invoice) error {
	if _, ok := r.st.invoices[inv.BookingID()]; ok {
		return errs.Mark(infra.WrapRepoErr("invoice already issued", nil, infra.KindDuplicateKey), billing.ErrInvoiceExists)
	}
	r.st.invoices[inv.BookingID()] = cloneInvoice(inv)
	return nil
}

func (r invoiceRepo) UpdateStatus(_ context.Context, inv *billing.Invoice) error {
	if _, ok := r.st.invoices[inv.BookingID()]; !ok {
		return notFound("invoice not found", billing.ErrInvoiceNotFound)
	}
	r.st.invoices[inv.BookingID()] = cloneInvoice(inv)
	return nil
}

func (r invoiceRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*billing.Invoice, error) {
	inv, ok := r.st.invoices[bookingID]
	if !ok {
		return nil, notFound("invoice not found", billing.ErrInvoiceNotFound)
	}
	return cloneInvoice(inv), nil
}

type modificationRepo struct{ st *state }

func (r modificationRepo) Create(_ context.Context, m *booking.Modification) error {
	r.st.modifications[m.BookingID()] = append(r.st.modifications[m.BookingID()], m)
	return nil
}

func (r modificationRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*booking.Modification, error) {
	return append([]*booking.Modification(nil), r.st.modifications[bookingID]...), nil
}

type cancellationRepo struct{ st *state }

func (r cancellationRepo) Create(_ context.Context, c *booking.Cancellation) error {
	if _, ok := r.st.cancellations[c.BookingID()]; ok {
		return infra.WrapRepoErr("cancellation already recorded", nil, infra.KindDuplicateKey)
	}
	r.st.cancellations[c.BookingID()] = c
	return nil
}

func (r cancellationRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*booking.Cancellation, error) {
	c, ok := r.st.cancellations[bookingID]
	if !ok {
		return nil, infra.WrapRepoErr("cancellation not found", nil, infra.KindNotFound)
	}
	return c, nil
}

type notificationRepo struct{ st *state }

func (r notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.st.jobs = append(r.st.jobs, Job{
		Kind:    kind,
		Topic:   topic,
		Payload: append([]byte(nil), payload...),
		RunAt:   runAt,
	})
	return nil
}
