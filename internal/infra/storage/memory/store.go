// Package memory is a process-local storage driver. Each unit of work runs under one
// mutex against a staged copy of the state that is published only on success.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"hotel-booking/internal/domain/billing"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNumberTaken = errs.New("booking number already taken")

// Job is a queued notification as written through the outbox port.
type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type state struct {
	categories    map[uuid.UUID]*room.Category
	rooms         map[uuid.UUID]*room.Room
	extras        map[uuid.UUID]booking.Extra
	bookings      map[uuid.UUID]*booking.Booking
	payments      map[uuid.UUID][]*billing.Payment
	invoices      map[uuid.UUID]*billing.Invoice
	modifications map[uuid.UUID][]*booking.Modification
	cancellations map[uuid.UUID]*booking.Cancellation
	jobs          []Job
}

func newState() *state {
	return &state{
		categories:    make(map[uuid.UUID]*room.Category),
		rooms:         make(map[uuid.UUID]*room.Room),
		extras:        make(map[uuid.UUID]booking.Extra),
		bookings:      make(map[uuid.UUID]*booking.Booking),
		payments:      make(map[uuid.UUID][]*billing.Payment),
		invoices:      make(map[uuid.UUID]*billing.Invoice),
		modifications: make(map[uuid.UUID][]*booking.Modification),
		cancellations: make(map[uuid.UUID]*booking.Cancellation),
	}
}

// clone copies everything a transaction can mutate. Categories, rooms, extras,
// modifications and cancellations are never mutated after insert.
func (s *state) clone() *state {
	c := newState()
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.extras {
		c.extras[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = cloneBooking(v)
	}
	for k, v := range s.payments {
		ps := make([]*billing.Payment, len(v))
		for i, p := range v {
			ps[i] = clonePayment(p)
		}
		c.payments[k] = ps
	}
	for k, v := range s.invoices {
		c.invoices[k] = cloneInvoice(v)
	}
	for k, v := range s.modifications {
		c.modifications[k] = append([]*booking.Modification(nil), v...)
	}
	for k, v := range s.cancellations {
		c.cancellations[k] = v
	}
	c.jobs = append([]Job(nil), s.jobs...)
	return c
}

type Store struct {
	mu    sync.Mutex
	state *state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(ctx, &memTx{st: staged}); err != nil {
		return err
	}
	s.state = staged
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(ctx, &memTx{st: s.state.clone()})
}

func (s *Store) AddCategory(c *room.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.categories[c.ID()] = c
}

func (s *Store) AddRoom(r *room.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.rooms[r.ID()] = r
}

func (s *Store) AddExtra(e booking.Extra) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.extras[e.ID()] = e
}

// Bookings returns copies of every stored booking ordered by creation.
func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*booking.Booking, 0, len(s.state.bookings))
	for _, b := range s.state.bookings {
		out = append(out, cloneBooking(b))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].Number() < out[j].Number()
		}
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})
	return out
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Job(nil), s.state.jobs...)
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	var roomID *uuid.UUID
	if b.RoomID() != nil {
		id := *b.RoomID()
		roomID = &id
	}
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:         b.ID(),
		Number:     b.Number(),
		GuestID:    b.GuestID(),
		CategoryID: b.CategoryID(),
		RoomID:     roomID,
		Period:     b.Period(),
		Occupancy:  b.Occupancy(),
		Status:     b.Status(),
		TotalPrice: b.TotalPrice(),
		Extras:     b.Extras(),
		FeedbackID: b.FeedbackID(),
		Version:    b.Version(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	})
}

func clonePayment(p *billing.Payment) *billing.Payment {
	return billing.ReconstructPayment(p.ID(), p.BookingID(), p.Amount(), p.Refunded(), p.Status(), p.Method(), p.PaidAt())
}

func cloneInvoice(i *billing.Invoice) *billing.Invoice {
	return billing.ReconstructInvoice(i.ID(), i.BookingID(), i.Number(), i.Amount(), i.Refunded(), i.Status(), i.IssuedAt())
}

func notFound(msg string, ref error) error {
	return errs.Mark(infra.WrapRepoErr(msg, nil, infra.KindNotFound), ref)
}
