package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/billing"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/patch"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestID    uuid.UUID
	CategoryID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Occupancy  int
	ExtraIDs   []uuid.UUID
	FeedbackID *uuid.UUID
}

// UpdateBookingRequest leaves a field unchanged when it is nil.
type UpdateBookingRequest struct {
	CheckIn   *time.Time
	CheckOut  *time.Time
	Occupancy *int
	ExtraIDs  *[]uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateBookingRequest, handledBy uuid.UUID, reason string) (*booking.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string, handledBy uuid.UUID) (*booking.Cancellation, error)
	Confirm(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	RecordPayment(ctx context.Context, bookingID uuid.UUID, amount money.Money, method string) (*billing.Payment, error)
	IssueInvoice(ctx context.Context, bookingID uuid.UUID) (*billing.Invoice, error)
	IsRoomAvailable(ctx context.Context, categoryID uuid.UUID, checkIn, checkOut time.Time, excludeBookingID *uuid.UUID) (bool, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	lock     shared.AssignmentLock
	clock    clock.Clock
	location *time.Location
	prefix   string
	logger   *slog.Logger

	prices  *booking.PriceCalculator
	policy  *booking.CancellationPolicy
	auditor *booking.Auditor
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	lock shared.AssignmentLock,
	clk clock.Clock,
	cfg config.BookingConfig,
	logger *slog.Logger,
) BookingCommands {
	if lock == nil {
		lock = shared.NewNoopLock()
	}
	prefix := cfg.NumberPrefix
	if prefix == "" {
		prefix = "BK"
	}
	return &bookingUseCaseImpl{
		uow:      uow,
		notifier: notifier,
		lock:     lock,
		clock:    clk,
		location: cfg.Location(),
		prefix:   prefix,
		logger:   logger,
		prices:   booking.NewPriceCalculator(),
		policy:   booking.NewCancellationPolicy(),
		auditor:  booking.NewAuditor(),
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error) {
	period, err := booking.NewStayPeriod(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if req.GuestID == uuid.Nil {
		return nil, booking.ErrMissingGuest
	}
	if req.CategoryID == uuid.Nil {
		return nil, booking.ErrMissingCategory
	}
	if req.Occupancy < 0 {
		return nil, booking.ErrInvalidOccupancy
	}

	release, err := uc.lock.Acquire(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	defer uc.releaseLock(ctx, release, req.CategoryID)

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		category, derr := tx.Categories().FindByID(ctx, req.CategoryID)
		if derr != nil {
			return derr
		}
		if derr = checkCapacity(category, req.Occupancy); derr != nil {
			return derr
		}
		extras, derr := uc.loadExtras(ctx, tx, req.ExtraIDs)
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		b, derr := booking.NewBooking(booking.NewBookingParams{
			GuestID:    req.GuestID,
			CategoryID: req.CategoryID,
			Period:     period,
			Occupancy:  req.Occupancy,
			Extras:     extras,
			FeedbackID: req.FeedbackID,
		}, booking.NewNumber(uc.prefix, now), now)
		if derr != nil {
			return derr
		}

		// Locking occupancy makes assign + insert atomic per category
		checker := booking.NewAvailabilityChecker(shared.NewLockingTxOccupancy(tx))
		assigned, derr := checker.AssignRoom(ctx, req.CategoryID, period)
		if derr != nil {
			return derr
		}
		if derr = b.AssignRoom(assigned.ID()); derr != nil {
			return derr
		}

		total, derr := uc.prices.Price(category, b)
		if derr != nil {
			return derr
		}
		b.ApplyPrice(total)

		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return derr
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, "booking_confirmation", created.ID(), func(ctx context.Context) error {
		return uc.notifier.SendBookingConfirmation(ctx, created)
	})
	return created, nil
}

func (uc *bookingUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req UpdateBookingRequest, handledBy uuid.UUID, reason string) (*booking.Booking, error) {
	if req.Occupancy != nil && *req.Occupancy <= 0 {
		return nil, booking.ErrInvalidOccupancy
	}

	var (
		updated *booking.Booking
		mods    []*booking.Modification
		batchAt time.Time
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByIDForUpdate(ctx, id)
		if derr != nil {
			return derr
		}
		if b.IsCancelled() {
			return booking.ErrBookingCancelled
		}
		before := b.Snapshot()

		period, derr := booking.NewStayPeriod(
			patch.Coalesce(req.CheckIn, b.CheckIn()),
			patch.Coalesce(req.CheckOut, b.CheckOut()),
		)
		if derr != nil {
			return derr
		}
		occupancy := patch.Coalesce(req.Occupancy, b.Occupancy())

		category, derr := tx.Categories().FindByID(ctx, b.CategoryID())
		if derr != nil {
			return derr
		}
		if derr = checkCapacity(category, occupancy); derr != nil {
			return derr
		}

		extras := b.Extras()
		if req.ExtraIDs != nil {
			if extras, derr = uc.loadExtras(ctx, tx, *req.ExtraIDs); derr != nil {
				return derr
			}
		}

		datesChanged := !period.Equal(b.Period())
		if datesChanged && b.HasRoom() {
			if derr = uc.ensureRoomFree(ctx, tx, b, period); derr != nil {
				return derr
			}
		}

		now := uc.clock.Now()
		repriced := false
		if datesChanged {
			if derr = b.Reschedule(period, now); derr != nil {
				return derr
			}
			repriced = true
		}
		if occupancy != b.Occupancy() {
			if derr = b.ChangeOccupancy(occupancy, now); derr != nil {
				return derr
			}
			repriced = true
		}
		if req.ExtraIDs != nil {
			if derr = b.ReplaceExtras(extras, now); derr != nil {
				return derr
			}
			repriced = true
		}
		if repriced {
			total, derr := uc.prices.Price(category, b)
			if derr != nil {
				return derr
			}
			b.ApplyPrice(total)
		}

		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return derr
		}

		mods = uc.auditor.RecordChangesFromSnapshot(before, b, handledBy, reason, now)
		for _, m := range mods {
			if derr = tx.Modifications().Create(ctx, m); derr != nil {
				return derr
			}
		}
		updated, batchAt = b, now
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(mods) > 0 {
		uc.notify(ctx, "booking_modification", updated.ID(), func(ctx context.Context) error {
			return uc.notifier.SendBookingModification(ctx, updated, batchAt)
		})
	}
	return updated, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, reason string, handledBy uuid.UUID) (*booking.Cancellation, error) {
	var (
		cancelled    *booking.Booking
		cancellation *booking.Cancellation
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByIDForUpdate(ctx, id)
		if derr != nil {
			return derr
		}
		if b.IsCancelled() {
			return booking.ErrBookingCancelled
		}

		now := uc.clock.Now()
		fee := uc.policy.FeeFor(b, clock.Today(uc.clock, uc.location))
		c, derr := booking.NewCancellation(b, fee, reason, handledBy, now)
		if derr != nil {
			return derr
		}
		if derr = processCancellation(ctx, tx, b, c, now); derr != nil {
			return derr
		}
		cancelled, cancellation = b, c
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, "booking_cancellation", cancelled.ID(), func(ctx context.Context) error {
		return uc.notifier.SendBookingCancellation(ctx, cancelled, cancellation)
	})
	return cancellation, nil
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var confirmed *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByIDForUpdate(ctx, id)
		if derr != nil {
			return derr
		}
		if derr = b.Confirm(uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return derr
		}
		confirmed = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

func (uc *bookingUseCaseImpl) IsRoomAvailable(ctx context.Context, categoryID uuid.UUID, checkIn, checkOut time.Time, excludeBookingID *uuid.UUID) (bool, error) {
	period, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return false, err
	}

	var available bool
	err = uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Categories().FindByID(ctx, categoryID); derr != nil {
			return derr
		}
		checker := booking.NewAvailabilityChecker(shared.NewTxOccupancy(tx))
		ok, derr := checker.IsRoomAvailable(ctx, categoryID, period, excludeBookingID)
		if derr != nil {
			return derr
		}
		available = ok
		return nil
	})
	if err != nil {
		return false, err
	}
	return available, nil
}

func (uc *bookingUseCaseImpl) loadExtras(ctx context.Context, tx shared.Tx, ids []uuid.UUID) ([]booking.Extra, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return tx.Extras().FindByIDs(ctx, ids)
}

// ensureRoomFree re-checks the already bound room; bookings are never moved to another room.
func (uc *bookingUseCaseImpl) ensureRoomFree(ctx context.Context, tx shared.Tx, b *booking.Booking, period booking.StayPeriod) error {
	if _, err := tx.Rooms().LockActiveByCategory(ctx, b.CategoryID()); err != nil {
		return err
	}
	self := b.ID()
	checker := booking.NewAvailabilityChecker(shared.NewTxOccupancy(tx))
	free, err := checker.IsSpecificRoomAvailable(ctx, *b.RoomID(), period, &self)
	if err != nil {
		return err
	}
	if !free {
		return booking.ErrNoRoomAvailable
	}
	return nil
}

func (uc *bookingUseCaseImpl) releaseLock(ctx context.Context, release func(context.Context) error, categoryID uuid.UUID) {
	if err := release(context.WithoutCancel(ctx)); err != nil {
		uc.logger.WarnContext(ctx, "failed to release assignment lock",
			"category_id", categoryID.String(),
			"error", err.Error())
	}
}

func checkCapacity(category *room.Category, occupancy int) error {
	if occupancy > category.MaxOccupancy() {
		return errs.Wrapf(booking.ErrOccupancyOverCapacity, "occupancy %d, max %d", occupancy, category.MaxOccupancy())
	}
	return nil
}
