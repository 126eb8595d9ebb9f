package booking

import (
	"strings"
	"time"

	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrFeeExceedsTotal = errs.Mark(errs.New("cancellation fee exceeds booking total"), errs.ErrValidation)

// FeeTier applies Percent when the notice period is at least MinDays.
type FeeTier struct {
	MinDays int
	Percent int64
}

// CancellationPolicy evaluates tiers top-down; the last tier catches everything below.
type CancellationPolicy struct {
	tiers []FeeTier
}

func NewCancellationPolicy() *CancellationPolicy {
	return &CancellationPolicy{
		tiers: []FeeTier{
			{MinDays: 30, Percent: 0},
			{MinDays: 7, Percent: 20},
			{MinDays: 1, Percent: 50},
		},
	}
}

const lastMinutePercent int64 = 100

// DaysUntilCheckIn is negative for past check-ins.
func (p *CancellationPolicy) DaysUntilCheckIn(checkIn, today time.Time) int {
	return DaysBetween(today, checkIn)
}

func (p *CancellationPolicy) FeePercent(daysUntilCheckIn int) int64 {
	for _, t := range p.tiers {
		if daysUntilCheckIn >= t.MinDays {
			return t.Percent
		}
	}
	return lastMinutePercent
}

func (p *CancellationPolicy) CalculateFee(checkIn, today time.Time, total money.Money) money.Money {
	pct := p.FeePercent(p.DaysUntilCheckIn(checkIn, today))
	return total.Percent(pct)
}

// FeeFor charges the booking's own total.
func (p *CancellationPolicy) FeeFor(b *Booking, today time.Time) money.Money {
	return p.CalculateFee(b.CheckIn(), today, b.TotalPrice())
}

type Cancellation struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	cancelledAt time.Time
	reason      string
	fee         money.Money
	refunded    money.Money
	handledBy   uuid.UUID
}

// NewCancellation derives the refund as total minus fee.
func NewCancellation(b *Booking, fee money.Money, reason string, handledBy uuid.UUID, at time.Time) (*Cancellation, error) {
	if fee.IsNegative() {
		return nil, money.ErrNegativeAmount
	}
	if b.TotalPrice().LessThan(fee) {
		return nil, ErrFeeExceedsTotal
	}
	return &Cancellation{
		id:          uuid.New(),
		bookingID:   b.ID(),
		cancelledAt: at,
		reason:      strings.TrimSpace(reason),
		fee:         fee,
		refunded:    b.TotalPrice().Sub(fee),
		handledBy:   handledBy,
	}, nil
}

func ReconstructCancellation(id, bookingID uuid.UUID, cancelledAt time.Time, reason string, fee, refunded money.Money, handledBy uuid.UUID) *Cancellation {
	return &Cancellation{
		id:          id,
		bookingID:   bookingID,
		cancelledAt: cancelledAt,
		reason:      reason,
		fee:         fee,
		refunded:    refunded,
		handledBy:   handledBy,
	}
}

func (c *Cancellation) ID() uuid.UUID          { return c.id }
func (c *Cancellation) BookingID() uuid.UUID   { return c.bookingID }
func (c *Cancellation) CancelledAt() time.Time { return c.cancelledAt }
func (c *Cancellation) Reason() string         { return c.reason }
func (c *Cancellation) Fee() money.Money       { return c.fee }
func (c *Cancellation) Refunded() money.Money  { return c.refunded }
func (c *Cancellation) HandledBy() uuid.UUID   { return c.handledBy }
