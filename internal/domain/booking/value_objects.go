package booking

import (
	"fmt"
	"time"

	"hotel-booking/internal/pkg/errs"
)

// DateLayout is the ISO-8601 calendar date format used for stay dates and audit values.
const DateLayout = "2006-01-02"

var (
	ErrMissingStayDates  = errs.Mark(errs.New("check-in and check-out dates are required"), errs.ErrValidation)
	ErrInvalidStayPeriod = errs.Mark(errs.New("check-out must be after check-in"), errs.ErrValidation)
	ErrInvalidNights     = errs.Mark(errs.New("stay must last at least one night"), errs.ErrValidation)
	ErrInvalidOccupancy  = errs.Mark(errs.New("occupancy must be positive"), errs.ErrValidation)
	ErrInvalidStatus     = errs.Mark(errs.New("invalid booking status"), errs.ErrValidation)
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return st, nil
	default:
		return "", errs.Wrapf(ErrInvalidStatus, "status %q", s)
	}
}

func (s Status) String() string { return string(s) }

// IsActive reports whether a booking in this status still occupies its room.
func (s Status) IsActive() bool { return s != StatusCancelled }

// DateOf drops the clock part of t, keeping the calendar date t shows in its own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrapf(err, "parse date %q", s), errs.ErrValidation)
	}
	return t, nil
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween counts calendar days from a to b; negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int((DateOf(b).Unix() - DateOf(a).Unix()) / secondsPerDay)
}

// StayPeriod is the half-open night range [checkIn, checkOut).
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return StayPeriod{}, ErrMissingStayDates
	}
	in, out := DateOf(checkIn), DateOf(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

// ReconstructStayPeriod skips validation for values already persisted.
func ReconstructStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{checkIn: DateOf(checkIn), checkOut: DateOf(checkOut)}
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

func (p StayPeriod) Nights() int {
	return DaysBetween(p.checkIn, p.checkOut)
}

// Overlaps uses closed/open semantics: a same-day turnover does not overlap.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && p.checkOut.After(other.checkIn)
}

func (p StayPeriod) Equal(other StayPeriod) bool {
	return p.checkIn.Equal(other.checkIn) && p.checkOut.Equal(other.checkOut)
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format(DateLayout), p.checkOut.Format(DateLayout))
}
