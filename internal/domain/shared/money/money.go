package money

import (
	"fmt"

	"hotel-booking/internal/pkg/errs"
)

var ErrNegativeAmount = errs.Mark(errs.New("money: amount cannot be negative"), errs.ErrValidation)

// Money keeps amounts in integer cents, i.e. a fixed 2-decimal scale.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func Zero() Money { return Money{} }

func (m Money) Cents() int64 { return m.cents }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Multiply(times int64) Money {
	return Money{cents: m.cents * times}
}

// Percent returns pct% of m rounded half-up (half away from zero) to the cent.
func (m Money) Percent(pct int64) Money {
	scaled := m.cents * pct
	if scaled < 0 {
		return Money{cents: -((-scaled + 50) / 100)}
	}
	return Money{cents: (scaled + 50) / 100}
}

func (m Money) LessThan(other Money) bool { return m.cents < other.cents }

func (m Money) Equal(other Money) bool { return m.cents == other.cents }

func (m Money) IsZero() bool { return m.cents == 0 }

func (m Money) IsNegative() bool { return m.cents < 0 }

// String renders the amount with a fixed scale of two, e.g. "120.00".
func (m Money) String() string {
	c := m.cents
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func Min(a, b Money) Money {
	if a.cents < b.cents {
		return a
	}
	return b
}
