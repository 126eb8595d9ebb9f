//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestCancellationPolicy_CalculateFee(t *testing.T) {
	total := money.NewMoney(10000)

	testCases := []struct {
		name     string
		days     int
		expected string
	}{
		{name: "forty days ahead is free", days: 40, expected: "0.00"},
		{name: "exactly thirty days is free", days: 30, expected: "0.00"},
		{name: "twenty-nine days costs twenty percent", days: 29, expected: "20.00"},
		{name: "ten days costs twenty percent", days: 10, expected: "20.00"},
		{name: "exactly seven days costs twenty percent", days: 7, expected: "20.00"},
		{name: "six days costs half", days: 6, expected: "50.00"},
		{name: "three days costs half", days: 3, expected: "50.00"},
		{name: "exactly one day costs half", days: 1, expected: "50.00"},
		{name: "same day costs everything", days: 0, expected: "100.00"},
		{name: "past check-in costs everything", days: -2, expected: "100.00"},
	}

	policy := booking.NewCancellationPolicy()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkIn := today.AddDate(0, 0, tc.days)

			fee := policy.CalculateFee(checkIn, today, total)

			assert.Equal(t, tc.expected, fee.String())
		})
	}
}

func TestCancellationPolicy_FeeIsMonotoneAndBounded(t *testing.T) {
	policy := booking.NewCancellationPolicy()

	for _, cents := range []int64{0, 1, 333, 9999, 10000, 123457} {
		total := money.NewMoney(cents)
		prev := total
		for days := -3; days <= 45; days++ {
			fee := policy.CalculateFee(today.AddDate(0, 0, days), today, total)

			assert.False(t, fee.IsNegative(), "fee below zero at %d days", days)
			assert.False(t, total.LessThan(fee), "fee above total at %d days", days)
			assert.False(t, prev.LessThan(fee), "fee increased at %d days", days)
			prev = fee
		}
	}
}

func TestCancellationPolicy_RoundsHalfUp(t *testing.T) {
	policy := booking.NewCancellationPolicy()

	// 50% of 0.05 is 0.025
	fee := policy.CalculateFee(today.AddDate(0, 0, 3), today, money.NewMoney(5))
	assert.Equal(t, "0.03", fee.String())

	// 20% of 0.13 is 0.026
	fee = policy.CalculateFee(today.AddDate(0, 0, 10), today, money.NewMoney(13))
	assert.Equal(t, "0.03", fee.String())
}

func TestCancellationPolicy_DaysUntilCheckInUsesCalendarDays(t *testing.T) {
	policy := booking.NewCancellationPolicy()
	checkIn := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	lateEvening := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 7, policy.DaysUntilCheckIn(checkIn, lateEvening))

	assert.Equal(t, -1, policy.DaysUntilCheckIn(checkIn, checkIn.AddDate(0, 0, 1)))
}

func TestNewCancellation(t *testing.T) {
	handledBy := uuid.New()
	at := today.Add(10 * time.Hour)

	t.Run("refund is total minus fee", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithTotalPrice(10000).BuildDomain()
		require.NoError(t, err)

		c, err := booking.NewCancellation(b, money.NewMoney(2000), "  change of plans ", handledBy, at)

		require.NoError(t, err)
		assert.Equal(t, b.ID(), c.BookingID())
		assert.Equal(t, "20.00", c.Fee().String())
		assert.Equal(t, "80.00", c.Refunded().String())
		assert.Equal(t, "change of plans", c.Reason())
		assert.Equal(t, handledBy, c.HandledBy())
		assert.Equal(t, at, c.CancelledAt())
	})

	t.Run("fee above total is rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithTotalPrice(1000).BuildDomain()
		require.NoError(t, err)

		_, err = booking.NewCancellation(b, money.NewMoney(1001), "", handledBy, at)

		require.Error(t, err)
		assert.True(t, errs.Is(err, booking.ErrFeeExceedsTotal))
	})

	t.Run("negative fee is rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = booking.NewCancellation(b, money.NewMoney(-1), "", handledBy, at)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
