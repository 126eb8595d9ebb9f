//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(checkIn time.Time, occupancy int, cents int64, extras ...string) booking.Snapshot {
	return booking.NewSnapshot(checkIn, checkIn.AddDate(0, 0, 2), occupancy, money.NewMoney(cents), extras)
}

func TestDiff(t *testing.T) {
	d1 := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		before   booking.Snapshot
		after    booking.Snapshot
		expected []booking.FieldChange
	}{
		{
			name:   "identical snapshots",
			before: snapshot(d1, 2, 12000, "Breakfast"),
			after:  snapshot(d1, 2, 12000, "Breakfast"),
		},
		{
			name:   "extras in a different order",
			before: snapshot(d1, 2, 12000, "Breakfast", "Parking"),
			after:  snapshot(d1, 2, 12000, "Parking", "Breakfast"),
		},
		{
			name:   "check-in moved",
			before: booking.NewSnapshot(d1, d1.AddDate(0, 0, 5), 2, money.NewMoney(12000), nil),
			after:  booking.NewSnapshot(d2, d1.AddDate(0, 0, 5), 2, money.NewMoney(12000), nil),
			expected: []booking.FieldChange{
				{Field: booking.FieldCheckInDate, OldValue: "2025-05-10", NewValue: "2025-05-11"},
			},
		},
		{
			name:   "occupancy and price",
			before: snapshot(d1, 2, 12000),
			after:  snapshot(d1, 3, 14000),
			expected: []booking.FieldChange{
				{Field: booking.FieldAmount, OldValue: "2", NewValue: "3"},
				{Field: booking.FieldTotalPrice, OldValue: "120.00", NewValue: "140.00"},
			},
		},
		{
			name:   "extras added",
			before: snapshot(d1, 2, 12000, "Parking"),
			after:  snapshot(d1, 2, 12000, "Parking", "Breakfast"),
			expected: []booking.FieldChange{
				{Field: booking.FieldExtras, OldValue: "Parking", NewValue: "Breakfast, Parking"},
			},
		},
		{
			name:   "every field",
			before: booking.NewSnapshot(d1, d1.AddDate(0, 0, 2), 1, money.NewMoney(10000), nil),
			after:  booking.NewSnapshot(d2, d2.AddDate(0, 0, 3), 2, money.NewMoney(17000), []string{"Spa"}),
			expected: []booking.FieldChange{
				{Field: booking.FieldCheckInDate, OldValue: "2025-05-10", NewValue: "2025-05-11"},
				{Field: booking.FieldCheckOutDate, OldValue: "2025-05-12", NewValue: "2025-05-14"},
				{Field: booking.FieldAmount, OldValue: "1", NewValue: "2"},
				{Field: booking.FieldTotalPrice, OldValue: "100.00", NewValue: "170.00"},
				{Field: booking.FieldExtras, OldValue: "", NewValue: "Spa"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := booking.Diff(tc.before, tc.after)

			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAuditor_RecordChangesFromSnapshot(t *testing.T) {
	d1 := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
	handledBy := uuid.New()
	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	auditor := booking.NewAuditor()

	t.Run("one moved check-in yields one row", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStay(d1, d1.AddDate(0, 0, 5)).BuildDomain()
		require.NoError(t, err)
		before := b.Snapshot()

		period, err := booking.NewStayPeriod(d2, d1.AddDate(0, 0, 5))
		require.NoError(t, err)
		require.NoError(t, b.Reschedule(period, at))

		mods := auditor.RecordChangesFromSnapshot(before, b, handledBy, "guest request", at)

		require.Len(t, mods, 1)
		m := mods[0]
		assert.Equal(t, booking.FieldCheckInDate, m.Field())
		assert.Equal(t, "2025-05-10", m.OldValue())
		assert.Equal(t, "2025-05-12", m.NewValue())
		assert.Equal(t, b.ID(), m.BookingID())
		assert.Equal(t, handledBy, m.HandledBy())
		assert.Equal(t, at, m.ModifiedAt())
		require.NotNil(t, m.Reason())
		assert.Equal(t, "guest request", *m.Reason())
	})

	t.Run("rows of one batch share a timestamp", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		before := b.Snapshot()

		require.NoError(t, b.ChangeOccupancy(1, at))
		b.ApplyPrice(money.NewMoney(5000))

		mods := auditor.RecordChangesFromSnapshot(before, b, handledBy, "", at)

		require.Len(t, mods, 2)
		for _, m := range mods {
			assert.Equal(t, at, m.ModifiedAt())
			assert.Nil(t, m.Reason())
		}
	})

	t.Run("unchanged booking yields nothing", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		mods := auditor.RecordChanges(b, b, handledBy, "", at)

		assert.Empty(t, mods)
	})
}
