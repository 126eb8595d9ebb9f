//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_ListModifications(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown booking is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, booking.ErrBookingNotFound)

		_, err := queries.NewBookingQueries(store).ListModifications(ctx, id)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("returns the audit trail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		view := builder.NewBookingBuilder().BuildView()
		mods := []*queries.ModificationView{{ID: uuid.New(), BookingID: view.ID, FieldChanged: booking.FieldAmount}}
		gomock.InOrder(
			store.EXPECT().FindByID(ctx, view.ID).Return(view, nil),
			store.EXPECT().FindModifications(ctx, view.ID).Return(mods, nil),
		)

		actual, err := queries.NewBookingQueries(store).ListModifications(ctx, view.ID)

		require.NoError(t, err)
		assert.Equal(t, mods, actual)
	})
}

func TestBookingQueries_Passthrough(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	view := builder.NewBookingBuilder().BuildView()

	store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
	store.EXPECT().FindActiveByRoom(ctx, *view.RoomID).Return([]*queries.BookingView{view}, nil)

	q := queries.NewBookingQueries(store)
	got, err := q.GetBooking(ctx, view.ID)
	require.NoError(t, err)
	assert.Same(t, view, got)

	active, err := q.ActiveBookingsForRoom(ctx, *view.RoomID)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
