//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/tests/common/builder"
	readstoremock "hotel-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

type nopDBTX struct {
	query.DBTX
}

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockBookingViewQueries)
		expectKind infra.RepositoryErrorKind
		expectErr  bool
	}{
		{
			name: "success: view mapped",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), b.ID).Return(b.BuildViewRow(), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), b.ID).Return(query.BookingViewRow{}, pgx.ErrNoRows)
			},
			expectErr:  true,
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), b.ID).Return(query.BookingViewRow{}, errDBConnectionLost)
			},
			expectErr:  true,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			tc.setupMock(mockQueries)
			store := readstore.NewBookingReadStore(mockQueries, nopDBTX{})

			view, err := store.FindByID(ctx, b.ID)

			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				if tc.expectKind == infra.KindNotFound {
					assert.True(t, errs.Is(err, booking.ErrBookingNotFound))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.BuildView(), view)
		})
	}
}

func TestBookingReadStore_FindActiveByRoom(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	roomID := uuid.New()

	first := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomID = &roomID })
	second := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomID = &roomID }).WithOccupancy(1)
	mockQueries.EXPECT().ListActiveBookingViewsByRoom(ctx, gomock.Any(), roomID).
		Return([]query.BookingViewRow{first.BuildViewRow(), second.BuildViewRow()}, nil)

	views, err := readstore.NewBookingReadStore(mockQueries, nopDBTX{}).FindActiveByRoom(ctx, roomID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 2, views[0].Occupancy)
	assert.Equal(t, 1, views[1].Occupancy)
	assert.Equal(t, &roomID, views[1].RoomID)
}

func TestBookingReadStore_FindModifications(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	at := time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)

	t.Run("rows keep their order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().ListBookingModifications(ctx, gomock.Any(), bookingID).Return([]query.BookingModification{
			{ID: uuid.New(), BookingID: bookingID, ModifiedAt: pgtype.Timestamptz{Time: at, Valid: true}, FieldChanged: booking.FieldCheckInDate, OldValue: "2025-01-10", NewValue: "2025-01-11"},
			{ID: uuid.New(), BookingID: bookingID, ModifiedAt: pgtype.Timestamptz{Time: at, Valid: true}, FieldChanged: booking.FieldTotalPrice, OldValue: "100.00", NewValue: "50.00", Reason: pgtype.Text{String: "guest request", Valid: true}},
		}, nil)

		views, err := readstore.NewBookingReadStore(mockQueries, nopDBTX{}).FindModifications(ctx, bookingID)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, booking.FieldCheckInDate, views[0].FieldChanged)
		assert.Nil(t, views[0].Reason)
		assert.Equal(t, at, views[1].ModifiedAt)
		require.NotNil(t, views[1].Reason)
		assert.Equal(t, "guest request", *views[1].Reason)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().ListBookingModifications(ctx, gomock.Any(), bookingID).Return(nil, errDBConnectionLost)

		_, err := readstore.NewBookingReadStore(mockQueries, nopDBTX{}).FindModifications(ctx, bookingID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
