//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/billing"
	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/infra/repository"
	"hotel-booking/internal/pkg/errs"
	repositorymock "hotel-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInvoiceRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
		expectIs   error
	}{
		{name: "success: invoice inserted"},
		{
			name:       "error: booking already invoiced",
			returnErr:  &pgconn.PgError{Code: "23505", ConstraintName: "invoices_booking_id_key"},
			expectKind: infra.KindDuplicateKey,
			expectIs:   billing.ErrInvoiceExists,
		},
		{
			name:       "error: database error occurs",
			returnErr:  errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
			expectIs:   errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockInvoiceWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewInvoiceRepository(mockQueries, mockDB)

			inv, err := billing.NewInvoice(uuid.New(), "INV-BK-1", money.NewMoney(10000), time.Now())
			require.NoError(t, err)

			mockQueries.EXPECT().InsertInvoice(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.Invoice) error {
					assert.Equal(t, inv.ID(), arg.ID)
					assert.Equal(t, "ISSUED", arg.Status)
					assert.Equal(t, int64(10000), arg.AmountCents)
					return tc.returnErr
				})

			actualError := repo.Create(ctx, inv)

			if tc.returnErr == nil {
				require.NoError(t, actualError)
				return
			}
			require.Error(t, actualError)
			assert.True(t, infra.IsKind(actualError, tc.expectKind))
			assert.True(t, errs.Is(actualError, tc.expectIs))
		})
	}
}

func TestInvoiceRepository_FindByBookingID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockInvoiceWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewInvoiceRepository(mockQueries, mockDB)
	bookingID := uuid.New()

	mockQueries.EXPECT().GetInvoiceByBooking(ctx, mockDB, bookingID).Return(query.Invoice{}, pgx.ErrNoRows)

	_, err := repo.FindByBookingID(ctx, bookingID)

	require.Error(t, err)
	assert.True(t, errs.Is(err, billing.ErrInvoiceNotFound))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestInvoiceRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	inv := billing.ReconstructInvoice(uuid.New(), uuid.New(), "INV-1", money.NewMoney(10000), money.NewMoney(8000), billing.InvoicePartial, time.Now())

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockInvoiceWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().UpdateInvoiceStatus(ctx, mockDB, query.UpdateInvoiceStatusParams{
			ID:            inv.ID(),
			Status:        "PARTIAL",
			RefundedCents: 8000,
		}).Return(int64(1), nil)

		require.NoError(t, repository.NewInvoiceRepository(mockQueries, mockDB).UpdateStatus(ctx, inv))
	})

	t.Run("error: no row updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockInvoiceWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().UpdateInvoiceStatus(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repository.NewInvoiceRepository(mockQueries, mockDB).UpdateStatus(ctx, inv)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errs.Is(err, billing.ErrInvoiceNotFound))
	})
}

func TestPaymentRepository(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	paidAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("refund update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)
		p, err := billing.NewPaidPayment(bookingID, money.NewMoney(10000), "card", paidAt)
		require.NoError(t, err)
		p.ApplyRefund(money.NewMoney(8000))

		mockQueries.EXPECT().UpdatePaymentRefund(ctx, mockDB, query.UpdatePaymentRefundParams{
			ID:            p.ID(),
			Status:        "PARTIAL",
			RefundedCents: 8000,
		}).Return(int64(1), nil)

		require.NoError(t, repo.UpdateRefund(ctx, p))
	})

	t.Run("refund update on a missing payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)
		p, err := billing.NewPaidPayment(bookingID, money.NewMoney(100), "card", paidAt)
		require.NoError(t, err)

		mockQueries.EXPECT().UpdatePaymentRefund(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err = repo.UpdateRefund(ctx, p)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("list maps rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)
		p, err := billing.NewPaidPayment(bookingID, money.NewMoney(2500), "cash", paidAt)
		require.NoError(t, err)

		mockQueries.EXPECT().ListPaymentsByBooking(ctx, mockDB, bookingID).
			Return([]query.Payment{{
				ID:          p.ID(),
				BookingID:   bookingID,
				AmountCents: 2500,
				Status:      "PAID",
				Method:      "cash",
			}}, nil)

		payments, err := repo.FindByBookingID(ctx, bookingID)

		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, billing.PaymentPaid, payments[0].Status())
		assert.Equal(t, "25.00", payments[0].Amount().String())
		assert.Nil(t, payments[0].PaidAt())
	})
}
