//go:build unit

package billing_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/billing"
	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

func paid(t *testing.T, bookingID uuid.UUID, cents int64) *billing.Payment {
	t.Helper()
	p, err := billing.NewPaidPayment(bookingID, money.NewMoney(cents), "card", at)
	require.NoError(t, err)
	return p
}

func TestNewPaidPayment(t *testing.T) {
	testCases := []struct {
		name   string
		cents  int64
		method string
		errIs  error
	}{
		{name: "valid", cents: 100, method: "card"},
		{name: "zero amount", cents: 0, method: "card", errIs: billing.ErrNonPositivePayment},
		{name: "negative amount", cents: -5, method: "card", errIs: billing.ErrNonPositivePayment},
		{name: "blank method", cents: 100, method: "  ", errIs: billing.ErrEmptyPaymentMethod},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := billing.NewPaidPayment(uuid.New(), money.NewMoney(tc.cents), tc.method, at)

			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs))
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, billing.PaymentPaid, p.Status())
			require.NotNil(t, p.PaidAt())
			assert.Equal(t, at, *p.PaidAt())
		})
	}
}

func TestReconcile(t *testing.T) {
	bookingID := uuid.New()

	t.Run("partial refund", func(t *testing.T) {
		p := paid(t, bookingID, 10000)
		inv, err := billing.NewInvoice(bookingID, "INV-1", money.NewMoney(10000), at)
		require.NoError(t, err)
		inv.MarkPaid()

		changed := billing.Reconcile([]*billing.Payment{p}, inv, money.NewMoney(8000))

		require.Len(t, changed, 1)
		assert.Equal(t, billing.PaymentPartial, p.Status())
		assert.Equal(t, "80.00", p.Refunded().String())
		assert.Equal(t, billing.InvoicePartial, inv.Status())
		assert.Equal(t, "80.00", inv.Refunded().String())
	})

	t.Run("full refund", func(t *testing.T) {
		p := paid(t, bookingID, 10000)
		inv, err := billing.NewInvoice(bookingID, "INV-1", money.NewMoney(10000), at)
		require.NoError(t, err)

		changed := billing.Reconcile([]*billing.Payment{p}, inv, money.NewMoney(10000))

		require.Len(t, changed, 1)
		assert.Equal(t, billing.PaymentRefunded, p.Status())
		assert.Equal(t, "100.00", p.Refunded().String())
		assert.Equal(t, billing.InvoiceRefunded, inv.Status())
	})

	t.Run("only paid payments are touched", func(t *testing.T) {
		pending := billing.ReconstructPayment(uuid.New(), bookingID, money.NewMoney(500), money.Zero(), billing.PaymentPending, "transfer", nil)
		refunded := billing.ReconstructPayment(uuid.New(), bookingID, money.NewMoney(500), money.NewMoney(500), billing.PaymentRefunded, "card", nil)
		p := paid(t, bookingID, 10000)

		changed := billing.Reconcile([]*billing.Payment{pending, refunded, p}, nil, money.NewMoney(0))

		require.Len(t, changed, 1)
		assert.Same(t, p, changed[0])
		assert.Equal(t, billing.PaymentPending, pending.Status())
		assert.Equal(t, billing.PaymentRefunded, refunded.Status())
		assert.Equal(t, billing.PaymentPartial, p.Status())
	})
}

func TestInvoice_MarkPaidOnlyFromIssued(t *testing.T) {
	inv, err := billing.NewInvoice(uuid.New(), billing.InvoiceNumber("BK-20250101-ABCDEF"), money.NewMoney(100), at)
	require.NoError(t, err)
	assert.Equal(t, "INV-BK-20250101-ABCDEF", inv.Number())
	assert.Equal(t, billing.InvoiceIssued, inv.Status())

	inv.MarkPaid()
	assert.Equal(t, billing.InvoicePaid, inv.Status())

	inv.ApplyRefund(money.NewMoney(100))
	inv.MarkPaid()
	assert.Equal(t, billing.InvoiceRefunded, inv.Status())
}
