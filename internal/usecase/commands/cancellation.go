package commands

import (
	"context"
	"time"

	"hotel-booking/internal/domain/billing"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

// processCancellation writes booking, cancellation, payments and invoice through one tx;
// any failure rolls all of them back.
func processCancellation(ctx context.Context, tx shared.Tx, b *booking.Booking, c *booking.Cancellation, now time.Time) error {
	if err := b.Cancel(now); err != nil {
		return err
	}
	if err := tx.Bookings().Update(ctx, b); err != nil {
		return err
	}
	if err := tx.Cancellations().Create(ctx, c); err != nil {
		return err
	}

	payments, err := tx.Payments().FindByBookingID(ctx, b.ID())
	if err != nil {
		return err
	}
	invoice, err := findInvoice(ctx, tx, b)
	if err != nil {
		return err
	}

	for _, p := range billing.Reconcile(payments, invoice, c.Refunded()) {
		if err := tx.Payments().UpdateRefund(ctx, p); err != nil {
			return err
		}
	}
	if invoice != nil {
		if err := tx.Invoices().UpdateStatus(ctx, invoice); err != nil {
			return err
		}
	}
	return nil
}

// findInvoice returns nil without error when the booking has no invoice yet.
func findInvoice(ctx context.Context, tx shared.Tx, b *booking.Booking) (*billing.Invoice, error) {
	invoice, err := tx.Invoices().FindByBookingID(ctx, b.ID())
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return invoice, nil
}
