package commands

import (
	"context"

	"hotel-booking/internal/domain/billing"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

func (uc *bookingUseCaseImpl) RecordPayment(ctx context.Context, bookingID uuid.UUID, amount money.Money, method string) (*billing.Payment, error) {
	var recorded *billing.Payment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByID(ctx, bookingID)
		if derr != nil {
			return derr
		}
		if b.IsCancelled() {
			return booking.ErrBookingCancelled
		}

		p, derr := billing.NewPaidPayment(b.ID(), amount, method, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = tx.Payments().Create(ctx, p); derr != nil {
			return derr
		}

		invoice, derr := findInvoice(ctx, tx, b)
		if derr != nil {
			return derr
		}
		if invoice != nil && invoice.Status() == billing.InvoiceIssued {
			paid, derr := paidTotal(ctx, tx, b.ID())
			if derr != nil {
				return derr
			}
			if !paid.LessThan(invoice.Amount()) {
				invoice.MarkPaid()
				if derr = tx.Invoices().UpdateStatus(ctx, invoice); derr != nil {
					return derr
				}
			}
		}
		recorded = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recorded, nil
}

// IssueInvoice bills the booking's current total; a booking gets at most one invoice.
func (uc *bookingUseCaseImpl) IssueInvoice(ctx context.Context, bookingID uuid.UUID) (*billing.Invoice, error) {
	var issued *billing.Invoice
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByID(ctx, bookingID)
		if derr != nil {
			return derr
		}
		if b.IsCancelled() {
			return booking.ErrBookingCancelled
		}
		existing, derr := findInvoice(ctx, tx, b)
		if derr != nil {
			return derr
		}
		if existing != nil {
			return billing.ErrInvoiceExists
		}

		inv, derr := billing.NewInvoice(b.ID(), billing.InvoiceNumber(b.Number()), b.TotalPrice(), uc.clock.Now())
		if derr != nil {
			return derr
		}
		paid, derr := paidTotal(ctx, tx, b.ID())
		if derr != nil {
			return derr
		}
		if !paid.IsZero() && !paid.LessThan(inv.Amount()) {
			inv.MarkPaid()
		}
		if derr = tx.Invoices().Create(ctx, inv); derr != nil {
			return derr
		}
		issued = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issued, nil
}

func paidTotal(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (money.Money, error) {
	payments, err := tx.Payments().FindByBookingID(ctx, bookingID)
	if err != nil {
		return money.Money{}, err
	}
	total := money.Zero()
	for _, p := range payments {
		if p.Status() == billing.PaymentPaid {
			total = total.Add(p.Amount())
		}
	}
	return total, nil
}
