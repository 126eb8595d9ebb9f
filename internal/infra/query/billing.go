package query

import (
	"context"

	"github.com/google/uuid"
)

const insertPayment = `
INSERT INTO payments (id, booking_id, amount_cents, refunded_cents, status, method, paid_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (q *Queries) InsertPayment(ctx context.Context, db DBTX, arg Payment) error {
	_, err := db.Exec(ctx, insertPayment,
		arg.ID, arg.BookingID, arg.AmountCents, arg.RefundedCents, arg.Status, arg.Method, arg.PaidAt,
	)
	return err
}

type UpdatePaymentRefundParams struct {
	ID            uuid.UUID
	Status        string
	RefundedCents int64
}

const updatePaymentRefund = `
UPDATE payments SET status = $2, refunded_cents = $3, updated_at = now()
WHERE id = $1
`

func (q *Queries) UpdatePaymentRefund(ctx context.Context, db DBTX, arg UpdatePaymentRefundParams) (int64, error) {
	tag, err := db.Exec(ctx, updatePaymentRefund, arg.ID, arg.Status, arg.RefundedCents)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listPaymentsByBooking = `
SELECT id, booking_id, amount_cents, refunded_cents, status, method, paid_at
FROM payments
WHERE booking_id = $1
ORDER BY paid_at NULLS LAST, id
`

func (q *Queries) ListPaymentsByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]Payment, error) {
	rows, err := db.Query(ctx, listPaymentsByBooking, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.AmountCents, &p.RefundedCents, &p.Status, &p.Method, &p.PaidAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const insertInvoice = `
INSERT INTO invoices (id, booking_id, invoice_number, amount_cents, refunded_cents, status, issued_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (q *Queries) InsertInvoice(ctx context.Context, db DBTX, arg Invoice) error {
	_, err := db.Exec(ctx, insertInvoice,
		arg.ID, arg.BookingID, arg.InvoiceNumber, arg.AmountCents, arg.RefundedCents, arg.Status, arg.IssuedAt,
	)
	return err
}

type UpdateInvoiceStatusParams struct {
	ID            uuid.UUID
	Status        string
	RefundedCents int64
}

const updateInvoiceStatus = `
UPDATE invoices SET status = $2, refunded_cents = $3, updated_at = now()
WHERE id = $1
`

func (q *Queries) UpdateInvoiceStatus(ctx context.Context, db DBTX, arg UpdateInvoiceStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateInvoiceStatus, arg.ID, arg.Status, arg.RefundedCents)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getInvoiceByBooking = `
SELECT id, booking_id, invoice_number, amount_cents, refunded_cents, status, issued_at
FROM invoices
WHERE booking_id = $1
`

func (q *Queries) GetInvoiceByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) (Invoice, error) {
	row := db.QueryRow(ctx, getInvoiceByBooking, bookingID)
	var i Invoice
	err := row.Scan(&i.ID, &i.BookingID, &i.InvoiceNumber, &i.AmountCents, &i.RefundedCents, &i.Status, &i.IssuedAt)
	return i, err
}
