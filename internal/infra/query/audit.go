package query

import (
	"context"

	"github.com/google/uuid"
)

const insertBookingModification = `
INSERT INTO booking_modifications (id, booking_id, modified_at, field_changed, old_value, new_value, handled_by, reason)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (q *Queries) InsertBookingModification(ctx context.Context, db DBTX, arg BookingModification) error {
	_, err := db.Exec(ctx, insertBookingModification,
		arg.ID, arg.BookingID, arg.ModifiedAt, arg.FieldChanged, arg.OldValue, arg.NewValue, arg.HandledBy, arg.Reason,
	)
	return err
}

const listBookingModifications = `
SELECT id, booking_id, modified_at, field_changed, old_value, new_value, handled_by, reason
FROM booking_modifications
WHERE booking_id = $1
ORDER BY seq
`

func (q *Queries) ListBookingModifications(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]BookingModification, error) {
	rows, err := db.Query(ctx, listBookingModifications, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []BookingModification
	for rows.Next() {
		var m BookingModification
		if err := rows.Scan(&m.ID, &m.BookingID, &m.ModifiedAt, &m.FieldChanged, &m.OldValue, &m.NewValue, &m.HandledBy, &m.Reason); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

const insertBookingCancellation = `
INSERT INTO booking_cancellations (id, booking_id, cancelled_at, reason, fee_cents, refunded_cents, handled_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (q *Queries) InsertBookingCancellation(ctx context.Context, db DBTX, arg BookingCancellation) error {
	_, err := db.Exec(ctx, insertBookingCancellation,
		arg.ID, arg.BookingID, arg.CancelledAt, arg.Reason, arg.FeeCents, arg.RefundedCents, arg.HandledBy,
	)
	return err
}

const getBookingCancellation = `
SELECT id, booking_id, cancelled_at, reason, fee_cents, refunded_cents, handled_by
FROM booking_cancellations
WHERE booking_id = $1
`

func (q *Queries) GetBookingCancellation(ctx context.Context, db DBTX, bookingID uuid.UUID) (BookingCancellation, error) {
	row := db.QueryRow(ctx, getBookingCancellation, bookingID)
	var c BookingCancellation
	err := row.Scan(&c.ID, &c.BookingID, &c.CancelledAt, &c.Reason, &c.FeeCents, &c.RefundedCents, &c.HandledBy)
	return c, err
}
