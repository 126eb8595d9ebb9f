package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, booking_number, guest_id, category_id, room_id, check_in, check_out,
	occupancy, status, total_price_cents, feedback_id, version, created_at, updated_at`

func scanBooking(row interface{ Scan(dest ...any) error }) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.BookingNumber, &b.GuestID, &b.CategoryID, &b.RoomID, &b.CheckIn, &b.CheckOut,
		&b.Occupancy, &b.Status, &b.TotalPriceCents, &b.FeedbackID, &b.Version, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

type InsertBookingParams struct {
	ID              uuid.UUID
	BookingNumber   string
	GuestID         uuid.UUID
	CategoryID      uuid.UUID
	RoomID          pgtype.UUID
	CheckIn         pgtype.Date
	CheckOut        pgtype.Date
	Occupancy       int32
	Status          string
	TotalPriceCents int64
	FeedbackID      pgtype.UUID
	CreatedAt       pgtype.Timestamptz
}

const insertBooking = `
INSERT INTO bookings (
	id, booking_number, guest_id, category_id, room_id, check_in, check_out,
	occupancy, status, total_price_cents, feedback_id, version, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, $12, $12)
RETURNING version
`

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) (int64, error) {
	row := db.QueryRow(ctx, insertBooking,
		arg.ID, arg.BookingNumber, arg.GuestID, arg.CategoryID, arg.RoomID, arg.CheckIn, arg.CheckOut,
		arg.Occupancy, arg.Status, arg.TotalPriceCents, arg.FeedbackID, arg.CreatedAt,
	)
	var version int64
	err := row.Scan(&version)
	return version, err
}

type UpdateBookingParams struct {
	ID              uuid.UUID
	CheckIn         pgtype.Date
	CheckOut        pgtype.Date
	Occupancy       int32
	Status          string
	TotalPriceCents int64
	UpdatedAt       pgtype.Timestamptz
	ExpectedVersion int64
}

// A stale ExpectedVersion matches no row and surfaces as pgx.ErrNoRows.
const updateBooking = `
UPDATE bookings
SET check_in = $2, check_out = $3, occupancy = $4, status = $5,
	total_price_cents = $6, updated_at = $7, version = version + 1
WHERE id = $1 AND version = $8
RETURNING version
`

func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg UpdateBookingParams) (int64, error) {
	row := db.QueryRow(ctx, updateBooking,
		arg.ID, arg.CheckIn, arg.CheckOut, arg.Occupancy, arg.Status,
		arg.TotalPriceCents, arg.UpdatedAt, arg.ExpectedVersion,
	)
	var version int64
	err := row.Scan(&version)
	return version, err
}

const deleteBookingExtras = `DELETE FROM booking_extras WHERE booking_id = $1`

func (q *Queries) DeleteBookingExtras(ctx context.Context, db DBTX, bookingID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteBookingExtras, bookingID)
	return err
}

const insertBookingExtras = `
INSERT INTO booking_extras (booking_id, extra_id)
SELECT $1, unnest($2::uuid[])
`

func (q *Queries) InsertBookingExtras(ctx context.Context, db DBTX, bookingID uuid.UUID, extraIDs []uuid.UUID) error {
	_, err := db.Exec(ctx, insertBookingExtras, bookingID, extraIDs)
	return err
}

const getBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const getBookingByIDForUpdate = getBookingByID + ` FOR UPDATE`

func (q *Queries) GetBookingByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByIDForUpdate, id))
}

type ExistsOverlappingBookingParams struct {
	RoomID           uuid.UUID
	CheckIn          pgtype.Date
	CheckOut         pgtype.Date
	ExcludeStatus    string
	ExcludeBookingID pgtype.UUID
}

const existsOverlappingBooking = `
SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE room_id = $1
	  AND status <> $4
	  AND check_in < $3
	  AND check_out > $2
	  AND ($5::uuid IS NULL OR id <> $5::uuid)
)
`

func (q *Queries) ExistsOverlappingBooking(ctx context.Context, db DBTX, arg ExistsOverlappingBookingParams) (bool, error) {
	row := db.QueryRow(ctx, existsOverlappingBooking,
		arg.RoomID, arg.CheckIn, arg.CheckOut, arg.ExcludeStatus, arg.ExcludeBookingID,
	)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const listActiveBookingsByRoom = `SELECT ` + bookingColumns + `
FROM bookings
WHERE room_id = $1 AND status <> 'CANCELLED'
ORDER BY check_in, id
`

func (q *Queries) ListActiveBookingsByRoom(ctx context.Context, db DBTX, roomID uuid.UUID) ([]Booking, error) {
	rows, err := db.Query(ctx, listActiveBookingsByRoom, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

const bookingViewSelect = `
SELECT b.id, b.booking_number, b.guest_id, b.category_id, c.name, b.room_id, r.room_number,
	b.check_in, b.check_out, b.occupancy, b.status, b.total_price_cents, b.feedback_id,
	b.version, b.created_at, b.updated_at
FROM bookings b
JOIN room_categories c ON c.id = b.category_id
LEFT JOIN rooms r ON r.id = b.room_id
`

func scanBookingView(row interface{ Scan(dest ...any) error }) (BookingViewRow, error) {
	var v BookingViewRow
	err := row.Scan(
		&v.ID, &v.BookingNumber, &v.GuestID, &v.CategoryID, &v.CategoryName, &v.RoomID, &v.RoomNumber,
		&v.CheckIn, &v.CheckOut, &v.Occupancy, &v.Status, &v.TotalPriceCents, &v.FeedbackID,
		&v.Version, &v.CreatedAt, &v.UpdatedAt,
	)
	return v, err
}

const getBookingView = bookingViewSelect + `WHERE b.id = $1`

func (q *Queries) GetBookingView(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	return scanBookingView(db.QueryRow(ctx, getBookingView, id))
}

const listActiveBookingViewsByRoom = bookingViewSelect + `
WHERE b.room_id = $1 AND b.status <> 'CANCELLED'
ORDER BY b.check_in, b.id
`

func (q *Queries) ListActiveBookingViewsByRoom(ctx context.Context, db DBTX, roomID uuid.UUID) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listActiveBookingViewsByRoom, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []BookingViewRow
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}
