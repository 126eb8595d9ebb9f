package query

import (
	"context"

	"github.com/google/uuid"
)

const getRoomCategoryByID = `
SELECT id, name, price_per_night_cents, max_occupancy
FROM room_categories
WHERE id = $1
`

func (q *Queries) GetRoomCategoryByID(ctx context.Context, db DBTX, id uuid.UUID) (RoomCategory, error) {
	row := db.QueryRow(ctx, getRoomCategoryByID, id)
	var c RoomCategory
	err := row.Scan(&c.ID, &c.Name, &c.PricePerNightCents, &c.MaxOccupancy)
	return c, err
}

const listActiveRoomsByCategory = `
SELECT id, category_id, room_number, is_active
FROM rooms
WHERE category_id = $1 AND is_active
ORDER BY id
`

func (q *Queries) ListActiveRoomsByCategory(ctx context.Context, db DBTX, categoryID uuid.UUID) ([]Room, error) {
	return q.queryRooms(ctx, db, listActiveRoomsByCategory, categoryID)
}

// The row locks serialise concurrent assignments within one category until commit.
const lockActiveRoomsByCategory = `
SELECT id, category_id, room_number, is_active
FROM rooms
WHERE category_id = $1 AND is_active
ORDER BY id
FOR UPDATE
`

func (q *Queries) LockActiveRoomsByCategory(ctx context.Context, db DBTX, categoryID uuid.UUID) ([]Room, error) {
	return q.queryRooms(ctx, db, lockActiveRoomsByCategory, categoryID)
}

func (q *Queries) queryRooms(ctx context.Context, db DBTX, sql string, categoryID uuid.UUID) ([]Room, error) {
	rows, err := db.Query(ctx, sql, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Room
	for rows.Next() {
		var r Room
		if err := rows.Scan(&r.ID, &r.CategoryID, &r.RoomNumber, &r.IsActive); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const getRoomByID = `
SELECT id, category_id, room_number, is_active
FROM rooms
WHERE id = $1
`

func (q *Queries) GetRoomByID(ctx context.Context, db DBTX, id uuid.UUID) (Room, error) {
	row := db.QueryRow(ctx, getRoomByID, id)
	var r Room
	err := row.Scan(&r.ID, &r.CategoryID, &r.RoomNumber, &r.IsActive)
	return r, err
}

const listExtrasByIDs = `
SELECT id, name, price_cents, per_person
FROM extras
WHERE id = ANY($1::uuid[])
ORDER BY id
`

func (q *Queries) ListExtrasByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Extra, error) {
	return q.queryExtras(ctx, db, listExtrasByIDs, ids)
}

const listBookingExtras = `
SELECT e.id, e.name, e.price_cents, e.per_person
FROM booking_extras be
JOIN extras e ON e.id = be.extra_id
WHERE be.booking_id = $1
ORDER BY e.id
`

func (q *Queries) ListBookingExtras(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]Extra, error) {
	return q.queryExtras(ctx, db, listBookingExtras, bookingID)
}

func (q *Queries) queryExtras(ctx context.Context, db DBTX, sql string, arg any) ([]Extra, error) {
	rows, err := db.Query(ctx, sql, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Extra
	for rows.Next() {
		var e Extra
		if err := rows.Scan(&e.ID, &e.Name, &e.PriceCents, &e.PerPerson); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
