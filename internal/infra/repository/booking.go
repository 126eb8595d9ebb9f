package repository

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/infra/repository/converter"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db query.DBTX, arg query.InsertBookingParams) (int64, error)
	UpdateBooking(ctx context.Context, db query.DBTX, arg query.UpdateBookingParams) (int64, error)
	DeleteBookingExtras(ctx context.Context, db query.DBTX, bookingID uuid.UUID) error
	InsertBookingExtras(ctx context.Context, db query.DBTX, bookingID uuid.UUID, extraIDs []uuid.UUID) error
	GetBookingByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Booking, error)
	GetBookingByIDForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Booking, error)
	ListBookingExtras(ctx context.Context, db query.DBTX, bookingID uuid.UUID) ([]query.Extra, error)
	ExistsOverlappingBooking(ctx context.Context, db query.DBTX, arg query.ExistsOverlappingBookingParams) (bool, error)
	ListActiveBookingsByRoom(ctx context.Context, db query.DBTX, roomID uuid.UUID) ([]query.Booking, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      query.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db query.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	version, err := r.queries.InsertBooking(ctx, r.db, converter.BookingToInsertParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	if err := r.writeExtras(ctx, b); err != nil {
		return err
	}
	b.SetVersion(version)
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	version, err := r.queries.UpdateBooking(ctx, r.db, converter.BookingToUpdateParams(b))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("booking was modified concurrently", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update booking", err)
	}

	if err := r.queries.DeleteBookingExtras(ctx, r.db, b.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear booking extras", err)
	}
	if err := r.writeExtras(ctx, b); err != nil {
		return err
	}
	b.SetVersion(version)
	return nil
}

func (r *BookingRepository) writeExtras(ctx context.Context, b *booking.Booking) error {
	extras := b.Extras()
	if len(extras) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(extras))
	for _, e := range extras {
		ids = append(ids, e.ID())
	}
	if err := r.queries.InsertBookingExtras(ctx, r.db, b.ID(), ids); err != nil {
		return infra.WrapRepoErr("failed to save booking extras", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	return r.toDomain(ctx, row, err)
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	return r.toDomain(ctx, row, err)
}

func (r *BookingRepository) toDomain(ctx context.Context, row query.Booking, err error) (*booking.Booking, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("booking not found", err, infra.KindNotFound), booking.ErrBookingNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	extras, err := r.queries.ListBookingExtras(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking extras", err)
	}
	return converter.BookingToDomain(row, extras)
}

func (r *BookingRepository) ExistsOverlapping(ctx context.Context, roomID uuid.UUID, period booking.StayPeriod, excludeStatus booking.Status, excludeBookingID *uuid.UUID) (bool, error) {
	exists, err := r.queries.ExistsOverlappingBooking(ctx, r.db, query.ExistsOverlappingBookingParams{
		RoomID:           roomID,
		CheckIn:          converter.DateToPgtype(period.CheckIn()),
		CheckOut:         converter.DateToPgtype(period.CheckOut()),
		ExcludeStatus:    excludeStatus.String(),
		ExcludeBookingID: pgconv.UUIDPtrToPgtype(excludeBookingID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping bookings", err)
	}
	return exists, nil
}

func (r *BookingRepository) FindActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListActiveBookingsByRoom(ctx, r.db, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for room", err)
	}

	result := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := r.toDomain(ctx, row, nil)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}
