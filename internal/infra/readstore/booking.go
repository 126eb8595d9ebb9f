package readstore

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookingViewRow, error)
	ListActiveBookingViewsByRoom(ctx context.Context, db query.DBTX, roomID uuid.UUID) ([]query.BookingViewRow, error)
	ListBookingModifications(ctx context.Context, db query.DBTX, bookingID uuid.UUID) ([]query.BookingModification, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      query.DBTX
}

var _ queries.BookingReadStore = (*BookingReadStore)(nil)

func NewBookingReadStore(queries BookingViewQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("booking view not found", err, infra.KindNotFound), booking.ErrBookingNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return rowToBookingView(row)
}

func (r *BookingReadStore) FindActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListActiveBookingViewsByRoom(ctx, r.db, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking views for room", err)
	}

	result := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := rowToBookingView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func (r *BookingReadStore) FindModifications(ctx context.Context, bookingID uuid.UUID) ([]*queries.ModificationView, error) {
	rows, err := r.queries.ListBookingModifications(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list modification views", err)
	}

	result := make([]*queries.ModificationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ModificationView{
			ID:           row.ID,
			BookingID:    row.BookingID,
			ModifiedAt:   pgconv.TimeFromPgtype(row.ModifiedAt),
			FieldChanged: row.FieldChanged,
			OldValue:     row.OldValue,
			NewValue:     row.NewValue,
			HandledBy:    row.HandledBy,
			Reason:       pgconv.StringPtrFromPgtype(row.Reason),
		}
	}
	return result, nil
}

func rowToBookingView(row query.BookingViewRow) (*queries.BookingView, error) {
	var view queries.BookingView
	if err := copier.Copy(&view, &row); err != nil {
		return nil, errs.Wrap(err, "failed to map booking view")
	}
	return &view, nil
}
