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

var ErrCancellationNotFound = errs.Mark(errs.New("cancellation not found"), errs.ErrNotFound)

type ModificationQueries interface {
	InsertBookingModification(ctx context.Context, db query.DBTX, arg query.BookingModification) error
	ListBookingModifications(ctx context.Context, db query.DBTX, bookingID uuid.UUID) ([]query.BookingModification, error)
}

// ModificationRepository is append-only.
type ModificationRepository struct {
	queries ModificationQueries
	db      query.DBTX
}

func NewModificationRepository(queries ModificationQueries, db query.DBTX) *ModificationRepository {
	return &ModificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ModificationRepository) Create(ctx context.Context, m *booking.Modification) error {
	if err := r.queries.InsertBookingModification(ctx, r.db, converter.ModificationToInfra(m)); err != nil {
		return infra.WrapRepoErr("failed to record booking modification", err)
	}
	return nil
}

func (r *ModificationRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*booking.Modification, error) {
	rows, err := r.queries.ListBookingModifications(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking modifications", err)
	}
	result := make([]*booking.Modification, 0, len(rows))
	for _, row := range rows {
		result = append(result, converter.ModificationToDomain(row))
	}
	return result, nil
}

type CancellationQueries interface {
	InsertBookingCancellation(ctx context.Context, db query.DBTX, arg query.BookingCancellation) error
	GetBookingCancellation(ctx context.Context, db query.DBTX, bookingID uuid.UUID) (query.BookingCancellation, error)
}

type CancellationRepository struct {
	queries CancellationQueries
	db      query.DBTX
}

func NewCancellationRepository(queries CancellationQueries, db query.DBTX) *CancellationRepository {
	return &CancellationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CancellationRepository) Create(ctx context.Context, c *booking.Cancellation) error {
	if err := r.queries.InsertBookingCancellation(ctx, r.db, converter.CancellationToInfra(c)); err != nil {
		return infra.WrapRepoErr("failed to record cancellation", err)
	}
	return nil
}

func (r *CancellationRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*booking.Cancellation, error) {
	row, err := r.queries.GetBookingCancellation(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("cancellation not found", err, infra.KindNotFound), ErrCancellationNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cancellation", err)
	}
	return converter.CancellationToDomain(row), nil
}
