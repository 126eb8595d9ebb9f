package repository

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/infra/repository/converter"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomQueries interface {
	GetRoomByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Room, error)
	ListActiveRoomsByCategory(ctx context.Context, db query.DBTX, categoryID uuid.UUID) ([]query.Room, error)
	LockActiveRoomsByCategory(ctx context.Context, db query.DBTX, categoryID uuid.UUID) ([]query.Room, error)
}

type RoomRepository struct {
	queries RoomQueries
	db      query.DBTX
}

func NewRoomRepository(queries RoomQueries, db query.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("room not found", err, infra.KindNotFound), room.ErrRoomNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return converter.RoomToDomain(row)
}

func (r *RoomRepository) FindActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]*room.Room, error) {
	rows, err := r.queries.ListActiveRoomsByCategory(ctx, r.db, categoryID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	return toRooms(rows)
}

func (r *RoomRepository) LockActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]*room.Room, error) {
	rows, err := r.queries.LockActiveRoomsByCategory(ctx, r.db, categoryID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock rooms", err)
	}
	return toRooms(rows)
}

func toRooms(rows []query.Room) ([]*room.Room, error) {
	result := make([]*room.Room, 0, len(rows))
	for _, row := range rows {
		rm, err := converter.RoomToDomain(row)
		if err != nil {
			return nil, err
		}
		result = append(result, rm)
	}
	return result, nil
}

type CategoryQueries interface {
	GetRoomCategoryByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.RoomCategory, error)
}

type CategoryRepository struct {
	queries CategoryQueries
	db      query.DBTX
}

func NewCategoryRepository(queries CategoryQueries, db query.DBTX) *CategoryRepository {
	return &CategoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Category, error) {
	row, err := r.queries.GetRoomCategoryByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("room category not found", err, infra.KindNotFound), room.ErrCategoryNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room category", err)
	}
	return converter.CategoryToDomain(row)
}

type ExtraQueries interface {
	ListExtrasByIDs(ctx context.Context, db query.DBTX, ids []uuid.UUID) ([]query.Extra, error)
}

type ExtraRepository struct {
	queries ExtraQueries
	db      query.DBTX
}

func NewExtraRepository(queries ExtraQueries, db query.DBTX) *ExtraRepository {
	return &ExtraRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ExtraRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]booking.Extra, error) {
	rows, err := r.queries.ListExtrasByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find extras", err)
	}

	found := make(map[uuid.UUID]booking.Extra, len(rows))
	for _, row := range rows {
		e, err := converter.ExtraToDomain(row)
		if err != nil {
			return nil, err
		}
		found[e.ID()] = e
	}

	result := make([]booking.Extra, 0, len(ids))
	for _, id := range ids {
		e, ok := found[id]
		if !ok {
			return nil, errs.Wrapf(booking.ErrExtraNotFound, "extra %s", id)
		}
		result = append(result, e)
	}
	return result, nil
}
