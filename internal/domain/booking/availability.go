package booking

import (
	"bytes"
	"context"
	"slices"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNoRoomAvailable = errs.Mark(errs.New("no room of the category is free for the requested stay"), errs.ErrNoAvailability)

// OccupancyReader is the persistence view the checker needs.
type OccupancyReader interface {
	FindActiveRoomsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*room.Room, error)
	ExistsOverlappingBooking(ctx context.Context, roomID uuid.UUID, period StayPeriod, excludeStatus Status, excludeBookingID *uuid.UUID) (bool, error)
}

type AvailabilityChecker struct {
	reader OccupancyReader
}

func NewAvailabilityChecker(reader OccupancyReader) *AvailabilityChecker {
	return &AvailabilityChecker{reader: reader}
}

func (c *AvailabilityChecker) IsRoomAvailable(ctx context.Context, categoryID uuid.UUID, period StayPeriod, excludeBookingID *uuid.UUID) (bool, error) {
	free, err := c.firstFreeRoom(ctx, categoryID, period, excludeBookingID)
	if err != nil {
		return false, err
	}
	return free != nil, nil
}

// AssignRoom returns the lowest-id active room with no overlapping active booking.
func (c *AvailabilityChecker) AssignRoom(ctx context.Context, categoryID uuid.UUID, period StayPeriod) (*room.Room, error) {
	free, err := c.firstFreeRoom(ctx, categoryID, period, nil)
	if err != nil {
		return nil, err
	}
	if free == nil {
		return nil, ErrNoRoomAvailable
	}
	return free, nil
}

func (c *AvailabilityChecker) IsSpecificRoomAvailable(ctx context.Context, roomID uuid.UUID, period StayPeriod, excludeBookingID *uuid.UUID) (bool, error) {
	overlap, err := c.reader.ExistsOverlappingBooking(ctx, roomID, period, StatusCancelled, excludeBookingID)
	if err != nil {
		return false, err
	}
	return !overlap, nil
}

func (c *AvailabilityChecker) firstFreeRoom(ctx context.Context, categoryID uuid.UUID, period StayPeriod, excludeBookingID *uuid.UUID) (*room.Room, error) {
	rooms, err := c.reader.FindActiveRoomsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	SortRooms(rooms)

	for _, r := range rooms {
		if !r.IsActive() {
			continue
		}
		free, err := c.IsSpecificRoomAvailable(ctx, r.ID(), period, excludeBookingID)
		if err != nil {
			return nil, err
		}
		if free {
			return r, nil
		}
	}
	return nil, nil
}

// SortRooms orders rooms by ascending id, the same order Postgres uses for uuid.
func SortRooms(rooms []*room.Room) {
	slices.SortFunc(rooms, func(a, b *room.Room) int {
		ida, idb := a.ID(), b.ID()
		return bytes.Compare(ida[:], idb[:])
	})
}
