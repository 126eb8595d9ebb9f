//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID              uuid.UUID
	Number          string
	GuestID         uuid.UUID
	CategoryID      uuid.UUID
	RoomID          *uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Occupancy       int
	Status          booking.Status
	TotalPriceCents int64
	Extras          []booking.Extra
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	roomID := uuid.New()
	return &BookingBuilder{
		ID:              uuid.New(),
		Number:          "BK-20250101-000001",
		GuestID:         uuid.New(),
		CategoryID:      uuid.New(),
		RoomID:          &roomID,
		CheckIn:         time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		Occupancy:       2,
		Status:          booking.StatusPending,
		TotalPriceCents: 10000,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain runs the constructor validations.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := booking.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	bk, err := booking.NewBooking(booking.NewBookingParams{
		GuestID:    b.GuestID,
		CategoryID: b.CategoryID,
		Period:     period,
		Occupancy:  b.Occupancy,
		Extras:     b.Extras,
	}, b.Number, b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if b.RoomID != nil {
		if err := bk.AssignRoom(*b.RoomID); err != nil {
			return nil, err
		}
	}
	bk.ApplyPrice(money.NewMoney(b.TotalPriceCents))
	return bk, nil
}

// BuildReconstructed keeps the builder's id, status and version as if loaded from storage.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:         b.ID,
		Number:     b.Number,
		GuestID:    b.GuestID,
		CategoryID: b.CategoryID,
		RoomID:     b.RoomID,
		Period:     booking.ReconstructStayPeriod(b.CheckIn, b.CheckOut),
		Occupancy:  b.Occupancy,
		Status:     b.Status,
		TotalPrice: money.NewMoney(b.TotalPriceCents),
		Extras:     b.Extras,
		Version:    b.Version,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	})
}

func (b *BookingBuilder) BuildInfra() query.Booking {
	return query.Booking{
		ID:              b.ID,
		BookingNumber:   b.Number,
		GuestID:         b.GuestID,
		CategoryID:      b.CategoryID,
		RoomID:          pgconv.UUIDPtrToPgtype(b.RoomID),
		CheckIn:         pgtype.Date{Time: b.CheckIn, Valid: true},
		CheckOut:        pgtype.Date{Time: b.CheckOut, Valid: true},
		Occupancy:       int32(b.Occupancy),
		Status:          b.Status.String(),
		TotalPriceCents: b.TotalPriceCents,
		Version:         b.Version,
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *BookingBuilder) BuildViewRow() query.BookingViewRow {
	roomNumber := "101"
	return query.BookingViewRow{
		ID:              b.ID,
		BookingNumber:   b.Number,
		GuestID:         b.GuestID,
		CategoryID:      b.CategoryID,
		CategoryName:    "Double",
		RoomID:          b.RoomID,
		RoomNumber:      &roomNumber,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Occupancy:       int32(b.Occupancy),
		Status:          b.Status.String(),
		TotalPriceCents: b.TotalPriceCents,
		Version:         b.Version,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	roomNumber := "101"
	return &queries.BookingView{
		ID:              b.ID,
		BookingNumber:   b.Number,
		GuestID:         b.GuestID,
		CategoryID:      b.CategoryID,
		CategoryName:    "Double",
		RoomID:          b.RoomID,
		RoomNumber:      &roomNumber,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Occupancy:       b.Occupancy,
		Status:          b.Status.String(),
		TotalPriceCents: b.TotalPriceCents,
		Version:         b.Version,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithOccupancy(occupancy int) *BookingBuilder {
	b.Occupancy = occupancy
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithTotalPrice(cents int64) *BookingBuilder {
	b.TotalPriceCents = cents
	return b
}

func (b *BookingBuilder) WithExtras(extras ...booking.Extra) *BookingBuilder {
	b.Extras = extras
	return b
}

func (b *BookingBuilder) WithoutRoom() *BookingBuilder {
	b.RoomID = nil
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}
