package query

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomCategory struct {
	ID                 uuid.UUID
	Name               string
	PricePerNightCents int64
	MaxOccupancy       int32
}

type Room struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	RoomNumber string
	IsActive   bool
}

type Extra struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	PerPerson  bool
}

type Booking struct {
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
	Version         int64
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type Payment struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	AmountCents   int64
	RefundedCents int64
	Status        string
	Method        string
	PaidAt        pgtype.Timestamptz
}

type Invoice struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	InvoiceNumber string
	AmountCents   int64
	RefundedCents int64
	Status        string
	IssuedAt      pgtype.Timestamptz
}

type BookingModification struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	ModifiedAt   pgtype.Timestamptz
	FieldChanged string
	OldValue     string
	NewValue     string
	HandledBy    uuid.UUID
	Reason       pgtype.Text
}

type BookingCancellation struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	CancelledAt   pgtype.Timestamptz
	Reason        string
	FeeCents      int64
	RefundedCents int64
	HandledBy     uuid.UUID
}

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// BookingViewRow is the joined read model; plain Go types so it maps straight onto views.
type BookingViewRow struct {
	ID              uuid.UUID
	BookingNumber   string
	GuestID         uuid.UUID
	CategoryID      uuid.UUID
	CategoryName    string
	RoomID          *uuid.UUID
	RoomNumber      *string
	CheckIn         time.Time
	CheckOut        time.Time
	Occupancy       int32
	Status          string
	TotalPriceCents int64
	FeedbackID      *uuid.UUID
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
