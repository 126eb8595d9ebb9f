package converter

import (
	"fmt"
	"math"
	"time"

	"hotel-booking/internal/domain/billing"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: booking.DateOf(t), Valid: true}
}

func occupancyToInfra(occupancy int) int32 {
	if occupancy > math.MaxInt32 || occupancy < 0 {
		panic(fmt.Sprintf("occupancy out of int32 range: %d", occupancy))
	}
	return int32(occupancy)
}

func BookingToInsertParams(b *booking.Booking) query.InsertBookingParams {
	return query.InsertBookingParams{
		ID:              b.ID(),
		BookingNumber:   b.Number(),
		GuestID:         b.GuestID(),
		CategoryID:      b.CategoryID(),
		RoomID:          pgconv.UUIDPtrToPgtype(b.RoomID()),
		CheckIn:         DateToPgtype(b.CheckIn()),
		CheckOut:        DateToPgtype(b.CheckOut()),
		Occupancy:       occupancyToInfra(b.Occupancy()),
		Status:          b.Status().String(),
		TotalPriceCents: b.TotalPrice().Cents(),
		FeedbackID:      pgconv.UUIDPtrToPgtype(b.FeedbackID()),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) query.UpdateBookingParams {
	return query.UpdateBookingParams{
		ID:              b.ID(),
		CheckIn:         DateToPgtype(b.CheckIn()),
		CheckOut:        DateToPgtype(b.CheckOut()),
		Occupancy:       occupancyToInfra(b.Occupancy()),
		Status:          b.Status().String(),
		TotalPriceCents: b.TotalPrice().Cents(),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
		ExpectedVersion: b.Version(),
	}
}

func BookingToDomain(row query.Booking, extras []query.Extra) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	domainExtras := make([]booking.Extra, 0, len(extras))
	for _, e := range extras {
		de, err := ExtraToDomain(e)
		if err != nil {
			return nil, err
		}
		domainExtras = append(domainExtras, de)
	}

	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:         row.ID,
		Number:     row.BookingNumber,
		GuestID:    row.GuestID,
		CategoryID: row.CategoryID,
		RoomID:     pgconv.UUIDPtrFromPgtype(row.RoomID),
		Period:     booking.ReconstructStayPeriod(row.CheckIn.Time, row.CheckOut.Time),
		Occupancy:  int(row.Occupancy),
		Status:     status,
		TotalPrice: money.NewMoney(row.TotalPriceCents),
		Extras:     domainExtras,
		FeedbackID: pgconv.UUIDPtrFromPgtype(row.FeedbackID),
		Version:    row.Version,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func ExtraToDomain(row query.Extra) (booking.Extra, error) {
	return booking.NewExtra(row.ID, row.Name, money.NewMoney(row.PriceCents), row.PerPerson)
}

func CategoryToDomain(row query.RoomCategory) (*room.Category, error) {
	return room.NewCategory(row.ID, row.Name, money.NewMoney(row.PricePerNightCents), int(row.MaxOccupancy))
}

func RoomToDomain(row query.Room) (*room.Room, error) {
	return room.NewRoom(row.ID, row.CategoryID, row.RoomNumber, row.IsActive)
}

func PaymentToInfra(p *billing.Payment) query.Payment {
	return query.Payment{
		ID:            p.ID(),
		BookingID:     p.BookingID(),
		AmountCents:   p.Amount().Cents(),
		RefundedCents: p.Refunded().Cents(),
		Status:        string(p.Status()),
		Method:        p.Method(),
		PaidAt:        pgconv.TimePtrToPgtype(p.PaidAt()),
	}
}

func PaymentToDomain(row query.Payment) *billing.Payment {
	var paidAt *time.Time
	if row.PaidAt.Valid {
		t := row.PaidAt.Time
		paidAt = &t
	}
	return billing.ReconstructPayment(
		row.ID, row.BookingID,
		money.NewMoney(row.AmountCents), money.NewMoney(row.RefundedCents),
		billing.PaymentStatus(row.Status), row.Method, paidAt,
	)
}

func InvoiceToInfra(inv *billing.Invoice) query.Invoice {
	return query.Invoice{
		ID:            inv.ID(),
		BookingID:     inv.BookingID(),
		InvoiceNumber: inv.Number(),
		AmountCents:   inv.Amount().Cents(),
		RefundedCents: inv.Refunded().Cents(),
		Status:        string(inv.Status()),
		IssuedAt:      pgconv.TimeToPgtype(inv.IssuedAt()),
	}
}

func InvoiceToDomain(row query.Invoice) *billing.Invoice {
	return billing.ReconstructInvoice(
		row.ID, row.BookingID, row.InvoiceNumber,
		money.NewMoney(row.AmountCents), money.NewMoney(row.RefundedCents),
		billing.InvoiceStatus(row.Status), pgconv.TimeFromPgtype(row.IssuedAt),
	)
}

func ModificationToInfra(m *booking.Modification) query.BookingModification {
	return query.BookingModification{
		ID:           m.ID(),
		BookingID:    m.BookingID(),
		ModifiedAt:   pgconv.TimeToPgtype(m.ModifiedAt()),
		FieldChanged: m.Field(),
		OldValue:     m.OldValue(),
		NewValue:     m.NewValue(),
		HandledBy:    m.HandledBy(),
		Reason:       pgconv.StringPtrToPgtype(m.Reason()),
	}
}

func ModificationToDomain(row query.BookingModification) *booking.Modification {
	return booking.ReconstructModification(
		row.ID, row.BookingID, pgconv.TimeFromPgtype(row.ModifiedAt),
		row.FieldChanged, row.OldValue, row.NewValue,
		row.HandledBy, pgconv.StringPtrFromPgtype(row.Reason),
	)
}

func CancellationToInfra(c *booking.Cancellation) query.BookingCancellation {
	return query.BookingCancellation{
		ID:            c.ID(),
		BookingID:     c.BookingID(),
		CancelledAt:   pgconv.TimeToPgtype(c.CancelledAt()),
		Reason:        c.Reason(),
		FeeCents:      c.Fee().Cents(),
		RefundedCents: c.Refunded().Cents(),
		HandledBy:     c.HandledBy(),
	}
}

func CancellationToDomain(row query.BookingCancellation) *booking.Cancellation {
	return booking.ReconstructCancellation(
		row.ID, row.BookingID, pgconv.TimeFromPgtype(row.CancelledAt), row.Reason,
		money.NewMoney(row.FeeCents), money.NewMoney(row.RefundedCents), row.HandledBy,
	)
}
