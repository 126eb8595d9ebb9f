package booking

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"hotel-booking/internal/domain/shared/money"

	"github.com/google/uuid"
)

// Audited field names.
const (
	FieldCheckInDate  = "checkInDate"
	FieldCheckOutDate = "checkOutDate"
	FieldAmount       = "amount"
	FieldTotalPrice   = "totalPrice"
	FieldExtras       = "extras"
)

// Snapshot is an immutable copy of the audited booking values.
type Snapshot struct {
	CheckIn    time.Time
	CheckOut   time.Time
	Occupancy  int
	TotalPrice money.Money
	ExtraNames []string
}

func NewSnapshot(checkIn, checkOut time.Time, occupancy int, total money.Money, extraNames []string) Snapshot {
	return Snapshot{
		CheckIn:    DateOf(checkIn),
		CheckOut:   DateOf(checkOut),
		Occupancy:  occupancy,
		TotalPrice: total,
		ExtraNames: normalizeNames(extraNames),
	}
}

type Modification struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	modifiedAt time.Time
	field      string
	oldValue   string
	newValue   string
	handledBy  uuid.UUID
	reason     *string
}

func ReconstructModification(
	id, bookingID uuid.UUID,
	modifiedAt time.Time,
	field, oldValue, newValue string,
	handledBy uuid.UUID,
	reason *string,
) *Modification {
	return &Modification{
		id:         id,
		bookingID:  bookingID,
		modifiedAt: modifiedAt,
		field:      field,
		oldValue:   oldValue,
		newValue:   newValue,
		handledBy:  handledBy,
		reason:     reason,
	}
}

func (m *Modification) ID() uuid.UUID         { return m.id }
func (m *Modification) BookingID() uuid.UUID  { return m.bookingID }
func (m *Modification) ModifiedAt() time.Time { return m.modifiedAt }
func (m *Modification) Field() string         { return m.field }
func (m *Modification) OldValue() string      { return m.oldValue }
func (m *Modification) NewValue() string      { return m.newValue }
func (m *Modification) HandledBy() uuid.UUID  { return m.handledBy }
func (m *Modification) Reason() *string       { return m.reason }

// Auditor turns the difference between two snapshots into modification rows.
type Auditor struct{}

func NewAuditor() *Auditor {
	return &Auditor{}
}

func (a *Auditor) RecordChanges(before, after *Booking, handledBy uuid.UUID, reason string, at time.Time) []*Modification {
	return a.RecordChangesFromSnapshot(before.Snapshot(), after, handledBy, reason, at)
}

// RecordChangesFromSnapshot is the form used when the aggregate was mutated in place
// after the prior values were captured.
func (a *Auditor) RecordChangesFromSnapshot(before Snapshot, after *Booking, handledBy uuid.UUID, reason string, at time.Time) []*Modification {
	changes := Diff(before, after.Snapshot())
	if len(changes) == 0 {
		return nil
	}

	var reasonPtr *string
	if r := strings.TrimSpace(reason); r != "" {
		reasonPtr = &r
	}

	mods := make([]*Modification, 0, len(changes))
	for _, c := range changes {
		mods = append(mods, &Modification{
			id:         uuid.New(),
			bookingID:  after.ID(),
			modifiedAt: at,
			field:      c.Field,
			oldValue:   c.OldValue,
			newValue:   c.NewValue,
			handledBy:  handledBy,
			reason:     reasonPtr,
		})
	}
	return mods
}

type FieldChange struct {
	Field    string
	OldValue string
	NewValue string
}

// Diff compares every audited field independently, always in the same field order.
func Diff(before, after Snapshot) []FieldChange {
	var changes []FieldChange
	add := func(field, oldValue, newValue string) {
		if oldValue != newValue {
			changes = append(changes, FieldChange{Field: field, OldValue: oldValue, NewValue: newValue})
		}
	}

	add(FieldCheckInDate, formatDate(before.CheckIn), formatDate(after.CheckIn))
	add(FieldCheckOutDate, formatDate(before.CheckOut), formatDate(after.CheckOut))
	add(FieldAmount, strconv.Itoa(before.Occupancy), strconv.Itoa(after.Occupancy))
	add(FieldTotalPrice, before.TotalPrice.String(), after.TotalPrice.String())

	oldNames, newNames := normalizeNames(before.ExtraNames), normalizeNames(after.ExtraNames)
	if !slices.Equal(oldNames, newNames) {
		changes = append(changes, FieldChange{
			Field:    FieldExtras,
			OldValue: strings.Join(oldNames, ", "),
			NewValue: strings.Join(newNames, ", "),
		})
	}
	return changes
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
