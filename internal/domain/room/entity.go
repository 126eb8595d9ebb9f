package room

import (
	"strings"

	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyCategoryName   = errs.Mark(errs.New("room category name cannot be empty"), errs.ErrValidation)
	ErrNegativeRate        = errs.Mark(errs.New("price per night cannot be negative"), errs.ErrValidation)
	ErrInvalidMaxOccupancy = errs.Mark(errs.New("max occupancy must be positive"), errs.ErrValidation)
	ErrEmptyRoomNumber     = errs.Mark(errs.New("room number cannot be empty"), errs.ErrValidation)
	ErrCategoryNotFound    = errs.Mark(errs.New("room category not found"), errs.ErrNotFound)
	ErrRoomNotFound        = errs.Mark(errs.New("room not found"), errs.ErrNotFound)
)

// Category is a class of rooms sharing a nightly rate and capacity.
type Category struct {
	id            uuid.UUID
	name          string
	pricePerNight money.Money
	maxOccupancy  int
}

func NewCategory(id uuid.UUID, name string, pricePerNight money.Money, maxOccupancy int) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategoryName
	}
	if pricePerNight.IsNegative() {
		return nil, ErrNegativeRate
	}
	if maxOccupancy <= 0 {
		return nil, ErrInvalidMaxOccupancy
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Category{id: id, name: name, pricePerNight: pricePerNight, maxOccupancy: maxOccupancy}, nil
}

func (c *Category) ID() uuid.UUID              { return c.id }
func (c *Category) Name() string               { return c.name }
func (c *Category) PricePerNight() money.Money { return c.pricePerNight }
func (c *Category) MaxOccupancy() int          { return c.maxOccupancy }

// Room never references its bookings; occupancy is always a query.
type Room struct {
	id         uuid.UUID
	categoryID uuid.UUID
	number     string
	active     bool
}

func NewRoom(id, categoryID uuid.UUID, number string, active bool) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Room{id: id, categoryID: categoryID, number: number, active: active}, nil
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) CategoryID() uuid.UUID { return r.categoryID }
func (r *Room) Number() string        { return r.number }
func (r *Room) IsActive() bool        { return r.active }
