//go:build unit || e2e

package builder

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/infra/query"

	"github.com/google/uuid"
)

type CategoryBuilder struct {
	ID                 uuid.UUID
	Name               string
	PricePerNightCents int64
	MaxOccupancy       int
}

func NewCategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{
		ID:                 uuid.New(),
		Name:               "Double",
		PricePerNightCents: 5000,
		MaxOccupancy:       2,
	}
}

func (c *CategoryBuilder) With(mutate func(*CategoryBuilder)) *CategoryBuilder {
	mutate(c)
	return c
}

func (c *CategoryBuilder) BuildDomain() (*room.Category, error) {
	return room.NewCategory(c.ID, c.Name, money.NewMoney(c.PricePerNightCents), c.MaxOccupancy)
}

// MustBuildDomain panics on invalid builder state; meant for fixtures.
func (c *CategoryBuilder) MustBuildDomain() *room.Category {
	category, err := c.BuildDomain()
	if err != nil {
		panic(err)
	}
	return category
}

func (c *CategoryBuilder) BuildInfra() query.RoomCategory {
	return query.RoomCategory{
		ID:                 c.ID,
		Name:               c.Name,
		PricePerNightCents: c.PricePerNightCents,
		MaxOccupancy:       int32(c.MaxOccupancy),
	}
}

type RoomBuilder struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Number     string
	Active     bool
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:         uuid.New(),
		CategoryID: uuid.New(),
		Number:     "101",
		Active:     true,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(r.ID, r.CategoryID, r.Number, r.Active)
}

func (r *RoomBuilder) MustBuildDomain() *room.Room {
	rm, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return rm
}

func (r *RoomBuilder) BuildInfra() query.Room {
	return query.Room{
		ID:         r.ID,
		CategoryID: r.CategoryID,
		RoomNumber: r.Number,
		IsActive:   r.Active,
	}
}

type ExtraBuilder struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	PerPerson  bool
}

func NewExtraBuilder() *ExtraBuilder {
	return &ExtraBuilder{
		ID:         uuid.New(),
		Name:       "Breakfast",
		PriceCents: 1000,
		PerPerson:  true,
	}
}

func (e *ExtraBuilder) With(mutate func(*ExtraBuilder)) *ExtraBuilder {
	mutate(e)
	return e
}

func (e *ExtraBuilder) BuildDomain() (booking.Extra, error) {
	return booking.NewExtra(e.ID, e.Name, money.NewMoney(e.PriceCents), e.PerPerson)
}

func (e *ExtraBuilder) MustBuildDomain() booking.Extra {
	extra, err := e.BuildDomain()
	if err != nil {
		panic(err)
	}
	return extra
}

func (e *ExtraBuilder) BuildInfra() query.Extra {
	return query.Extra{
		ID:         e.ID,
		Name:       e.Name,
		PriceCents: e.PriceCents,
		PerPerson:  e.PerPerson,
	}
}

// RoomIDs returns n ids in ascending order.
func RoomIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		var id uuid.UUID
		id[0] = byte(i + 1)
		id[6] = 0x40
		id[8] = 0x80
		ids[i] = id
	}
	return ids
}
