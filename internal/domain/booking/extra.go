package booking

import (
	"slices"
	"strings"

	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyExtraName     = errs.Mark(errs.New("extra name cannot be empty"), errs.ErrValidation)
	ErrNegativeExtraPrice = errs.Mark(errs.New("extra price cannot be negative"), errs.ErrValidation)
	ErrExtraNotFound      = errs.Mark(errs.New("extra not found"), errs.ErrNotFound)
)

// Extra is an optional add-on priced flat or per person.
type Extra struct {
	id        uuid.UUID
	name      string
	price     money.Money
	perPerson bool
}

func NewExtra(id uuid.UUID, name string, price money.Money, perPerson bool) (Extra, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Extra{}, ErrEmptyExtraName
	}
	if price.IsNegative() {
		return Extra{}, ErrNegativeExtraPrice
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Extra{id: id, name: name, price: price, perPerson: perPerson}, nil
}

func (e Extra) ID() uuid.UUID      { return e.id }
func (e Extra) Name() string       { return e.name }
func (e Extra) Price() money.Money { return e.price }
func (e Extra) PerPerson() bool    { return e.perPerson }

func (e Extra) Cost(occupancy int) money.Money {
	if e.perPerson {
		return e.price.Multiply(int64(occupancy))
	}
	return e.price
}

// uniqueExtras keeps the first occurrence of every id and orders the result by id
// so two equal sets always compare and persist the same way.
func uniqueExtras(extras []Extra) []Extra {
	seen := make(map[uuid.UUID]struct{}, len(extras))
	out := make([]Extra, 0, len(extras))
	for _, e := range extras {
		if _, ok := seen[e.id]; ok {
			continue
		}
		seen[e.id] = struct{}{}
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Extra) int { return strings.Compare(a.id.String(), b.id.String()) })
	return out
}

// ExtraNames reduces extras to a sorted, de-duplicated list of names.
func ExtraNames(extras []Extra) []string {
	names := make([]string, 0, len(extras))
	for _, e := range extras {
		names = append(names, e.name)
	}
	return normalizeNames(names)
}

func normalizeNames(names []string) []string {
	out := slices.Clone(names)
	slices.Sort(out)
	return slices.Compact(out)
}
