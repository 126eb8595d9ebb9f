package booking

import (
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/shared/money"
)

type PriceCalculator struct{}

func NewPriceCalculator() *PriceCalculator {
	return &PriceCalculator{}
}

// CalculatePrice returns rate × nights plus the cost of every extra. The sum is exact
// in cents so no rounding step is needed.
func (pc *PriceCalculator) CalculatePrice(category *room.Category, period StayPeriod, occupancy int, extras []Extra) (money.Money, error) {
	nights := period.Nights()
	if nights < 1 {
		return money.Money{}, ErrInvalidNights
	}
	if occupancy <= 0 {
		occupancy = 1
	}

	total := category.PricePerNight().Multiply(int64(nights))
	for _, e := range uniqueExtras(extras) {
		total = total.Add(e.Cost(occupancy))
	}
	return total, nil
}

// Price recomputes the total for b from its current values.
func (pc *PriceCalculator) Price(category *room.Category, b *Booking) (money.Money, error) {
	return pc.CalculatePrice(category, b.Period(), b.Occupancy(), b.extras)
}
