package pricing

import (
	"github.com/shopspring/decimal"

	"surf-booking/internal/data/entity"
)

// Discount tiers by cart position: the first lesson is full price, the
// second is 15% off, every lesson after that is 25% off. Position means
// insertion order, so re-sequencing the cart changes the outcome and the
// caller must re-apply after any change.
var (
	secondItemRate = decimal.NewFromFloat(0.15)
	laterItemRate  = decimal.NewFromFloat(0.25)
	one            = decimal.NewFromInt(1)
)

// ApplyDiscounts returns a copy of items with DiscountedPrice set from each
// item's position. Pure: the input slice is not mutated, and applying twice
// yields identical prices since the tier depends only on position.
func ApplyDiscounts(items []entity.CartItem) []entity.CartItem {
	out := make([]entity.CartItem, len(items))
	copy(out, items)

	for i := range out {
		discounted := out[i].Price.Mul(one.Sub(rateFor(i))).Round(2)
		out[i].DiscountedPrice = &discounted
	}

	return out
}

func rateFor(index int) decimal.Decimal {
	switch {
	case index == 0:
		return decimal.Zero
	case index == 1:
		return secondItemRate
	default:
		return laterItemRate
	}
}

// TotalPrice sums discounted prices, falling back to the base price for
// items that never went through ApplyDiscounts. Empty cart totals zero.
func TotalPrice(items []entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.DiscountedPrice != nil {
			total = total.Add(*item.DiscountedPrice)
		} else {
			total = total.Add(item.Price)
		}
	}
	return total
}
