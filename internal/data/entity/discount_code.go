package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Reasons a code can fail validation. Validation never mutates usage.
type DiscountInvalidReason string

const (
	DiscountNotFound      DiscountInvalidReason = "NOT_FOUND"
	DiscountInactive      DiscountInvalidReason = "INACTIVE"
	DiscountExpired       DiscountInvalidReason = "EXPIRED"
	DiscountBelowMinimum  DiscountInvalidReason = "BELOW_MINIMUM"
	DiscountUsesExhausted DiscountInvalidReason = "USES_EXHAUSTED"
)

// DiscountCode is stored upper-cased; lookups normalize the same way.
type DiscountCode struct {
	Base
	Code        string          `db:"code"`
	Type        DiscountType    `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	MinOrder    decimal.Decimal `db:"min_order"`
	MaxUses     *int            `db:"max_uses"`
	CurrentUses int             `db:"current_uses"`
	ExpiresAt   *time.Time      `db:"expires_at"`
	Active      bool            `db:"active"`
}

// DiscountFor computes the discount the code grants on an order amount.
// A fixed discount is clamped at the order amount so the total never goes
// negative.
func (d *DiscountCode) DiscountFor(orderAmount decimal.Decimal) decimal.Decimal {
	switch d.Type {
	case DiscountTypePercentage:
		return orderAmount.Mul(d.Amount).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountTypeFixed:
		if d.Amount.GreaterThan(orderAmount) {
			return orderAmount
		}
		return d.Amount
	default:
		return decimal.Zero
	}
}
