package request

import (
	"surf-booking/internal/data/entity"
)

// QuoteCartRequest prices a cart snapshot. Item order is the client's
// insertion order and decides the discount tiers. An empty cart is legal
// and quotes to zero.
type QuoteCartRequest struct {
	Items        []entity.CartItem `json:"items"`
	DiscountCode string            `json:"discount_code,omitempty"`
}
