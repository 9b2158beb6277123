package response

import (
	"github.com/shopspring/decimal"

	"surf-booking/internal/data/entity"
)

// QuoteCartResponse is the priced cart: positional discounts applied per
// item, then the optional code discount taken off the subtotal.
type QuoteCartResponse struct {
	Items          []entity.CartItem         `json:"items"`
	Subtotal       decimal.Decimal           `json:"subtotal"`
	DiscountCode   string                    `json:"discount_code,omitempty"`
	CodeDiscount   decimal.Decimal           `json:"code_discount"`
	Total          decimal.Decimal           `json:"total"`
	CodeValidation *ValidateDiscountResponse `json:"code_validation,omitempty"`
}

type CheckoutResponse struct {
	PaymentRef  string          `json:"payment_ref"`
	RedirectURL string          `json:"redirect_url"`
	Total       decimal.Decimal `json:"total"`
}
