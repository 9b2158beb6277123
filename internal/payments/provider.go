package payments

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutItem is one line of a checkout, already discount-priced.
type CheckoutItem struct {
	Label  string
	Amount decimal.Decimal
}

// CheckoutSession is what the payment collaborator hands back when a
// checkout starts. PaymentRef is the opaque reference used as the
// idempotency key for booking creation once the payment completes.
type CheckoutSession struct {
	PaymentRef  string
	RedirectURL string
}

// Provider is the external payment collaborator. The engine only needs it
// to issue payment references; authorization and notification delivery are
// its concern.
type Provider interface {
	CreateCheckout(ctx context.Context, customerEmail string, items []CheckoutItem) (*CheckoutSession, error)
}
