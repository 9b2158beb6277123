package payments

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"

	"surf-booking/pkg/utils"
)

var centsPerDollar = decimal.NewFromInt(100)

type stripeProvider struct {
	api        *client.API
	successURL string
	cancelURL  string
	log        *zap.Logger
}

// NewStripeProvider builds the Stripe-backed payment collaborator. The
// checkout session ID doubles as the payment reference.
func NewStripeProvider(config utils.PaymentConfig, log *zap.Logger) Provider {
	api := &client.API{}
	api.Init(config.StripeSecretKey, nil)

	return &stripeProvider{
		api:        api,
		successURL: config.SuccessURL,
		cancelURL:  config.CancelURL,
		log:        log.With(zap.String("component", "stripe")),
	}
}

func (p *stripeProvider) CreateCheckout(ctx context.Context, customerEmail string, items []CheckoutItem) (*CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, len(items))
	for i, item := range items {
		lineItems[i] = &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount: stripe.Int64(item.Amount.Mul(centsPerDollar).IntPart()),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Label),
				},
			},
		}
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(p.successURL),
		CancelURL:     stripe.String(p.cancelURL),
		CustomerEmail: stripe.String(customerEmail),
		LineItems:     lineItems,
	}
	params.Context = ctx

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		p.log.Error("Failed to create checkout session",
			zap.Error(err),
			zap.Int("line_items", len(items)),
		)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	p.log.Info("Checkout session created",
		zap.String("payment_ref", session.ID),
		zap.Int("line_items", len(items)),
	)

	return &CheckoutSession{
		PaymentRef:  session.ID,
		RedirectURL: session.URL,
	}, nil
}
