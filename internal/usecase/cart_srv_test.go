package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"surf-booking/internal/data/entity"
	"surf-booking/internal/dto/request"
	"surf-booking/pkg/utils"
)

func newCartServiceForTest(t *testing.T, seedCodes ...*entity.DiscountCode) (*cartService, *fakeDiscountRepo, *fakePaymentProvider) {
	t.Helper()
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	repo := newFakeDiscountRepo()
	for _, code := range seedCodes {
		seedDiscount(t, repo, code)
	}
	provider := &fakePaymentProvider{}
	svc := &cartService{
		discounts: newDiscountServiceForTest(repo, now),
		payments:  provider,
		log:       zap.NewNop(),
	}
	return svc, repo, provider
}

func cartItems(prices ...int64) []entity.CartItem {
	items := make([]entity.CartItem, len(prices))
	for i, p := range prices {
		items[i] = entity.CartItem{
			Beach: "Pacifica",
			Date:  "2026-07-20",
			Price: decimal.NewFromInt(p),
		}
	}
	return items
}

func checkoutRequest(code string, prices ...int64) *request.CheckoutRequest {
	return &request.CheckoutRequest{
		Items: cartItems(prices...),
		Customer: request.CustomerInfo{
			Name:  "Kai Moana",
			Email: "kai@example.com",
		},
		DiscountCode: code,
	}
}

func TestQuoteCart_PositionalTiers(t *testing.T) {
	svc, _, _ := newCartServiceForTest(t)

	quote, err := svc.QuoteCart(context.Background(), &request.QuoteCartRequest{
		Items: cartItems(100, 100, 100),
	})
	require.NoError(t, err)

	// Full price, then 15% off, then 25% off.
	require.Len(t, quote.Items, 3)
	assert.True(t, quote.Items[0].DiscountedPrice.Equal(decimal.NewFromInt(100)))
	assert.True(t, quote.Items[1].DiscountedPrice.Equal(decimal.NewFromInt(85)))
	assert.True(t, quote.Items[2].DiscountedPrice.Equal(decimal.NewFromInt(75)))
	assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(260)))
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(260)))
}

func TestQuoteCart_EmptyCart(t *testing.T) {
	svc, _, _ := newCartServiceForTest(t)

	quote, err := svc.QuoteCart(context.Background(), &request.QuoteCartRequest{})
	require.NoError(t, err)
	assert.True(t, quote.Subtotal.IsZero())
	assert.True(t, quote.Total.IsZero())
}

func TestQuoteCart_WithDiscountCode(t *testing.T) {
	svc, _, _ := newCartServiceForTest(t, &entity.DiscountCode{
		Code: "WELCOME10", Type: entity.DiscountTypePercentage,
		Amount: decimal.NewFromInt(10), Active: true,
	})

	quote, err := svc.QuoteCart(context.Background(), &request.QuoteCartRequest{
		Items:        cartItems(80),
		DiscountCode: "welcome10",
	})
	require.NoError(t, err)

	assert.Equal(t, "WELCOME10", quote.DiscountCode)
	require.NotNil(t, quote.CodeValidation)
	assert.True(t, quote.CodeValidation.Valid)
	assert.True(t, quote.CodeDiscount.Equal(decimal.NewFromInt(8)))
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(72)))
}

func TestQuoteCart_InvalidCodeStillQuotes(t *testing.T) {
	svc, repo, _ := newCartServiceForTest(t, &entity.DiscountCode{
		Code: "WELCOME10", Type: entity.DiscountTypePercentage,
		Amount: decimal.NewFromInt(10), Active: true, MaxUses: intPtr(1),
	})

	quote, err := svc.QuoteCart(context.Background(), &request.QuoteCartRequest{
		Items:        cartItems(80),
		DiscountCode: "UNKNOWN",
	})
	require.NoError(t, err)

	require.NotNil(t, quote.CodeValidation)
	assert.False(t, quote.CodeValidation.Valid)
	assert.Equal(t, entity.DiscountNotFound, quote.CodeValidation.Reason)
	assert.True(t, quote.CodeDiscount.IsZero())
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(80)))

	// Quoting never consumes a use.
	stored, err := repo.FindByCode(context.Background(), "WELCOME10")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.CurrentUses)
}

func TestStartCheckout_OpensSession(t *testing.T) {
	svc, _, provider := newCartServiceForTest(t)

	session, err := svc.StartCheckout(context.Background(), checkoutRequest("", 100, 100))
	require.NoError(t, err)

	assert.Equal(t, "cs_test_ref", session.PaymentRef)
	assert.Equal(t, "https://pay.example.com/cs_test_ref", session.RedirectURL)
	// 100 + 85 after the second-lesson tier.
	assert.True(t, session.Total.Equal(decimal.NewFromInt(185)))
	assert.Equal(t, 1, provider.sessions)
	assert.True(t, provider.lastItem.Amount.Equal(decimal.NewFromInt(185)))
}

func TestStartCheckout_RedeemsCode(t *testing.T) {
	svc, repo, _ := newCartServiceForTest(t, &entity.DiscountCode{
		Code: "WELCOME10", Type: entity.DiscountTypePercentage,
		Amount: decimal.NewFromInt(10), Active: true, MaxUses: intPtr(5),
	})

	session, err := svc.StartCheckout(context.Background(), checkoutRequest("WELCOME10", 80))
	require.NoError(t, err)
	assert.True(t, session.Total.Equal(decimal.NewFromInt(72)))

	stored, err := repo.FindByCode(context.Background(), "WELCOME10")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentUses)
}

func TestStartCheckout_RejectsInvalidCode(t *testing.T) {
	svc, _, provider := newCartServiceForTest(t)

	_, err := svc.StartCheckout(context.Background(), checkoutRequest("NOPE", 80))

	var validationErr *utils.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, string(entity.DiscountNotFound), validationErr.Fields["discount_code"])
	assert.Zero(t, provider.sessions)
}

func TestStartCheckout_ExhaustedCodeRejected(t *testing.T) {
	svc, _, provider := newCartServiceForTest(t, &entity.DiscountCode{
		Code: "GONE", Type: entity.DiscountTypePercentage,
		Amount: decimal.NewFromInt(10), Active: true,
		MaxUses: intPtr(1), CurrentUses: 1,
	})

	_, err := svc.StartCheckout(context.Background(), checkoutRequest("GONE", 80))

	var validationErr *utils.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, provider.sessions)
}

func TestStartCheckout_RequiresItemsAndCustomer(t *testing.T) {
	svc, _, _ := newCartServiceForTest(t)

	t.Run("empty cart", func(t *testing.T) {
		_, err := svc.StartCheckout(context.Background(), &request.CheckoutRequest{
			Customer: request.CustomerInfo{Name: "Kai", Email: "kai@example.com"},
		})
		var validationErr *utils.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("missing email", func(t *testing.T) {
		req := checkoutRequest("", 100)
		req.Customer.Email = ""
		_, err := svc.StartCheckout(context.Background(), req)
		var validationErr *utils.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestStartCheckout_PaymentFailureSurfaces(t *testing.T) {
	svc, _, provider := newCartServiceForTest(t)
	provider.err = utils.ErrUpstreamUnavailable

	_, err := svc.StartCheckout(context.Background(), checkoutRequest("", 100))
	assert.ErrorIs(t, err, utils.ErrUpstreamUnavailable)
}
