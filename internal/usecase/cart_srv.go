package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"surf-booking/internal/dto/request"
	"surf-booking/internal/dto/response"
	"surf-booking/internal/payments"
	"surf-booking/internal/pricing"
	"surf-booking/pkg/utils"
)

type CartService interface {
	// QuoteCart prices a cart snapshot. Code validation here is
	// read-only; nothing is redeemed until checkout.
	QuoteCart(ctx context.Context, req *request.QuoteCartRequest) (*response.QuoteCartResponse, error)

	// StartCheckout re-prices the cart server-side, redeems the code,
	// and opens a payment session. The returned payment reference is the
	// idempotency key the completion notification will carry.
	StartCheckout(ctx context.Context, req *request.CheckoutRequest) (*response.CheckoutResponse, error)
}

type cartService struct {
	discounts DiscountService
	payments  payments.Provider
	log       *zap.Logger
}

func NewCartService(discounts DiscountService, paymentProvider payments.Provider, log *zap.Logger) CartService {
	return &cartService{
		discounts: discounts,
		payments:  paymentProvider,
		log:       log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) QuoteCart(ctx context.Context, req *request.QuoteCartRequest) (*response.QuoteCartResponse, error) {
	items := pricing.ApplyDiscounts(req.Items)
	subtotal := pricing.TotalPrice(items)

	quote := &response.QuoteCartResponse{
		Items:        items,
		Subtotal:     subtotal,
		CodeDiscount: decimal.Zero,
		Total:        subtotal,
	}

	if req.DiscountCode == "" {
		return quote, nil
	}

	validation, err := s.discounts.Validate(ctx, req.DiscountCode, subtotal)
	if err != nil {
		return nil, err
	}

	quote.DiscountCode = NormalizeCode(req.DiscountCode)
	quote.CodeValidation = validation
	if validation.Valid {
		quote.CodeDiscount = *validation.DiscountAmount
		quote.Total = subtotal.Sub(quote.CodeDiscount)
	}

	return quote, nil
}

func (s *cartService) StartCheckout(ctx context.Context, req *request.CheckoutRequest) (*response.CheckoutResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Checkout validation failed", zap.Any("errors", errs))
		return nil, &utils.ValidationError{Fields: errs}
	}

	items := pricing.ApplyDiscounts(req.Items)
	total := pricing.TotalPrice(items)

	if req.DiscountCode != "" {
		validation, err := s.discounts.Validate(ctx, req.DiscountCode, total)
		if err != nil {
			return nil, err
		}
		if !validation.Valid {
			return nil, utils.NewValidationError("discount_code", string(validation.Reason))
		}

		ok, reason, err := s.discounts.Redeem(ctx, req.DiscountCode)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Validation passed but redemption lost the race for the
			// last remaining use.
			return nil, utils.NewValidationError("discount_code", string(reason))
		}

		total = total.Sub(*validation.DiscountAmount)
	}

	lessonLabel := fmt.Sprintf("%d surf lesson(s)", len(items))
	session, err := s.payments.CreateCheckout(ctx, req.Customer.Email, []payments.CheckoutItem{
		{Label: lessonLabel, Amount: total},
	})
	if err != nil {
		return nil, fmt.Errorf("start checkout: %w", err)
	}

	s.log.Info("Checkout started",
		zap.String("payment_ref", session.PaymentRef),
		zap.Int("items", len(items)),
		zap.String("total", total.String()),
	)

	return &response.CheckoutResponse{
		PaymentRef:  session.PaymentRef,
		RedirectURL: session.RedirectURL,
		Total:       total,
	}, nil
}
