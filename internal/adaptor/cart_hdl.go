package adaptor

import (
	"encoding/json"
	"net/http"

	"surf-booking/internal/dto/request"
	"surf-booking/internal/usecase"
	"surf-booking/pkg/utils"

	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// QuoteCart handles POST /api/cart/quote
func (h *CartHandler) QuoteCart(w http.ResponseWriter, r *http.Request) {
	var req request.QuoteCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid quote request body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	quote, err := h.service.QuoteCart(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "quote cart")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// Checkout handles POST /api/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid checkout request body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.StartCheckout(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "start checkout")
		return
	}

	h.log.Info("Checkout session created",
		zap.String("payment_ref", session.PaymentRef))

	utils.ResponseCreated(w, "Checkout session created", session)
}
